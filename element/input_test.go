package element

import (
	"testing"

	"github.com/heathj/htmltags/attribute"
)

func TestInputAttributes(t *testing.T) {
	runAttrTests(t, []attrTest{
		{
			name: "nil type is text",
			in:   Input{Name: "q"},
			expected: attribute.List{
				{Name: "type", Value: "text"},
				{Name: "name", Value: "q"},
			},
		},
		{
			name: "text entry",
			in: Input{
				Name: "user",
				Type: InputText{
					TextEntry: TextEntry{Placeholder: "name", Maxlength: attribute.Ptr(20), Required: true},
					Dirname:   "user.dir",
				},
			},
			expected: attribute.List{
				{Name: "type", Value: "text"},
				{Name: "name", Value: "user"},
				{Name: "placeholder", Value: "name"},
				{Name: "maxlength", Value: "20"},
				{Name: "required", Value: ""},
				{Name: "dirname", Value: "user.dir"},
			},
		},
		{
			name: "email multiple",
			in:   Input{Type: InputEmail{Multiple: true, TextEntry: TextEntry{Autocomplete: attribute.AutocompleteOff}}},
			expected: attribute.List{
				{Name: "type", Value: "email"},
				{Name: "autocomplete", Value: "off"},
				{Name: "multiple", Value: ""},
			},
		},
		{
			name: "password",
			in:   Input{Type: InputPassword{TextEntry{Minlength: attribute.Ptr(8)}}},
			expected: attribute.List{
				{Name: "type", Value: "password"},
				{Name: "minlength", Value: "8"},
			},
		},
		{
			name: "datetime-local",
			in:   Input{Type: InputDatetimeLocal{DateEntry{Min: "2024-01-01T00:00", Step: attribute.Ptr(60.0)}}},
			expected: attribute.List{
				{Name: "type", Value: "datetime-local"},
				{Name: "min", Value: "2024-01-01T00:00"},
				{Name: "step", Value: "60"},
			},
		},
		{
			name: "range",
			in:   Input{Type: InputRange{Min: attribute.Ptr(0.0), Max: attribute.Ptr(1.0), Step: attribute.Ptr(0.1)}},
			expected: attribute.List{
				{Name: "type", Value: "range"},
				{Name: "min", Value: "0"},
				{Name: "max", Value: "1"},
				{Name: "step", Value: "0.1"},
			},
		},
		{
			name: "file accept list",
			in:   Input{Type: InputFile{Accept: []string{"image/*", " ", ".pdf"}, Capture: attribute.CaptureEnvironment, Multiple: true}},
			expected: attribute.List{
				{Name: "type", Value: "file"},
				{Name: "accept", Value: "image/*,.pdf"},
				{Name: "capture", Value: "environment"},
				{Name: "multiple", Value: ""},
			},
		},
		{
			name: "radio",
			in:   Input{Name: "size", Disabled: true, Type: InputRadio{Value: "m", Checked: true}},
			expected: attribute.List{
				{Name: "type", Value: "radio"},
				{Name: "name", Value: "size"},
				{Name: "disabled", Value: ""},
				{Name: "value", Value: "m"},
				{Name: "checked", Value: ""},
			},
		},
		{
			name: "image submit",
			in: Input{Type: InputImage{
				Src:           "go.png",
				Alt:           "Go",
				FormOverrides: FormOverrides{Formaction: "/search", Formtarget: attribute.TargetSelf},
			}},
			expected: attribute.List{
				{Name: "type", Value: "image"},
				{Name: "src", Value: "go.png"},
				{Name: "alt", Value: "Go"},
				{Name: "formaction", Value: "/search"},
				{Name: "formtarget", Value: "_self"},
			},
		},
		{
			name: "hidden with globals",
			in:   Input{Global: attribute.Global{ID: "csrf"}, Name: "token", Type: InputHidden{Value: "abc"}},
			expected: attribute.List{
				{Name: "id", Value: "csrf"},
				{Name: "type", Value: "hidden"},
				{Name: "name", Value: "token"},
				{Name: "value", Value: "abc"},
			},
		},
	})
}

func TestInputTypeKeywords(t *testing.T) {
	types := map[string]InputType{
		"button":         InputButton{},
		"checkbox":       InputCheckbox{},
		"color":          InputColor{},
		"date":           InputDate{},
		"datetime-local": InputDatetimeLocal{},
		"email":          InputEmail{},
		"file":           InputFile{},
		"hidden":         InputHidden{},
		"image":          InputImage{},
		"month":          InputMonth{},
		"number":         InputNumber{},
		"password":       InputPassword{},
		"radio":          InputRadio{},
		"range":          InputRange{},
		"reset":          InputReset{},
		"search":         InputSearch{},
		"submit":         InputSubmit{},
		"tel":            InputTel{},
		"text":           InputText{},
		"time":           InputTime{},
		"url":            InputURL{},
		"week":           InputWeek{},
	}
	for keyword, typ := range types {
		if got := typ.InputType(); got != keyword {
			t.Errorf("Wrong input type. Expected: %s Got: %s", keyword, got)
		}
		l := Input{Type: typ}.Attributes()
		if v, _ := l.Get("type"); v != keyword {
			t.Errorf("Wrong type attribute. Expected: %s Got: %s", keyword, v)
		}
	}
}
