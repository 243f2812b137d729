package element

import (
	"strings"

	"github.com/heathj/htmltags/attribute"
)

// Input is a typed form control. The attributes that only make sense for a
// given input type live on the Type variant; a nil Type is a text input.
// https://html.spec.whatwg.org/#the-input-element
type Input struct {
	attribute.Global
	Void
	Name     string
	Disabled bool
	Form     string
	Type     InputType
}

func (Input) Tag() string { return "input" }

func (e Input) Attributes() attribute.List {
	l := e.Global.Attributes()
	t := e.Type
	if t == nil {
		t = InputText{}
	}
	l.Set("type", t.InputType())
	l.SetString("name", e.Name)
	l.SetBool("disabled", e.Disabled)
	l.SetString("form", e.Form)
	t.append(&l)
	return l
}

// InputType is implemented by the input type variants below.
type InputType interface {
	// InputType returns the keyword of the type attribute.
	InputType() string
	append(l *attribute.List)
}

// TextEntry is shared by the single-line text input types.
type TextEntry struct {
	Value        string
	List         string
	Placeholder  string
	Pattern      string
	Maxlength    *int
	Minlength    *int
	Size         *int
	Readonly     bool
	Required     bool
	Autocomplete attribute.Autocomplete
}

func (t TextEntry) append(l *attribute.List) {
	l.SetString("value", t.Value)
	l.SetString("list", t.List)
	l.SetString("placeholder", t.Placeholder)
	l.SetString("pattern", t.Pattern)
	l.SetInt("maxlength", t.Maxlength)
	l.SetInt("minlength", t.Minlength)
	l.SetInt("size", t.Size)
	l.SetBool("readonly", t.Readonly)
	l.SetBool("required", t.Required)
	l.SetStringer("autocomplete", t.Autocomplete)
}

// DateEntry is shared by the date and time input types. Values use the
// formats of the respective type, e.g. "2025-04-05" or "2025-W14".
type DateEntry struct {
	Value    string
	Min      string
	Max      string
	Step     *float64
	List     string
	Readonly bool
	Required bool
}

func (d DateEntry) append(l *attribute.List) {
	l.SetString("value", d.Value)
	l.SetString("min", d.Min)
	l.SetString("max", d.Max)
	l.SetFloat("step", d.Step)
	l.SetString("list", d.List)
	l.SetBool("readonly", d.Readonly)
	l.SetBool("required", d.Required)
}

type InputText struct {
	TextEntry
	Dirname string
}

func (InputText) InputType() string { return "text" }

func (t InputText) append(l *attribute.List) {
	t.TextEntry.append(l)
	l.SetString("dirname", t.Dirname)
}

type InputSearch struct {
	TextEntry
	Dirname string
}

func (InputSearch) InputType() string { return "search" }

func (t InputSearch) append(l *attribute.List) {
	t.TextEntry.append(l)
	l.SetString("dirname", t.Dirname)
}

type InputEmail struct {
	TextEntry
	Multiple bool
}

func (InputEmail) InputType() string { return "email" }

func (t InputEmail) append(l *attribute.List) {
	t.TextEntry.append(l)
	l.SetBool("multiple", t.Multiple)
}

type InputPassword struct{ TextEntry }

func (InputPassword) InputType() string { return "password" }

type InputTel struct{ TextEntry }

func (InputTel) InputType() string { return "tel" }

type InputURL struct{ TextEntry }

func (InputURL) InputType() string { return "url" }

type InputDate struct{ DateEntry }

func (InputDate) InputType() string { return "date" }

type InputDatetimeLocal struct{ DateEntry }

func (InputDatetimeLocal) InputType() string { return "datetime-local" }

type InputMonth struct{ DateEntry }

func (InputMonth) InputType() string { return "month" }

type InputTime struct{ DateEntry }

func (InputTime) InputType() string { return "time" }

type InputWeek struct{ DateEntry }

func (InputWeek) InputType() string { return "week" }

type InputNumber struct {
	Value       *float64
	Min         *float64
	Max         *float64
	Step        *float64
	List        string
	Placeholder string
	Readonly    bool
	Required    bool
}

func (InputNumber) InputType() string { return "number" }

func (t InputNumber) append(l *attribute.List) {
	l.SetFloat("value", t.Value)
	l.SetFloat("min", t.Min)
	l.SetFloat("max", t.Max)
	l.SetFloat("step", t.Step)
	l.SetString("list", t.List)
	l.SetString("placeholder", t.Placeholder)
	l.SetBool("readonly", t.Readonly)
	l.SetBool("required", t.Required)
}

// InputRange is a slider. Browsers default Min to 0 and Max to 100.
type InputRange struct {
	Value *float64
	Min   *float64
	Max   *float64
	Step  *float64
	List  string
}

func (InputRange) InputType() string { return "range" }

func (t InputRange) append(l *attribute.List) {
	l.SetFloat("value", t.Value)
	l.SetFloat("min", t.Min)
	l.SetFloat("max", t.Max)
	l.SetFloat("step", t.Step)
	l.SetString("list", t.List)
}

type InputColor struct {
	Value        string
	List         string
	Autocomplete attribute.Autocomplete
}

func (InputColor) InputType() string { return "color" }

func (t InputColor) append(l *attribute.List) {
	l.SetString("value", t.Value)
	l.SetString("list", t.List)
	l.SetStringer("autocomplete", t.Autocomplete)
}

type InputCheckbox struct {
	Value    string
	Checked  bool
	Required bool
}

func (InputCheckbox) InputType() string { return "checkbox" }

func (t InputCheckbox) append(l *attribute.List) {
	l.SetString("value", t.Value)
	l.SetBool("checked", t.Checked)
	l.SetBool("required", t.Required)
}

type InputRadio struct {
	Value    string
	Checked  bool
	Required bool
}

func (InputRadio) InputType() string { return "radio" }

func (t InputRadio) append(l *attribute.List) {
	l.SetString("value", t.Value)
	l.SetBool("checked", t.Checked)
	l.SetBool("required", t.Required)
}

// InputFile picks files. Accept lists MIME types or extensions.
type InputFile struct {
	Accept   []string
	Capture  attribute.Capture
	Multiple bool
	Required bool
}

func (InputFile) InputType() string { return "file" }

func (t InputFile) append(l *attribute.List) {
	accept := make([]string, 0, len(t.Accept))
	for _, a := range t.Accept {
		if a = strings.TrimSpace(a); a != "" {
			accept = append(accept, a)
		}
	}
	l.SetString("accept", strings.Join(accept, ","))
	l.SetStringer("capture", t.Capture)
	l.SetBool("multiple", t.Multiple)
	l.SetBool("required", t.Required)
}

type InputHidden struct {
	Value        string
	Autocomplete attribute.Autocomplete
}

func (InputHidden) InputType() string { return "hidden" }

func (t InputHidden) append(l *attribute.List) {
	l.SetString("value", t.Value)
	l.SetStringer("autocomplete", t.Autocomplete)
}

// InputImage is a graphical submit button.
type InputImage struct {
	FormOverrides
	Src    attribute.Href
	Alt    string
	Width  *int
	Height *int
}

func (InputImage) InputType() string { return "image" }

func (t InputImage) append(l *attribute.List) {
	l.SetStringer("src", t.Src)
	l.SetString("alt", t.Alt)
	l.SetInt("width", t.Width)
	l.SetInt("height", t.Height)
	t.FormOverrides.append(l)
}

type InputSubmit struct {
	FormOverrides
	Value string
}

func (InputSubmit) InputType() string { return "submit" }

func (t InputSubmit) append(l *attribute.List) {
	l.SetString("value", t.Value)
	t.FormOverrides.append(l)
}

type InputReset struct{ Value string }

func (InputReset) InputType() string { return "reset" }

func (t InputReset) append(l *attribute.List) {
	l.SetString("value", t.Value)
}

type InputButton struct{ Value string }

func (InputButton) InputType() string { return "button" }

func (t InputButton) append(l *attribute.List) {
	l.SetString("value", t.Value)
}
