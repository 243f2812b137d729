package element

import "github.com/heathj/htmltags/attribute"

// Form is a submittable group of controls.
// https://html.spec.whatwg.org/#the-form-element
type Form struct {
	attribute.Global
	Contents
	Action         attribute.Href
	Method         attribute.Method
	Enctype        attribute.Enctype
	Target         attribute.Target
	Novalidate     bool
	Name           string
	Rel            attribute.Rel
	AcceptCharset  attribute.Charset
	Autocomplete   attribute.Autocomplete
	Autocapitalize attribute.Autocapitalize
}

func (Form) Tag() string { return "form" }

func (e Form) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("action", e.Action)
	l.SetStringer("method", e.Method)
	l.SetStringer("enctype", e.Enctype)
	l.SetStringer("target", e.Target)
	l.SetBool("novalidate", e.Novalidate)
	l.SetString("name", e.Name)
	l.SetStringer("rel", e.Rel)
	l.SetStringer("accept-charset", e.AcceptCharset)
	l.SetStringer("autocomplete", e.Autocomplete)
	l.SetStringer("autocapitalize", e.Autocapitalize)
	return l
}

// FormOverrides are the form* attributes of submit buttons that override
// the owning form's submission settings.
type FormOverrides struct {
	Formaction     attribute.Href
	Formenctype    attribute.Enctype
	Formmethod     attribute.Method
	Formnovalidate bool
	Formtarget     attribute.Target
}

func (f FormOverrides) append(l *attribute.List) {
	l.SetStringer("formaction", f.Formaction)
	l.SetStringer("formenctype", f.Formenctype)
	l.SetStringer("formmethod", f.Formmethod)
	l.SetBool("formnovalidate", f.Formnovalidate)
	l.SetStringer("formtarget", f.Formtarget)
}

// Label captions a form control, either by For or by nesting it.
// https://html.spec.whatwg.org/#the-label-element
type Label struct {
	attribute.Global
	Contents
	For string
}

func (Label) Tag() string { return "label" }

func (e Label) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("for", e.For)
	return l
}

// Button is a push button. Type defaults to submit in browsers when unset.
// https://html.spec.whatwg.org/#the-button-element
type Button struct {
	attribute.Global
	Contents
	FormOverrides
	Type                attribute.ButtonType
	Name                string
	Value               string
	Disabled            bool
	Form                string
	Popovertarget       string
	Popovertargetaction attribute.PopoverTargetAction
}

func (Button) Tag() string { return "button" }

func (e Button) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetStringer("type", e.Type)
	l.SetString("name", e.Name)
	l.SetString("value", e.Value)
	l.SetBool("disabled", e.Disabled)
	l.SetString("form", e.Form)
	e.FormOverrides.append(&l)
	l.SetString("popovertarget", e.Popovertarget)
	l.SetStringer("popovertargetaction", e.Popovertargetaction)
	return l
}

// https://html.spec.whatwg.org/#the-select-element
type Select struct {
	attribute.Global
	Contents
	Name         string
	Multiple     bool
	Required     bool
	Disabled     bool
	Size         *int
	Form         string
	Autocomplete attribute.Autocomplete
}

func (Select) Tag() string { return "select" }

func (e Select) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("name", e.Name)
	l.SetBool("multiple", e.Multiple)
	l.SetBool("required", e.Required)
	l.SetBool("disabled", e.Disabled)
	l.SetInt("size", e.Size)
	l.SetString("form", e.Form)
	l.SetStringer("autocomplete", e.Autocomplete)
	return l
}

// Datalist offers predefined options to an <input list=...>.
type Datalist struct {
	attribute.Global
	Contents
}

func (Datalist) Tag() string { return "datalist" }

type Optgroup struct {
	attribute.Global
	Contents
	Label    string
	Disabled bool
}

func (Optgroup) Tag() string { return "optgroup" }

func (e Optgroup) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("label", e.Label)
	l.SetBool("disabled", e.Disabled)
	return l
}

// Option is an item of a <select> or <datalist>. Value is always emitted
// when set; without it the option's text is submitted.
// https://html.spec.whatwg.org/#the-option-element
type Option struct {
	attribute.Global
	Contents
	Value    *string
	Label    string
	Selected bool
	Disabled bool
}

func (Option) Tag() string { return "option" }

func (e Option) Attributes() attribute.List {
	l := e.Global.Attributes()
	if e.Value != nil {
		l.Set("value", *e.Value)
	}
	l.SetString("label", e.Label)
	l.SetBool("selected", e.Selected)
	l.SetBool("disabled", e.Disabled)
	return l
}

// Textarea is a multi-line plain text control. Its content is the initial
// value.
// https://html.spec.whatwg.org/#the-textarea-element
type Textarea struct {
	attribute.Global
	Contents
	Name           string
	Rows           *int
	Cols           *int
	Placeholder    string
	Maxlength      *int
	Minlength      *int
	Required       bool
	Readonly       bool
	Disabled       bool
	Form           string
	Wrap           attribute.Wrap
	Dirname        string
	Autocomplete   attribute.Autocomplete
	Autocapitalize attribute.Autocapitalize
	Autocorrect    attribute.Autocorrect
}

func (Textarea) Tag() string { return "textarea" }

func (e Textarea) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetString("name", e.Name)
	l.SetInt("rows", e.Rows)
	l.SetInt("cols", e.Cols)
	l.SetString("placeholder", e.Placeholder)
	l.SetInt("maxlength", e.Maxlength)
	l.SetInt("minlength", e.Minlength)
	l.SetBool("required", e.Required)
	l.SetBool("readonly", e.Readonly)
	l.SetBool("disabled", e.Disabled)
	l.SetString("form", e.Form)
	l.SetStringer("wrap", e.Wrap)
	l.SetString("dirname", e.Dirname)
	l.SetStringer("autocomplete", e.Autocomplete)
	l.SetStringer("autocapitalize", e.Autocapitalize)
	l.SetStringer("autocorrect", e.Autocorrect)
	return l
}

// Output is the result of a calculation; For lists the contributing
// control ids.
type Output struct {
	attribute.Global
	Contents
	For  []string
	Form string
	Name string
}

func (Output) Tag() string { return "output" }

func (e Output) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetTokens("for", e.For)
	l.SetString("form", e.Form)
	l.SetString("name", e.Name)
	return l
}

// Progress shows completion of a task. A nil Value is indeterminate.
// https://html.spec.whatwg.org/#the-progress-element
type Progress struct {
	attribute.Global
	Contents
	Value *float64
	Max   *float64
}

func (Progress) Tag() string { return "progress" }

func (e Progress) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetFloat("value", e.Value)
	l.SetFloat("max", e.Max)
	return l
}

// Meter is a scalar measurement within a known range. Value is required.
// https://html.spec.whatwg.org/#the-meter-element
type Meter struct {
	attribute.Global
	Contents
	Value   float64
	Min     *float64
	Max     *float64
	Low     *float64
	High    *float64
	Optimum *float64
	Form    string
}

func (Meter) Tag() string { return "meter" }

func (e Meter) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetFloat("value", &e.Value)
	l.SetFloat("min", e.Min)
	l.SetFloat("max", e.Max)
	l.SetFloat("low", e.Low)
	l.SetFloat("high", e.High)
	l.SetFloat("optimum", e.Optimum)
	l.SetString("form", e.Form)
	return l
}

// https://html.spec.whatwg.org/#the-fieldset-element
type Fieldset struct {
	attribute.Global
	Contents
	Disabled bool
	Form     string
	Name     string
}

func (Fieldset) Tag() string { return "fieldset" }

func (e Fieldset) Attributes() attribute.List {
	l := e.Global.Attributes()
	l.SetBool("disabled", e.Disabled)
	l.SetString("form", e.Form)
	l.SetString("name", e.Name)
	return l
}

type Legend struct {
	attribute.Global
	Contents
}

func (Legend) Tag() string { return "legend" }
