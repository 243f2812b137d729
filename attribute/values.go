package attribute

// Enumerated attribute values. The zero value of every type is the empty
// string, which leaves the attribute unset.

// Crossorigin is the CORS settings attribute.
// https://html.spec.whatwg.org/#cors-settings-attribute
type Crossorigin string

const (
	Anonymous      Crossorigin = "anonymous"
	UseCredentials Crossorigin = "use-credentials"
)

// ParseCrossorigin maps s to a CORS setting. Anything other than
// "use-credentials" is the anonymous state, matching the invalid value
// default of the attribute.
func ParseCrossorigin(s string) Crossorigin {
	if s == string(UseCredentials) {
		return UseCredentials
	}
	return Anonymous
}

func (c Crossorigin) String() string { return string(c) }

// Preload hints how much of a media resource to fetch.
type Preload string

const (
	PreloadNone     Preload = "none"
	PreloadMetadata Preload = "metadata"
	PreloadAuto     Preload = "auto"
)

func (p Preload) String() string { return string(p) }

// Loading is the lazy loading attribute.
type Loading string

const (
	Eager Loading = "eager"
	Lazy  Loading = "lazy"
)

func (l Loading) String() string { return string(l) }

// Decoding is the image decoding hint.
type Decoding string

const (
	DecodingSync  Decoding = "sync"
	DecodingAsync Decoding = "async"
	DecodingAuto  Decoding = "auto"
)

func (d Decoding) String() string { return string(d) }

// FetchPriority is the fetch priority hint.
type FetchPriority string

const (
	PriorityHigh FetchPriority = "high"
	PriorityLow  FetchPriority = "low"
	PriorityAuto FetchPriority = "auto"
)

func (p FetchPriority) String() string { return string(p) }

// Blocking lists operations the resource blocks.
type Blocking string

const BlockingRender Blocking = "render"

func (b Blocking) String() string { return string(b) }

// Enctype is the form data set encoding.
type Enctype string

const (
	URLEncoded        Enctype = "application/x-www-form-urlencoded"
	MultipartFormData Enctype = "multipart/form-data"
	TextPlain         Enctype = "text/plain"
)

func (e Enctype) String() string { return string(e) }

// Method is the form submission method.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodDialog Method = "dialog"
)

func (m Method) String() string { return string(m) }

// ListType is the marker type of an <ol>.
type ListType string

const (
	LowerAlpha ListType = "a"
	UpperAlpha ListType = "A"
	LowerRoman ListType = "i"
	UpperRoman ListType = "I"
	Decimal    ListType = "1"
)

// ParseListType maps s to a marker type, defaulting to Decimal.
func ParseListType(s string) ListType {
	switch t := ListType(s); t {
	case LowerAlpha, UpperAlpha, LowerRoman, UpperRoman:
		return t
	}
	return Decimal
}

func (t ListType) String() string { return string(t) }

// Autocapitalize controls virtual keyboard capitalization.
type Autocapitalize string

const (
	AutocapitalizeOff        Autocapitalize = "off"
	AutocapitalizeNone       Autocapitalize = "none"
	AutocapitalizeOn         Autocapitalize = "on"
	AutocapitalizeSentences  Autocapitalize = "sentences"
	AutocapitalizeWords      Autocapitalize = "words"
	AutocapitalizeCharacters Autocapitalize = "characters"
)

func (a Autocapitalize) String() string { return string(a) }

// Autocomplete is either on/off or a space separated autofill detail list
// such as "shipping street-address".
type Autocomplete string

const (
	AutocompleteOn  Autocomplete = "on"
	AutocompleteOff Autocomplete = "off"
)

func (a Autocomplete) String() string { return string(a) }

// Autocorrect toggles automatic text correction.
type Autocorrect string

const (
	AutocorrectOn  Autocorrect = "on"
	AutocorrectOff Autocorrect = "off"
)

func (a Autocorrect) String() string { return string(a) }

// Wrap is the <textarea> wrapping mode.
type Wrap string

const (
	WrapHard Wrap = "hard"
	WrapSoft Wrap = "soft"
	WrapOff  Wrap = "off"
)

func (w Wrap) String() string { return string(w) }

// ButtonType is the behavior of a <button>.
type ButtonType string

const (
	Submit ButtonType = "submit"
	Reset  ButtonType = "reset"
	Button ButtonType = "button"
)

func (t ButtonType) String() string { return string(t) }

// Shape is the shape of an image map <area>.
type Shape string

const (
	ShapeRect    Shape = "rect"
	ShapeCircle  Shape = "circle"
	ShapePoly    Shape = "poly"
	ShapeDefault Shape = "default"
)

func (s Shape) String() string { return string(s) }

// Scope is the cells a <th> applies to.
type Scope string

const (
	ScopeRow      Scope = "row"
	ScopeCol      Scope = "col"
	ScopeRowgroup Scope = "rowgroup"
	ScopeColgroup Scope = "colgroup"
)

func (s Scope) String() string { return string(s) }

// TrackKind is how a text track is meant to be used.
type TrackKind string

const (
	Subtitles    TrackKind = "subtitles"
	Captions     TrackKind = "captions"
	Descriptions TrackKind = "descriptions"
	Chapters     TrackKind = "chapters"
	Metadata     TrackKind = "metadata"
)

func (k TrackKind) String() string { return string(k) }

// ShadowRootMode is the mode of a declarative shadow root.
type ShadowRootMode string

const (
	ShadowOpen   ShadowRootMode = "open"
	ShadowClosed ShadowRootMode = "closed"
)

func (m ShadowRootMode) String() string { return string(m) }

// Behavior is how <marquee> text scrolls.
type Behavior string

const (
	BehaviorScroll    Behavior = "scroll"
	BehaviorSlide     Behavior = "slide"
	BehaviorAlternate Behavior = "alternate"
)

func (b Behavior) String() string { return string(b) }

// MarqueeDirection is the scroll direction of <marquee>.
type MarqueeDirection string

const (
	Left  MarqueeDirection = "left"
	Right MarqueeDirection = "right"
	Up    MarqueeDirection = "up"
	Down  MarqueeDirection = "down"
)

func (d MarqueeDirection) String() string { return string(d) }

// Scrolling is the scrollbar mode of a <frame>.
type Scrolling string

const (
	ScrollingYes  Scrolling = "yes"
	ScrollingNo   Scrolling = "no"
	ScrollingAuto Scrolling = "auto"
)

func (s Scrolling) String() string { return string(s) }

// HTTPEquiv is the pragma directive of a <meta>.
type HTTPEquiv string

const (
	ContentSecurityPolicy HTTPEquiv = "content-security-policy"
	ContentType           HTTPEquiv = "content-type"
	DefaultStyle          HTTPEquiv = "default-style"
	Refresh               HTTPEquiv = "refresh"
	XUACompatible         HTTPEquiv = "x-ua-compatible"
)

func (h HTTPEquiv) String() string { return string(h) }

// MetaName is the name of a document level metadata entry.
type MetaName string

const (
	ApplicationName MetaName = "application-name"
	Author          MetaName = "author"
	ColorScheme     MetaName = "color-scheme"
	Description     MetaName = "description"
	Generator       MetaName = "generator"
	Keywords        MetaName = "keywords"
	Referrer        MetaName = "referrer"
	Robots          MetaName = "robots"
	ThemeColor      MetaName = "theme-color"
	Viewport        MetaName = "viewport"
)

func (n MetaName) String() string { return string(n) }

// Dir is the text directionality.
type Dir string

const (
	LTR     Dir = "ltr"
	RTL     Dir = "rtl"
	DirAuto Dir = "auto"
)

func (d Dir) String() string { return string(d) }

// Hidden is the hidden attribute state.
type Hidden uint8

const (
	Shown Hidden = iota
	HiddenOn
	HiddenUntilFound
)

func (h Hidden) set(l *List) {
	switch h {
	case HiddenOn:
		l.Set("hidden", "")
	case HiddenUntilFound:
		l.Set("hidden", "until-found")
	}
}

// Translate controls whether content is localized.
type Translate string

const (
	TranslateYes Translate = "yes"
	TranslateNo  Translate = "no"
)

func (t Translate) String() string { return string(t) }

// Popover turns an element into a popover.
type Popover string

const (
	PopoverAuto   Popover = "auto"
	PopoverManual Popover = "manual"
	PopoverHint   Popover = "hint"
)

func (p Popover) String() string { return string(p) }

// PopoverTargetAction is what an invoker does to its popover.
type PopoverTargetAction string

const (
	PopoverToggle PopoverTargetAction = "toggle"
	PopoverShow   PopoverTargetAction = "show"
	PopoverHide   PopoverTargetAction = "hide"
)

func (a PopoverTargetAction) String() string { return string(a) }

// As is the destination of a preload <link>.
type As string

const (
	AsAudio    As = "audio"
	AsDocument As = "document"
	AsEmbed    As = "embed"
	AsFetch    As = "fetch"
	AsFont     As = "font"
	AsImage    As = "image"
	AsObject   As = "object"
	AsScript   As = "script"
	AsStyle    As = "style"
	AsTrack    As = "track"
	AsVideo    As = "video"
	AsWorker   As = "worker"
)

func (a As) String() string { return string(a) }

// ScriptType is the type of a <script>.
type ScriptType string

const (
	Classic          ScriptType = "text/javascript"
	Module           ScriptType = "module"
	Importmap        ScriptType = "importmap"
	Speculationrules ScriptType = "speculationrules"
)

func (t ScriptType) String() string { return string(t) }

// Capture selects the camera of a file input.
type Capture string

const (
	CaptureUser        Capture = "user"
	CaptureEnvironment Capture = "environment"
)

func (c Capture) String() string { return string(c) }
