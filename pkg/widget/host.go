package widget

// Kind names the element types the widget needs from a host.
type Kind string

const (
	KindContainer Kind = "div"
	KindButton    Kind = "button"
	KindFrame     Kind = "iframe"
	KindNotice    Kind = "pre"
)

// Element is an opaque handle owned by the host.
type Element any

// Attrs describes a new element. Extra holds additional attributes; hosts
// should emit them in a stable order.
type Attrs struct {
	Text  string
	Style string
	Extra map[string]string
}

// Host is the capability interface the widget is built against.
type Host interface {
	CreateElement(parent Element, kind Kind, attrs Attrs) (Element, error)
	SetClickHandler(el Element, fn func()) error
	SetFrameTarget(el Element, url string) error
}

// ErrorReporter is an optional Host extension. Click handlers have no caller
// to return to, so a failing SetFrameTarget is handed to ReportError when the
// host implements it.
type ErrorReporter interface {
	ReportError(el Element, err error)
}
