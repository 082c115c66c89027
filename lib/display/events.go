package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Event is one window or input occurrence captured while polling. The
// concrete types below mirror the callback categories of the windowing
// library one to one and carry their arguments unchanged.
type Event interface {
	event()
}

// PosEvent reports the new window position in screen coordinates.
type PosEvent struct {
	X, Y int
}

// SizeEvent reports the new window size in screen coordinates.
type SizeEvent struct {
	Width, Height int
}

// FramebufferSizeEvent reports the new framebuffer size in pixels. This
// is the size to hand to gl.Viewport, not the window size.
type FramebufferSizeEvent struct {
	Width, Height int
}

// CloseEvent fires when the user asks the window to close.
type CloseEvent struct{}

// RefreshEvent fires when the window contents need to be redrawn.
type RefreshEvent struct{}

// FocusEvent reports whether the window gained or lost input focus.
type FocusEvent struct {
	Focused bool
}

// IconifyEvent reports whether the window was iconified or restored.
type IconifyEvent struct {
	Iconified bool
}

// MaximizeEvent reports whether the window was maximized or restored.
type MaximizeEvent struct {
	Maximized bool
}

// ContentScaleEvent reports the new content scale of the window.
type ContentScaleEvent struct {
	X, Y float32
}

// KeyEvent reports a key press, release or repeat.
type KeyEvent struct {
	Key      glfw.Key
	Scancode int
	Action   glfw.Action
	Mods     glfw.ModifierKey
}

// CharEvent reports a Unicode character of text input.
type CharEvent struct {
	Char rune
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Button glfw.MouseButton
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// CursorPosEvent reports the new cursor position relative to the top
// left corner of the window's content area.
type CursorPosEvent struct {
	X, Y float64
}

// CursorEnterEvent reports the cursor entering or leaving the window's
// content area.
type CursorEnterEvent struct {
	Entered bool
}

// ScrollEvent reports scroll wheel or touchpad scroll offsets.
type ScrollEvent struct {
	XOff, YOff float64
}

// DropEvent reports paths dropped onto the window.
type DropEvent struct {
	Paths []string
}

func (PosEvent) event()             {}
func (SizeEvent) event()            {}
func (FramebufferSizeEvent) event() {}
func (CloseEvent) event()           {}
func (RefreshEvent) event()         {}
func (FocusEvent) event()           {}
func (IconifyEvent) event()         {}
func (MaximizeEvent) event()        {}
func (ContentScaleEvent) event()    {}
func (KeyEvent) event()             {}
func (CharEvent) event()            {}
func (MouseButtonEvent) event()     {}
func (CursorPosEvent) event()       {}
func (CursorEnterEvent) event()     {}
func (ScrollEvent) event()          {}
func (DropEvent) event()            {}

// Name reports a stable lowercase identifier for the event's category.
// It is used as a metrics label and in the debug event stream, so the
// strings must not change between releases.
func Name(e Event) string {
	switch e.(type) {
	case PosEvent:
		return "pos"
	case SizeEvent:
		return "size"
	case FramebufferSizeEvent:
		return "framebuffer-size"
	case CloseEvent:
		return "close"
	case RefreshEvent:
		return "refresh"
	case FocusEvent:
		return "focus"
	case IconifyEvent:
		return "iconify"
	case MaximizeEvent:
		return "maximize"
	case ContentScaleEvent:
		return "content-scale"
	case KeyEvent:
		return "key"
	case CharEvent:
		return "char"
	case MouseButtonEvent:
		return "mouse-button"
	case CursorPosEvent:
		return "cursor-pos"
	case CursorEnterEvent:
		return "cursor-enter"
	case ScrollEvent:
		return "scroll"
	case DropEvent:
		return "drop"
	default:
		return "unknown"
	}
}

// trackEvents registers a callback for every event category the window
// can produce. Each callback appends its event to the display's queue;
// Update drains the queue in arrival order on the context thread.
func (d *Display) trackEvents() {
	w := d.window
	w.SetPosCallback(func(_ *glfw.Window, x, y int) {
		d.push(PosEvent{X: x, Y: y})
	})
	w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		d.push(SizeEvent{Width: width, Height: height})
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		d.push(FramebufferSizeEvent{Width: width, Height: height})
	})
	w.SetCloseCallback(func(_ *glfw.Window) {
		d.push(CloseEvent{})
	})
	w.SetRefreshCallback(func(_ *glfw.Window) {
		d.push(RefreshEvent{})
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		d.push(FocusEvent{Focused: focused})
	})
	w.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		d.push(IconifyEvent{Iconified: iconified})
	})
	w.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		d.push(MaximizeEvent{Maximized: maximized})
	})
	w.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		d.push(ContentScaleEvent{X: x, Y: y})
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		d.push(KeyEvent{Key: key, Scancode: scancode, Action: action, Mods: mods})
	})
	w.SetCharCallback(func(_ *glfw.Window, char rune) {
		d.push(CharEvent{Char: char})
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		d.push(MouseButtonEvent{Button: button, Action: action, Mods: mods})
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		d.push(CursorPosEvent{X: x, Y: y})
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		d.push(CursorEnterEvent{Entered: entered})
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		d.push(ScrollEvent{XOff: xoff, YOff: yoff})
	})
	w.SetDropCallback(func(_ *glfw.Window, paths []string) {
		d.push(DropEvent{Paths: paths})
	})
}

func (d *Display) push(e Event) {
	d.events = append(d.events, e)
}
