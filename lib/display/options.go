package display

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rajputrajat/min-gl/lib/log"
)

// Options selects how the window and its OpenGL 4.6 core context are
// created. They are consumed once by New; changing them afterwards has
// no effect on an existing display.
type Options struct {
	// Width and Height of the window in screen coordinates. Pick
	// something with a 16:9 aspect ratio if you can.
	Width  int
	Height int
	// Title shown in the window's title bar.
	Title string
	// Fullscreen puts the window on the whole primary monitor.
	Fullscreen bool
	// Decorated gives the window a frame with a title bar and close
	// button. Ignored in fullscreen.
	Decorated bool
	// MSAA is the multisampling sample count per pixel. Smoother edges,
	// costly. Must be a power of two when set; 4 is a reasonable
	// quality/performance trade-off. 0 turns multisampling off.
	MSAA int
	// VSync makes every buffer swap wait for a monitor refresh. Without
	// it the frame rate is unbounded, which can show tearing.
	VSync bool
}

// Validate rejects option combinations the windowing library would
// accept silently but render wrong.
func (o *Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window size %dx%d is degenerate", o.Width, o.Height)
	}
	if o.MSAA < 0 {
		return fmt.Errorf("msaa sample count %d is negative", o.MSAA)
	}
	if o.MSAA > 0 && o.MSAA&(o.MSAA-1) != 0 {
		return fmt.Errorf("msaa sample count %d is not a power of two", o.MSAA)
	}
	return nil
}

// applyHints maps the options onto window hints. Hints are global
// windowing state, so this must run after Init and before the window
// is created.
func (o *Options) applyHints() {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, hint(o.Decorated))
	if o.MSAA > 0 {
		glfw.WindowHint(glfw.Samples, o.MSAA)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if debugContext {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}
}

// createWindow opens the window, windowed or fullscreen on the primary
// monitor, and centers both it and the cursor on the monitor's current
// video mode.
func (o *Options) createWindow(monitor *glfw.Monitor) *glfw.Window {
	var fullscreenOn *glfw.Monitor
	if o.Fullscreen {
		fullscreenOn = monitor
	}
	window, err := glfw.CreateWindow(o.Width, o.Height, o.Title, fullscreenOn, nil)
	if err != nil {
		log.Fatalf("could not create the window: %s", err)
	}
	vidmode := monitor.GetVideoMode()
	if vidmode == nil {
		log.Fatalf("could not read the video mode of the primary monitor")
	}
	window.SetPos((vidmode.Width-o.Width)/2, (vidmode.Height-o.Height)/2)
	window.SetCursorPos(float64(o.Width)/2, float64(o.Height)/2)
	return window
}

// configureContext applies the options that live on the context rather
// than the window. The window's context must be current.
func (o *Options) configureContext(window *glfw.Window) {
	if o.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	if o.MSAA > 0 {
		gl.Enable(gl.MULTISAMPLE)
	} else {
		gl.Disable(gl.MULTISAMPLE)
	}
}

func hint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
