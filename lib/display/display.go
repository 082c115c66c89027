package display

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rajputrajat/min-gl/lib/log"
	"github.com/rajputrajat/min-gl/lib/metrics"
)

// Handler receives every window event in arrival order. It runs on the
// context thread during Update, so it may touch GL state, but it must
// not destroy the display it is being called from.
type Handler func(Event)

// Display is one window with a current OpenGL 4.6 core context and the
// event queue feeding the handler. The zero value is useless; create
// one with New and keep it on the thread that created it.
type Display struct {
	window  *glfw.Window
	handler Handler
	events  []Event
}

// New initializes the windowing library, creates the window, makes its
// context current on the calling thread and loads the OpenGL functions
// into it. Every event category the window can produce is forwarded to
// handler by Update. The calling goroutine is locked to its OS thread;
// all further calls on the display must stay on it.
//
// Failures here are startup failures with nothing to fall back to, so
// each one is fatal with a diagnostic.
func New(opt Options, handler Handler) *Display {
	if err := opt.Validate(); err != nil {
		log.Fatalf("display options are invalid: %s", err)
	}
	if handler == nil {
		log.Fatalf("the event handler must not be nil")
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		log.Fatalf("could not initialize the windowing library: %s", err)
	}
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		log.Fatalf("could not find a primary monitor")
	}
	opt.applyHints()
	d := &Display{handler: handler}
	d.window = opt.createWindow(monitor)
	d.trackEvents()
	d.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		log.Fatalf("could not load the OpenGL functions: %s", err)
	}
	slog.Info(fmt.Sprintf(
		"OpenGL %s on %s (%s)",
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VENDOR)),
	), slog.String("module", "display"))
	opt.configureContext(d.window)
	return d
}

// Update polls the windowing library and hands every queued event to
// the handler in arrival order. Call it once per frame.
func (d *Display) Update() {
	glfw.PollEvents()
	d.dispatchQueued()
}

// dispatchQueued drains the queue that polling filled. Each event is
// delivered exactly once; events the handler enqueues while running
// stay queued for the next call.
func (d *Display) dispatchQueued() {
	if len(d.events) == 0 {
		return
	}
	batch := d.events
	d.events = nil
	for _, e := range batch {
		metrics.EventsDispatched.WithLabelValues(Name(e)).Inc()
		d.handler(e)
	}
}

// Render swaps the back and front buffers, then clears the new back
// buffer's colour attachment so the next frame starts from the clear
// colour. With VSync on, the swap blocks until a monitor refresh.
func (d *Display) Render() {
	start := time.Now()
	d.window.SwapBuffers()
	metrics.SwapDuration.Observe(time.Since(start).Seconds())
	metrics.FramesRendered.Inc()
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Window exposes the underlying window handle for calls this package
// does not wrap.
func (d *Display) Window() *glfw.Window {
	return d.window
}

// ShouldClose reports whether the user asked the window to close.
func (d *Display) ShouldClose() bool {
	return d.window.ShouldClose()
}

// Size returns the window size in screen coordinates.
func (d *Display) Size() (width, height int) {
	return d.window.GetSize()
}

// Time is the windowing library's monotonic clock in seconds since
// initialization. Good enough to drive animation and frame pacing.
func (d *Display) Time() float64 {
	return glfw.GetTime()
}

// Destroy drops the window with its context and shuts the windowing
// library down. The display must not be used afterwards. Programs that
// run their loop until process exit can skip this.
func (d *Display) Destroy() {
	d.window.Destroy()
	glfw.Terminate()
}
