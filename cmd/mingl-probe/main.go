package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

// Reports what the local driver offers a 4.6 core context, without
// ever showing a window. Handy for checking a machine before filing
// display bugs.
func main() {
	if err := glfw.Init(); err != nil {
		log.Fatalf("could not initialize the windowing library: %s", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(64, 64, "mingl-probe", nil, nil)
	if err != nil {
		log.Fatalf("could not create a hidden window: %s", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalf("could not load the OpenGL functions: %s", err)
	}

	fmt.Printf("vendor:     %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Printf("renderer:   %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Printf("gl version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Printf("glsl:       %s\n", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	var maxSamples int32
	gl.GetIntegerv(gl.MAX_SAMPLES, &maxSamples)
	fmt.Printf("max msaa:   %d\n", maxSamples)

	primary := glfw.GetPrimaryMonitor()
	if primary == nil {
		log.Fatalf("could not find a primary monitor")
	}
	// GetMonitors and GetPrimaryMonitor return fresh wrappers around the
	// same handle, so the primary is matched by position, not by pointer.
	px, py := primary.GetPos()
	for _, monitor := range glfw.GetMonitors() {
		x, y := monitor.GetPos()
		fmt.Println(monitorLine(monitor.GetName(), monitor.GetVideoMode(), x == px && y == py))
	}
}

func monitorLine(name string, m *glfw.VidMode, primary bool) string {
	marker := " "
	if primary {
		marker = "*"
	}
	if m == nil {
		return fmt.Sprintf("monitor:  %s %s (no current video mode)", marker, name)
	}
	return fmt.Sprintf(
		"monitor:  %s %s %dx%d@%dHz rgb%d%d%d",
		marker, name,
		m.Width, m.Height, m.RefreshRate,
		m.RedBits, m.GreenBits, m.BlueBits,
	)
}
