package display

import (
	"os"
	"os/exec"
	"testing"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWindowedLifecycle drives a real window for a few frames. It needs
// a display server and a GL 4.6 driver, so it only runs when asked to:
//
//	MINGL_DISPLAY_TEST=1 go test ./lib/display
func TestWindowedLifecycle(t *testing.T) {
	if os.Getenv("MINGL_DISPLAY_TEST") == "" {
		t.Skip("set MINGL_DISPLAY_TEST=1 to run tests that open a window")
	}
	events := 0
	d := New(Options{
		Width:     640,
		Height:    360,
		Title:     "display lifecycle",
		Decorated: true,
		MSAA:      4,
		VSync:     true,
	}, func(Event) { events++ })
	defer d.Destroy()

	require.NotNil(t, d.Window())
	w, h := d.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 360, h)
	assert.False(t, d.ShouldClose())

	gl.ClearColor(0.7, 0.5, 0.6, 1.0)
	before := d.Time()
	for range 3 {
		d.Update()
		d.Render()
	}
	assert.Greater(t, d.Time(), before)
	t.Logf("dispatched %d events while pumping", events)
}

// TestNewRejectsANilHandler re-runs itself as a child process because
// the rejection is fatal. The guard fires before any window or context
// work, so the child needs no display server.
func TestNewRejectsANilHandler(t *testing.T) {
	if os.Getenv("MINGL_NIL_HANDLER_CHILD") == "1" {
		New(Options{Width: 640, Height: 360, Title: "no handler"}, nil)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestNewRejectsANilHandler$")
	cmd.Env = append(os.Environ(), "MINGL_NIL_HANDLER_CHILD=1")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "a nil handler must end the process, not return")
	assert.False(t, exitErr.Success())
	assert.Contains(t, string(out), "event handler must not be nil")
}
