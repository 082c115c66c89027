package display

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestDispatchPreservesArrivalOrder(t *testing.T) {
	var got []Event
	d := &Display{handler: func(e Event) { got = append(got, e) }}
	d.push(KeyEvent{Key: glfw.KeyEscape, Action: glfw.Press})
	d.push(CursorPosEvent{X: 12, Y: 34})
	d.push(ScrollEvent{YOff: -1})
	d.dispatchQueued()
	assert.Equal(t, []Event{
		KeyEvent{Key: glfw.KeyEscape, Action: glfw.Press},
		CursorPosEvent{X: 12, Y: 34},
		ScrollEvent{YOff: -1},
	}, got)
}

func TestDispatchDeliversExactlyOnce(t *testing.T) {
	delivered := 0
	d := &Display{handler: func(Event) { delivered++ }}
	d.push(CloseEvent{})
	d.push(RefreshEvent{})
	d.dispatchQueued()
	d.dispatchQueued()
	assert.Equal(t, 2, delivered)
}

func TestEventsQueuedDuringDispatchWaitForNextBatch(t *testing.T) {
	var current []Event
	d := &Display{}
	d.handler = func(e Event) {
		current = append(current, e)
		if _, ok := e.(CloseEvent); ok {
			d.push(RefreshEvent{})
		}
	}
	d.push(CloseEvent{})
	d.push(CharEvent{Char: 'q'})
	d.dispatchQueued()
	first := current

	current = nil
	d.dispatchQueued()

	assert.Equal(t, []Event{CloseEvent{}, CharEvent{Char: 'q'}}, first)
	assert.Equal(t, []Event{RefreshEvent{}}, current)
}

func TestDispatchWithEmptyQueueDoesNothing(t *testing.T) {
	d := &Display{handler: func(Event) { t.Fatal("handler called without events") }}
	d.dispatchQueued()
}

func TestEventNamesAreStable(t *testing.T) {
	// These strings are metric label values, so they are part of the
	// public surface and must never change.
	want := map[Event]string{
		PosEvent{}:             "pos",
		SizeEvent{}:            "size",
		FramebufferSizeEvent{}: "framebuffer-size",
		CloseEvent{}:           "close",
		RefreshEvent{}:         "refresh",
		FocusEvent{}:           "focus",
		IconifyEvent{}:         "iconify",
		MaximizeEvent{}:        "maximize",
		ContentScaleEvent{}:    "content-scale",
		KeyEvent{}:             "key",
		CharEvent{}:            "char",
		MouseButtonEvent{}:     "mouse-button",
		CursorPosEvent{}:       "cursor-pos",
		CursorEnterEvent{}:     "cursor-enter",
		ScrollEvent{}:          "scroll",
	}
	seen := map[string]bool{}
	for e, name := range want {
		assert.Equal(t, name, Name(e))
		assert.False(t, seen[name], "duplicate event name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "drop", Name(DropEvent{Paths: []string{"/tmp/a"}}))
}
