package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mingl_frames_rendered_total",
		Help: "Total number of buffer swaps performed by Render",
	})
	EventsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mingl_events_dispatched_total",
		Help: "Total number of window events handed to the event handler",
	}, []string{"type"})
	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mingl_api_events_dropped_total",
		Help: "Total number of events not forwarded to the debug API because its buffer was full",
	})
	SwapDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "mingl_swap_seconds",
		Help: "Time spent in SwapBuffers; dominated by the vsync wait when enabled",
		// vsync stalls sit around 16.6ms at 60Hz, unbounded swaps well below 1ms
		Buckets: []float64{.0001, .0005, .001, .005, .01, .02, .05, .1},
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
