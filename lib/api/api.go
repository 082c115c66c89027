package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rajputrajat/min-gl/lib/config"
	"github.com/rajputrajat/min-gl/lib/log"
	"github.com/rajputrajat/min-gl/lib/metrics"
	"github.com/rajputrajat/min-gl/lib/stats"
)

//go:embed static/*
var content embed.FS
var contentFS, _ = fs.Sub(content, "static")

// Api is the debug server that runs next to the render loop. It serves
// live stats, the websocket event stream, prometheus metrics and the
// swagger UI, and carries the kill flag the loop polls every frame.
type Api struct {
	srv http.Server
	mux *http.ServeMux
	cfg *config.ApiCfg
	log *slog.Logger

	Stats *stats.Stats

	current atomic.Pointer[config.Config]
	kill    atomic.Bool

	wsMu      sync.Mutex
	wsClients map[*wsClient]bool
}

func New(cfg *config.ApiCfg) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.log = log.Module("api")
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*wsClient]bool)
	a.Stats = stats.New()
	return a
}

func (a *Api) Serve() error {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/config", a.getConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	a.mux.Handle("/", http.FileServer(http.FS(contentFS)))
	return a.srv.ListenAndServe()
}

// SetConfig publishes the config the render loop currently runs with,
// so /api/config reflects live state across reloads.
func (a *Api) SetConfig(cfg *config.Config) {
	a.current.Store(cfg)
}

// KillRequested reports whether /api/kill was hit. The render loop
// polls it once per frame and winds down when it flips.
func (a *Api) KillRequested() bool {
	return a.kill.Load()
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Ask the render loop to wind down after the current frame
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log.Info("shutting down as per api request")
	a.kill.Store(true)
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log.Error(fmt.Sprintf("could not write response: %s", err))
		return
	}
}

// @Summary	Fetch a snapshot of the render loop counters
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Stats
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats.Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
	_, err = fmt.Fprintf(w, "\n")
	if err != nil {
		a.log.Error(fmt.Sprintf("could not write response: %s", err))
		return
	}
}

// @Summary	Dump the config the render loop currently runs with
// @Router		/api/config [get]
// @Tags		base
// @Produce	plain
// @Success	200	{string}	string
// @Failure	404	{string}	string	"No config was published yet"
func (a *Api) getConfig(w http.ResponseWriter, _ *http.Request) {
	cfg := a.current.Load()
	if cfg == nil {
		http.Error(w, "no config was published yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := fmt.Fprint(w, cfg.String())
	if err != nil {
		a.log.Error(fmt.Sprintf("could not write response: %s", err))
		return
	}
}

// ServeInBackground starts the api on its own goroutine when an api
// section is configured and returns nil otherwise.
func ServeInBackground(cfg *config.ApiCfg) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg)

		theApi.log.Info(fmt.Sprintf("serving debug api on http://%s/", cfg.Bind))
		go func() {
			err := theApi.Serve()
			if err != nil {
				log.Fatalf("could not start web server: %s", err)
			}
		}()
	}
	return theApi
}
