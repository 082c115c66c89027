package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	_ "github.com/rajputrajat/min-gl/docs"
	"github.com/rajputrajat/min-gl/lib/api"
	"github.com/rajputrajat/min-gl/lib/config"
	"github.com/rajputrajat/min-gl/lib/display"
	"github.com/rajputrajat/min-gl/lib/log"
	"github.com/rajputrajat/min-gl/lib/stats"
	"github.com/rajputrajat/min-gl/lib/utils"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

// @title			min-gl debug api
// @version		0.1
// @description	Runtime introspection and control for the min-gl render loop.
func main() {
	configPtr := flag.String("config", "", "Path to a yaml config file, watched for rewrites")
	titlePtr := flag.String("title", "min-gl demo", "Window title")
	widthPtr := flag.Uint("width", 1280, "Window width in pixels")
	heightPtr := flag.Uint("height", 720, "Window height in pixels")
	fullscreenPtr := flag.Bool("fullscreen", false, "Cover the whole primary monitor")
	decoratedPtr := flag.Bool("decorated", true, "Give the window a frame")
	msaaPtr := flag.Uint("msaa", 0, "Multisampling sample count, a power of two, 0 disables")
	vsyncPtr := flag.Bool("vsync", true, "Wait for a monitor refresh on every swap")
	logEventsPtr := flag.Bool("log-events", false, "Log every window event")
	debugPtr := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	log.Setup(*debugPtr)
	l := log.Module("demo")

	cfg := &config.Config{
		Window: &config.WindowCfg{
			Width:     1280,
			Height:    720,
			Title:     "min-gl demo",
			Decorated: true,
			VSync:     true,
		},
		ClearColour: "#1d1f21ff",
	}
	if *configPtr != "" {
		var err error
		cfg, err = config.Parse(*configPtr)
		if err != nil {
			log.Fatalf("%s", err)
		}
	}

	// flags that were given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			cfg.Window.Title = *titlePtr
		case "width":
			cfg.Window.Width = int(*widthPtr)
		case "height":
			cfg.Window.Height = int(*heightPtr)
		case "fullscreen":
			cfg.Window.Fullscreen = *fullscreenPtr
		case "decorated":
			cfg.Window.Decorated = *decoratedPtr
		case "msaa":
			cfg.Window.MSAA = int(*msaaPtr)
		case "vsync":
			cfg.Window.VSync = *vsyncPtr
		case "log-events":
			cfg.LogEvents = *logEventsPtr
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%s", err)
	}

	theApi := api.ServeInBackground(cfg.Api)
	st := stats.New()
	if theApi != nil {
		st = theApi.Stats
		theApi.SetConfig(cfg)
	}

	logEvents := cfg.LogEvents
	var d *display.Display
	handler := func(e display.Event) {
		st.CountEvents(1)
		if theApi != nil {
			theApi.PublishEvent(e)
		}
		if logEvents {
			l.Debug(fmt.Sprintf("%s: %+v", display.Name(e), e))
		}
		switch ev := e.(type) {
		case display.KeyEvent:
			if ev.Key == glfw.KeyEscape && ev.Action == glfw.Press {
				d.Window().SetShouldClose(true)
			}
		case display.DropEvent:
			l.Info(fmt.Sprintf("dropped onto the window: %v", ev.Paths))
		}
	}

	d = display.New(cfg.Window.DisplayOptions(), handler)
	setIcon(d, cfg.Window.Icon, l)
	applyLive(d, cfg)

	// config rewrites land here and get picked up between frames
	var pending atomic.Pointer[config.Config]
	if *configPtr != "" {
		go config.Watch(*configPtr, func(next *config.Config) {
			pending.Store(next)
		})
	}

	base := utils.ColourParse(cfg.ClearColour).Vec4()
	var phase float32
	var deltaTimer utils.DeltaTimer
	for !d.ShouldClose() {
		if theApi != nil && theApi.KillRequested() {
			break
		}
		d.Update()

		// pulse the clear colour around its configured base so a
		// running demo is visibly alive
		dt := deltaTimer.Next()
		phase += float32(dt.Seconds())
		pulse := base.Mul(0.85 + 0.15*float32(math.Sin(float64(phase))))
		gl.ClearColor(pulse.X(), pulse.Y(), pulse.Z(), base.W())

		d.Render()
		st.Update()

		if next := pending.Swap(nil); next != nil {
			cfg = next
			logEvents = cfg.LogEvents
			base = utils.ColourParse(cfg.ClearColour).Vec4()
			applyLive(d, cfg)
			if theApi != nil {
				theApi.SetConfig(cfg)
			}
		}
	}

	snap := st.Snapshot()
	l.Info(fmt.Sprintf(
		"%d frames and %d events in %.1fs (%.1f fps average)",
		snap.Frames, snap.Events, snap.Uptime, float64(snap.Frames)/snap.Uptime,
	))
	d.Destroy()
}

// applyLive applies the config knobs that can change on a running
// window. Geometry and context options only apply to new windows and
// are left alone.
func applyLive(d *display.Display, cfg *config.Config) {
	d.Window().SetTitle(cfg.Window.Title)
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func setIcon(d *display.Display, path config.CfgPath, l *slog.Logger) {
	if path == "" {
		return
	}
	f, err := os.Open(string(path))
	if err != nil {
		l.Warn(fmt.Sprintf("could not open window icon: %s", err))
		return
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		l.Warn(fmt.Sprintf("could not decode window icon: %s", err))
		return
	}
	d.Window().SetIcon([]image.Image{img})
}
