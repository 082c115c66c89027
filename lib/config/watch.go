package config

import (
	"fmt"
	"time"

	"github.com/jhenstridge/go-inotify"

	"github.com/rajputrajat/min-gl/lib/log"
)

// Watch re-parses filename every time it is written to and hands each
// result that passes validation to apply. Saves that do not parse are
// logged and skipped, so the last good config stays in effect. Watch
// blocks forever; run it in a goroutine. apply runs on the watcher
// goroutine, so it must hand the config over to the render loop
// instead of touching GL state itself.
func Watch(filename string, apply func(*Config)) {
	l := log.Module("config")

	watcher, err := inotify.NewWatcher()
	if err != nil {
		l.Error(fmt.Sprintf("could not create an inotify watcher: %s", err))
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	_, err = watcher.Watch(filename)
	if err != nil {
		l.Error(fmt.Sprintf("could not watch %s: %s", filename, err))
		return
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		// editors write in bursts, let the file settle first
		time.Sleep(100 * time.Millisecond)

		cfg, err := Parse(filename)
		if err != nil {
			l.Error(fmt.Sprintf("ignoring config reload: %s", err))
			continue
		}
		l.Info(fmt.Sprintf("reloaded %s", filename))
		apply(cfg)
	}
}
