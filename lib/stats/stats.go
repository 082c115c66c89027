package stats

import (
	"sync"
	"time"
)

// Stats tracks the render loop, refreshed once per frame. The exported
// fields marshal straight into /api/stats responses. The render loop
// writes through Update and CountEvents; every other goroutine reads
// through Snapshot.
type Stats struct {
	Uptime    float64 `json:"uptime"`
	FPS       uint64  `json:"fps"`
	Frames    uint64  `json:"frames"`
	Events    uint64  `json:"events"`
	WsClients int     `json:"ws_clients"`

	mu           sync.Mutex
	frameCounter uint64
	frameTimer   time.Time
	start        time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	s.frameTimer = s.start
	return s
}

// Update counts the frame and republishes the per-second numbers once
// every second. Call it once per frame from the render loop.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Frames++
	s.frameCounter++
	if time.Since(s.frameTimer) > 1*time.Second {
		s.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = time.Now()
	}

	s.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}

// CountEvents records n window events handed to the handler.
func (s *Stats) CountEvents(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events += uint64(n)
}

// SetWsClients publishes the current websocket subscriber count.
func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.WsClients = n
}

// Snapshot returns a consistent copy for goroutines other than the
// render loop, such as the api handlers and the websocket ticker.
func (s *Stats) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Uptime:    s.Uptime,
		FPS:       s.FPS,
		Frames:    s.Frames,
		Events:    s.Events,
		WsClients: s.WsClients,
	}
}
