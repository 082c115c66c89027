package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rajputrajat/min-gl/lib/display"
	"github.com/rajputrajat/min-gl/lib/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(req *http.Request) bool {
		return true
	},
}

// wsClient is one websocket subscriber. All writes go through out so
// that exactly one goroutine ever talks to the connection.
type wsClient struct {
	ws  *websocket.Conn
	out chan []byte
}

// EventPacket is the wire format of the event stream: the stable event
// name next to the event's own fields.
type EventPacket struct {
	Event string        `json:"event"`
	Data  display.Event `json:"data"`
}

// @Summary	Open websocket for periodic stats and the live window event stream
// @Router		/api/ws [get]
// @Param		Upgrade	header	string	true	"websocket"
// @Tags		base
// @Success	101
func (a *Api) handleWebsocket(w http.ResponseWriter, req *http.Request) {
	ws, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't make websocket: %s", err), 400)
		return
	}
	c := &wsClient{ws: ws, out: make(chan []byte, 64)}

	a.wsMu.Lock()
	a.wsClients[c] = true
	a.Stats.SetWsClients(len(a.wsClients))
	a.wsMu.Unlock()

	go a.clientWriter(c)

	for {
		_, _, err := ws.ReadMessage()
		if err != nil {
			break
		}
	}

	a.wsMu.Lock()
	delete(a.wsClients, c)
	a.Stats.SetWsClients(len(a.wsClients))
	close(c.out)
	a.wsMu.Unlock()
}

func (a *Api) clientWriter(c *wsClient) {
	statsTicker := time.NewTicker(2 * time.Second)
	defer func() {
		statsTicker.Stop()
		err := c.ws.Close()
		if err != nil {
			return
		}
	}()
	timeout := 10 * time.Second
	for {
		var packet []byte
		select {
		case p, ok := <-c.out:
			if !ok {
				return
			}
			packet = p
		case <-statsTicker.C:
			p, err := json.Marshal(a.Stats.Snapshot())
			if err != nil {
				return
			}
			packet = p
		}
		err := c.ws.SetWriteDeadline(time.Now().Add(timeout))
		if err != nil {
			a.log.Error(fmt.Sprintf("could not set write deadline: %s", err))
			return
		}
		if err := c.ws.WriteMessage(websocket.TextMessage, packet); err != nil {
			return
		}
	}
}

// PublishEvent queues one window event for every connected websocket.
// It never blocks the render loop: subscribers that cannot keep up get
// events dropped and counted instead.
func (a *Api) PublishEvent(e display.Event) {
	a.wsMu.Lock()
	defer a.wsMu.Unlock()
	if len(a.wsClients) == 0 {
		return
	}
	packet, err := json.Marshal(EventPacket{Event: display.Name(e), Data: e})
	if err != nil {
		return
	}
	for c := range a.wsClients {
		select {
		case c.out <- packet:
		default:
			metrics.EventsDropped.Inc()
		}
	}
}
