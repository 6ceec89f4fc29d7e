package network

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/facefall/event"
)

// ErrHubClosed is returned when a connection arrives after Close
var ErrHubClosed = errors.New("event hub closed")

// Hub fans game events out to websocket spectators
// Spectators are read-only, inbound frames are discarded
type Hub struct {
	cfg      *Config
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[PeerID]*Peer
	nextID atomic.Uint32
	closed bool

	sent    atomic.Uint64
	encErrs atomic.Uint64
}

// NewHub creates a hub, nil config selects defaults
func NewHub(cfg *Config) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Spectator stream carries no credentials, any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
		peers: make(map[PeerID]*Peer),
	}
}

// ServeHTTP upgrades the request and registers the spectator
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	full := len(h.peers) >= h.cfg.MaxPeers
	closed := h.closed
	h.mu.RUnlock()

	if closed {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	if full {
		http.Error(w, "max peers reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[network] upgrade %s: %v", r.RemoteAddr, err)
		return
	}

	if _, err := h.add(conn); err != nil {
		conn.Close()
	}
}

func (h *Hub) add(conn *websocket.Conn) (*Peer, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	p := newPeer(PeerID(h.nextID.Add(1)), conn, h.cfg)
	h.peers[p.ID] = p

	go p.readLoop()
	go p.writeLoop()
	go h.monitor(p)

	log.Printf("[network] peer %d connected from %s", p.ID, p.Addr)
	return p, nil
}

func (h *Hub) monitor(p *Peer) {
	<-p.Done()

	h.mu.Lock()
	delete(h.peers, p.ID)
	h.mu.Unlock()

	log.Printf("[network] peer %d disconnected, %d frames dropped", p.ID, p.Dropped())
}

// EventTypes implements event.Handler, spectators receive every event
func (h *Hub) EventTypes() []event.EventType {
	return nil
}

// HandleEvent implements event.Handler
func (h *Hub) HandleEvent(ev event.GameEvent) {
	if h.PeerCount() == 0 {
		return
	}
	frame, err := Encode(ev)
	if err != nil {
		h.encErrs.Add(1)
		log.Printf("[network] %v", err)
		return
	}
	h.Broadcast(frame)
}

// Broadcast queues a frame on every peer without blocking
func (h *Hub) Broadcast(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, p := range h.peers {
		if p.Send(frame) {
			h.sent.Add(1)
		}
	}
}

// PeerCount returns current connected peer count
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Sent returns the number of frames queued across all peers
func (h *Hub) Sent() uint64 {
	return h.sent.Load()
}

// Close disconnects all peers and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.Unlock()

	for _, p := range peers {
		p.Close()
	}
}
