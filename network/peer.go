package network

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// PeerID uniquely identifies a connected spectator
type PeerID uint32

// Peer is one websocket spectator
type Peer struct {
	ID       PeerID
	Addr     string
	LastSeen atomic.Int64 // UnixNano

	conn    *websocket.Conn
	cfg     *Config
	sendCh  chan []byte
	dropped atomic.Uint64

	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(id PeerID, conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      id,
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame for transmission
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- frame:
		return true
	default:
		p.dropped.Add(1)
		return false
	}
}

// Dropped returns the number of frames discarded on a full queue
func (p *Peer) Dropped() uint64 {
	return p.dropped.Load()
}

// Close initiates shutdown, safe to call more than once
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Done is closed when the peer shuts down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop discards inbound frames and keeps the pong deadline alive
func (p *Peer) readLoop() {
	defer p.Close()

	p.conn.SetReadLimit(p.cfg.ReadLimit)
	_ = p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongTimeout))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[network] peer %d read: %v", p.ID, err)
			}
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop sends queued frames and periodic pings
func (p *Peer) writeLoop() {
	ticker := time.NewTicker(p.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.closeCh:
			_ = p.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(p.cfg.WriteTimeout))
			return
		case frame := <-p.sendCh:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
