// Package server exposes the game over WebSocket for browser clients.
// Every connection gets its own session with a private engine; the
// server owns the shared balancing tables, name pool, and chronicle.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/guildhall-game/guildhall/internal/balancing"
	"github.com/guildhall-game/guildhall/internal/config"
	"github.com/guildhall-game/guildhall/internal/engine"
	"github.com/guildhall-game/guildhall/internal/history"
	"github.com/guildhall-game/guildhall/internal/logger"
	"github.com/guildhall-game/guildhall/internal/npc"
)

type Server struct {
	cfg   *config.Config
	table *balancing.Table
	names *npc.NamePool

	chronicle *history.Chronicle

	httpServer   *http.Server
	sessions     map[string]*Session
	mu           sync.RWMutex
	shutdown     chan struct{}
	shutdownOnce sync.Once
	StartTime    time.Time
}

func NewServer(cfg *config.Config, table *balancing.Table, names *npc.NamePool) *Server {
	return &Server{
		cfg:       cfg,
		table:     table,
		names:     names,
		sessions:  make(map[string]*Session),
		shutdown:  make(chan struct{}),
		StartTime: time.Now(),
	}
}

// SetChronicle attaches the history store. Sessions started afterward
// record their settled quests and goals.
func (s *Server) SetChronicle(chronicle *history.Chronicle) {
	s.chronicle = chronicle
}

// Start serves websocket upgrades until Shutdown. Blocks.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocketUpgrade)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:    s.cfg.Server.ListenAddress,
		Handler: mux,
	}

	logger.Info("server listening", "address", s.cfg.Server.ListenAddress)

	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return fmt.Errorf("server stopped: %w", err)
}

// Shutdown stops accepting connections and closes every session.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		close(s.shutdown)
	})

	s.mu.Lock()
	for _, session := range s.sessions {
		session.Close()
	}
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// SessionCount returns the number of games in progress.
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// handleWebSocketUpgrade upgrades an HTTP connection and starts a game.
func (s *Server) handleWebSocketUpgrade(w http.ResponseWriter, r *http.Request) {
	select {
	case <-s.shutdown:
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	default:
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || sameOrigin(origin, r.Host) {
				return true
			}
			allowed := s.cfg.Server.IsOriginAllowed(origin)
			if !allowed {
				logger.Warn("websocket origin rejected", "origin", origin, "remote", r.RemoteAddr)
			}
			return allowed
		},
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}

	client := NewWebSocketClient(wsConn, s.cfg.Server.MaxMessageSize)

	var extra []engine.Notifier
	if s.chronicle != nil {
		extra = append(extra, history.NewRecorder(s.chronicle))
	}

	session := NewSession(client, s.cfg.Game, s.table, s.names, time.Now().UnixNano(), extra...)

	s.mu.Lock()
	s.sessions[session.ID()] = session
	s.mu.Unlock()

	logger.Info("session started", "session", session.ID(), "remote", client.RemoteAddr())

	go func() {
		session.Run()
		s.mu.Lock()
		delete(s.sessions, session.ID())
		s.mu.Unlock()
	}()
}

// sameOrigin reports whether an Origin header points back at the host
// serving the request
func sameOrigin(origin, host string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == host
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok sessions=%d uptime=%s\n", s.SessionCount(), time.Since(s.StartTime).Round(time.Second))
}
