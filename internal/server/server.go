package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/neetosena/monster-game/internal/engine"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	hub      *Hub
	handlers *Handlers
	port     int
	static   embed.FS
}

func New(port int, config engine.GameConfig, static embed.FS) (*Server, error) {
	hub, err := NewHub(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		hub:      hub,
		handlers: NewHandlers(hub),
		port:     port,
		static:   static,
	}, nil
}

func (s *Server) Start() error {
	go s.hub.Run()

	r := chi.NewRouter()

	r.Get("/ws", s.handlers.HandleWS)
	r.Get("/api/qr", s.handlers.HandleQR)
	r.Get("/api/history", s.handlers.HandleHistory)
	r.Post("/api/reset", s.handlers.HandleReset)

	// Static client from the embedded FS
	sub, err := fs.Sub(s.static, "web/static")
	if err != nil {
		return fmt.Errorf("static fs: %w", err)
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	addr := fmt.Sprintf(":%d", s.port)
	log.Info().Str("addr", addr).Msg("monster game server listening")
	return http.ListenAndServe(addr, r)
}
