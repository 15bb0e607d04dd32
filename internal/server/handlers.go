package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	qr "github.com/neetosena/monster-game/internal/qrcode"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	hub *Hub
}

func NewHandlers(hub *Hub) *Handlers {
	return &Handlers{hub: hub}
}

// HandleWS upgrades the connection and hands it to the hub, which
// assigns a player identity or refuses with roomFull.
func (h *Handlers) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade error")
		return
	}

	client := NewClient(h.hub, conn, uuid.NewString())
	go client.WritePump()
	h.hub.register <- client
	go client.ReadPump()
}

// HandleQR generates a QR code PNG linking to the game.
func (h *Handlers) HandleQR(w http.ResponseWriter, r *http.Request) {
	url := fmt.Sprintf("http://%s/", r.Host)
	png, err := qr.Generate(url, 256)
	if err != nil {
		http.Error(w, "QR generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// HandleHistory returns the resolved rounds so far.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.hub.History()); err != nil {
		log.Error().Err(err).Msg("history encode error")
	}
}

// HandleReset restarts the game from round-1 placement.
func (h *Handlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.hub.Reset()
	w.WriteHeader(http.StatusNoContent)
}
