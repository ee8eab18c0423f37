package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/topronto/admin-backoffice/internal/realtime"
)

type RealtimeHandler struct {
	Hub *realtime.Hub
	Log *slog.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, log *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{Hub: hub, Log: log}
}

// Upgrade must run after RequireAdmin: only admin sessions get a socket.
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}

// WebSocketHandler streams cache invalidations to the admin screens. The
// user id comes from the locals RequireAdmin set before the upgrade.
func (h *RealtimeHandler) WebSocketHandler(c *websocket.Conn) {
	userID, err := userUUID(c.Locals("userId"))
	if err != nil {
		h.Log.Warn("ws without admin identity, closing", "error", err)
		_ = c.Close()
		return
	}

	client := realtime.NewClient(userID, realtime.NewWebSocketConn(c))
	h.Log.Debug("ws connected", "user", userID, "client", client.ID)
	realtime.Serve(h.Hub, client, h.Log)
}

func (h *RealtimeHandler) Routes(app *fiber.App, requireAdmin fiber.Handler) {
	app.Get("/ws/admin", requireAdmin, h.Upgrade, websocket.New(h.WebSocketHandler))
}
