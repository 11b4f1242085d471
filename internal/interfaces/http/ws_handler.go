package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/logistica-api/internal/realtime"
)

// WSUpgrade deja pasar solo peticiones que piden upgrade a WebSocket.
func WSUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// DecisionsSocket registra la conexión en el hub tras el handshake y la
// mantiene abierta leyendo (y descartando) los frames entrantes. Al cerrar
// o fallar la lectura, la conexión se retira del hub.
func DecisionsSocket(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
