package realtime

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/logistica-api/internal/application/ports"
)

var _ ports.Broadcaster = (*Hub)(nil)

// Conn es lo que el hub necesita de una conexión en tiempo real.
// *websocket.Conn de gofiber/contrib lo satisface; los tests usan fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub es el registro de conexiones abiertas: alta, baja y broadcast a todas.
// El set mutable va protegido por mutex; las escrituras a los sockets ocurren
// fuera del lock para que un suscriptor lento no bloquee nuevas altas.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]struct{}
	log   zerolog.Logger

	// writeMu serializa los broadcasts entre sí: la conexión websocket admite
	// un solo escritor a la vez, y dos submits en vuelo disparan dos
	// broadcasts concurrentes. Es un mutex aparte de mu para que las altas
	// y bajas nunca esperen por un suscriptor lento.
	writeMu sync.Mutex
}

// NewHub construye el registro vacío.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[Conn]struct{}),
		log:   log,
	}
}

// Register añade una conexión al set. Se llama después del handshake:
// a partir de aquí la conexión recibe todos los broadcasts.
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	h.conns[c] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("connections", n).Msg("conexión registrada")
}

// Unregister quita una conexión del set. Es idempotente: quitar una conexión
// ausente no es un error.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	delete(h.conns, c)
	n := len(h.conns)
	h.mu.Unlock()
	h.log.Debug().Int("connections", n).Msg("conexión retirada")
}

// Count devuelve el número de conexiones registradas.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast envía el mismo mensaje a todas las conexiones registradas,
// best-effort: el fallo de una no aborta la entrega al resto, y la conexión
// que falla se retira y se cierra como efecto colateral. Sin garantía de
// orden entre conexiones, sin acuse, sin replay. Los broadcasts se
// serializan entre sí (writeMu): nunca hay dos escritores simultáneos
// sobre la misma conexión.
func (h *Hub) Broadcast(msg any) {
	h.mu.Lock()
	snapshot := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		snapshot = append(snapshot, c)
	}
	h.mu.Unlock()

	h.writeMu.Lock()
	var failed []Conn
	for _, c := range snapshot {
		if err := c.WriteJSON(msg); err != nil {
			h.log.Warn().Err(err).Msg("fallo enviando broadcast, retirando conexión")
			failed = append(failed, c)
		}
	}
	h.writeMu.Unlock()

	for _, c := range failed {
		h.Unregister(c)
		_ = c.Close()
	}
}
