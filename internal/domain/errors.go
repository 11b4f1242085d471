package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	// ErrUpstream cubre cualquier fallo del servicio de razonamiento:
	// HTTP no-2xx, sobre vacío o contenido que no parsea como JSON.
	ErrUpstream = errors.New("fallo del servicio de razonamiento")
	// ErrUpstreamAuth es el caso 401 del servicio de razonamiento; se reporta
	// aparte para que el operador distinga una API key mala de una caída.
	ErrUpstreamAuth = errors.New("servicio de razonamiento: credenciales rechazadas")
)
