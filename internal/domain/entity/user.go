package entity

import "time"

// User representa una cuenta del sistema. Inmutable tras el registro:
// no hay operaciones de update ni delete sobre usuarios.
type User struct {
	ID           string
	Email        string
	CompanyName  string
	PasswordHash string // bcrypt, nunca en texto plano después de persistir
	CreatedAt    time.Time
}
