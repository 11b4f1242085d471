package entity

import "time"

// Document son los campos comunes de todo documento del almacén de registros.
// El ID se asigna al crear y es inmutable; UpdatedAt solo existe tras un update.
type Document struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DocumentID devuelve el identificador del documento.
func (d *Document) DocumentID() string { return d.ID }

// CreationTime devuelve la marca de creación.
func (d *Document) CreationTime() time.Time { return d.CreatedAt }

// Stamp fija id y fecha de creación (al insertar, o al reemplazar en un update
// para conservar el created_at original).
func (d *Document) Stamp(id string, createdAt time.Time) {
	d.ID = id
	d.CreatedAt = createdAt
}

// Touch marca la fecha de última actualización.
func (d *Document) Touch(now time.Time) {
	d.UpdatedAt = &now
}
