package model

import "time"

// Invitado is a person attached to a cita. Guests are not authenticated —
// they enter under the cita's QR token.
type Invitado struct {
	ID            uint   `gorm:"primaryKey"`
	IDCita        uint   `gorm:"column:id_cita;index;not null"`
	Nombre        string `gorm:"not null"`
	Correo        string `gorm:"not null"`
	Empresa       string
	TipoVisitante string `gorm:"column:tipo_visitante;type:varchar(40)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Invitado) TableName() string { return "invitados" }
