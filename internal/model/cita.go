package model

import "time"

// Estado de una cita. Any state outside Confirmada/Pendiente denies access.
const (
	EstadoPendiente  = "Pendiente"
	EstadoConfirmada = "Confirmada"
	EstadoCancelada  = "Cancelada"
)

// Cita is a scheduled access window owned by a user. Fecha/hora fields are
// kept as plain strings ("2006-01-02" / "15:04[:05]") and only combined into
// instants — under the configured fixed offset — at validation time.
//
// NumeroInvitados mirrors the count of Invitado rows referencing this cita.
// It is only mutated inside the same transaction as the guest row change.
type Cita struct {
	ID              uint   `gorm:"primaryKey"`
	IDUsuario       uint   `gorm:"column:id_usuario;index;not null"`
	FechaInicio     string `gorm:"column:fecha_inicio;type:varchar(10);not null"`
	FechaFin        string `gorm:"column:fecha_fin;type:varchar(10);not null"`
	HoraInicio      string `gorm:"column:hora_inicio;type:varchar(8);not null"`
	HoraFin         string `gorm:"column:hora_fin;type:varchar(8);not null"`
	Motivo          string `gorm:"not null"`
	EstadoCita      string `gorm:"column:estado_cita;type:varchar(20);not null;default:'Pendiente'"`
	NumeroInvitados int    `gorm:"column:numero_invitados;not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	QR        *CodigoQR  `gorm:"foreignKey:IDCita"`
	Invitados []Invitado `gorm:"foreignKey:IDCita"`
}

func (Cita) TableName() string { return "registro_citas" }
