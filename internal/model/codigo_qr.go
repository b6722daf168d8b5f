package model

import "time"

// CodigoQR is the opaque credential scanned at the gate. One token per cita,
// created in the same transaction as the cita itself and immutable afterwards.
type CodigoQR struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"uniqueIndex;type:varchar(36);not null"`
	IDCita    uint   `gorm:"column:id_cita;index;not null"`
	CreatedAt time.Time
}

func (CodigoQR) TableName() string { return "codigo_qr" }
