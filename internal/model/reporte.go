package model

import "time"

// Reporte is an access-log row: one per cita per day, written when a scan
// is accepted (or registered manually by an administrator).
type Reporte struct {
	ID            uint `gorm:"primaryKey"`
	IDCita        uint `gorm:"column:id_cita;index;not null"`
	Observaciones *string
	CreatedAt     time.Time
}

func (Reporte) TableName() string { return "reportes" }
