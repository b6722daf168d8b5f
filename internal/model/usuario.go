package model

import "time"

// Tipo de usuario — role checks always go through middleware.RequireRole,
// never ad hoc string comparisons in handlers.
const (
	TipoAdministrador = "Administrador"
	TipoUsuario       = "Usuario"
)

const (
	UsuarioActivo   = "Activo"
	UsuarioInactivo = "Inactivo"
)

// Usuario stores system users with role-based access.
type Usuario struct {
	ID         uint   `gorm:"primaryKey"`
	Nombre     string `gorm:"not null"`
	Apellidos  string
	Correo     string `gorm:"uniqueIndex;not null"`
	Contrasena string `gorm:"not null"` // bcrypt hash
	Telefono   *string
	Tipo       string `gorm:"type:varchar(20);not null;default:'Usuario'"`
	Estado     string `gorm:"type:varchar(20);not null;default:'Activo'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Usuario) TableName() string { return "usuarios" }
