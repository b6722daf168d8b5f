package dto

type RegistrarInvitadoRequest struct {
	Nombre        string `json:"nombre"         validate:"required"`
	Correo        string `json:"correo"         validate:"required,email"`
	Empresa       string `json:"empresa"`
	TipoVisitante string `json:"tipo_visitante"`
	IDCita        uint   `json:"id_cita"        validate:"required"`
}

// ActualizarInvitadoRequest replaces the guest's descriptive fields.
// id_cita and the cita counter are immutable through this path.
type ActualizarInvitadoRequest struct {
	Nombre        string `json:"nombre"         validate:"required"`
	Correo        string `json:"correo"         validate:"required,email"`
	Empresa       string `json:"empresa"`
	TipoVisitante string `json:"tipo_visitante"`
}

type RegistrarInvitadoResponse struct {
	IDInvitado uint   `json:"id_invitado"`
	Correo     string `json:"correo"`
}

type InvitadoResponse struct {
	ID            uint   `json:"id"`
	IDCita        uint   `json:"id_cita"`
	Nombre        string `json:"nombre"`
	Correo        string `json:"correo"`
	Empresa       string `json:"empresa"`
	TipoVisitante string `json:"tipo_visitante"`
}
