package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// InvitadoEmbebido is a guest supplied inline with POST /citas.
type InvitadoEmbebido struct {
	Nombre        string `json:"nombre"         validate:"required"`
	Correo        string `json:"correo"         validate:"required,email"`
	Empresa       string `json:"empresa"`
	TipoVisitante string `json:"tipo_visitante"`
}

// RegistrarCitaRequest creates a cita, its QR token and its guest list in a
// single transaction. numero_invitados is NOT accepted from the caller — it
// is always recomputed from len(Invitados).
type RegistrarCitaRequest struct {
	FechaInicio string             `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string             `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`
	HoraInicio  string             `json:"hora_inicio"  validate:"required"`
	HoraFin     string             `json:"hora_fin"     validate:"required"`
	Motivo      string             `json:"motivo"       validate:"required"`
	EstadoCita  string             `json:"estado_cita"  validate:"required,oneof=Pendiente Confirmada Cancelada"`
	Invitados   []InvitadoEmbebido `json:"invitados"    validate:"omitempty,dive"`
}

// ActualizarCitaRequest replaces the six scalar fields of a cita. Guests and
// the QR token are never touched here.
type ActualizarCitaRequest struct {
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin"    validate:"required,datetime=2006-01-02"`
	HoraInicio  string `json:"hora_inicio"  validate:"required"`
	HoraFin     string `json:"hora_fin"     validate:"required"`
	Motivo      string `json:"motivo"       validate:"required"`
	EstadoCita  string `json:"estado_cita"  validate:"required,oneof=Pendiente Confirmada Cancelada"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// RegistrarCitaResponse mirrors the original API contract: the new cita id
// plus the freshly generated QR token.
type RegistrarCitaResponse struct {
	IDCita  uint   `json:"id_cita"`
	TokenQR string `json:"token_qr"`
}

// CitaResponse decorates a cita with its computed validation URL
// ({base_url}/qr/validar/{token}); null when no token row exists.
type CitaResponse struct {
	ID              uint    `json:"id"`
	IDUsuario       uint    `json:"id_usuario"`
	FechaInicio     string  `json:"fecha_inicio"`
	FechaFin        string  `json:"fecha_fin"`
	HoraInicio      string  `json:"hora_inicio"`
	HoraFin         string  `json:"hora_fin"`
	Motivo          string  `json:"motivo"`
	EstadoCita      string  `json:"estado_cita"`
	NumeroInvitados int     `json:"numero_invitados"`
	URLValidacion   *string `json:"url_validacion"`
	CreatedAt       string  `json:"created_at"`
}
