package dto

type RegistrarReporteRequest struct {
	IDCita        uint    `json:"id_cita" validate:"required"`
	Observaciones *string `json:"observaciones"`
}

type ReporteResponse struct {
	ID            uint    `json:"id"`
	IDCita        uint    `json:"id_cita"`
	Observaciones *string `json:"observaciones"`
	CreatedAt     string  `json:"created_at"`
}
