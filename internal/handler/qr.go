package handler

import (
	"net/http"
	"net/url"

	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

// QRHandler is the doorman-facing boundary: it maps the validation engine's
// decision to a frontend redirect carrying ?status= and &reason= params.
type QRHandler struct {
	svc         service.QRService
	reportes    service.ReporteService
	frontendURL string
}

func NewQRHandler(svc service.QRService, reportes service.ReporteService, frontendURL string) *QRHandler {
	return &QRHandler{svc: svc, reportes: reportes, frontendURL: frontendURL}
}

// Validar godoc
// @Summary      Validar un token QR
// @Description  Resuelve el token a una decision de acceso y redirige al frontend con ?status=valido o ?status=denegado&reason=<codigo>.
// @Tags         qr
// @Param        token path string true "Token QR"
// @Success      302
// @Router       /qr/validar/{token} [get]
func (h *QRHandler) Validar(c *gin.Context) {
	token := c.Param("token")
	decision := h.svc.Validar(c.Request.Context(), token)

	if decision.Valido() && h.reportes != nil {
		// Access log is best-effort: never blocks or fails the scan.
		h.reportes.RegistrarAcceso(c.Request.Context(), decision.IDCita)
	}

	q := url.Values{}
	q.Set("status", decision.Status)
	if !decision.Valido() {
		q.Set("reason", decision.Razon)
	}
	c.Redirect(http.StatusFound, h.frontendURL+"?"+q.Encode())
}
