package handler

import (
	"errors"
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Listar returns all access-log entries (admin only).
func (h *ReportesHandler) Listar(c *gin.Context) {
	reportes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportes)
}

// Registrar writes an access-log entry for a cita; at most one per day.
func (h *ReportesHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Cita no encontrada"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DescargarPDF renders and streams the visit report for a reporte.
func (h *ReportesHandler) DescargarPDF(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	path, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Reporte no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "reporte.pdf")
}
