package handler

import (
	"errors"
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/middleware"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

type CitasHandler struct{ svc service.CitaService }

func NewCitasHandler(svc service.CitaService) *CitasHandler { return &CitasHandler{svc: svc} }

// ListarTodas godoc
// @Summary      Listar todas las citas
// @Description  Retorna todas las citas decoradas con su URL de validacion QR.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  dto.CitaResponse
// @Failure      500 {object} apierror.APIError
// @Router       /citas [get]
func (h *CitasHandler) ListarTodas(c *gin.Context) {
	citas, err := h.svc.ListarTodas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citas)
}

// MisCitas godoc
// @Summary      Listar mis citas
// @Description  Retorna las citas del usuario autenticado, con URL de validacion.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CitaResponse
// @Router       /citas/mis-citas [get]
func (h *CitasHandler) MisCitas(c *gin.Context) {
	claims := middleware.GetClaims(c)
	citas, err := h.svc.ListarPorUsuario(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, citas)
}

// Obtener godoc
// @Summary      Obtener una cita
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la cita"
// @Success      200 {object} dto.CitaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /citas/{id} [get]
func (h *CitasHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	cita, err := h.svc.Obtener(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Cita no encontrada"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cita)
}

// Registrar godoc
// @Summary      Registrar una cita
// @Description  Crea la cita, su token QR y la lista de invitados en una sola transaccion.
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCitaRequest true "Detalle de la cita"
// @Success      201 {object} dto.RegistrarCitaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /citas [post]
func (h *CitasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Registrar(c.Request.Context(), claims.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar godoc
// @Summary      Actualizar una cita
// @Description  Reemplaza los seis campos escalares; no toca invitados ni token QR.
// @Tags         citas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int                       true "ID de la cita"
// @Param        body body dto.ActualizarCitaRequest true "Campos de la cita"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /citas/{id} [patch]
func (h *CitasHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarCitaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.Actualizar(c.Request.Context(), id, req)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Cita no encontrada"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cita actualizada exitosamente"})
}

// Eliminar godoc
// @Summary      Eliminar una cita
// @Description  Elimina la cita junto con sus invitados y su token QR.
// @Tags         citas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la cita"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /citas/{id} [delete]
func (h *CitasHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	err := h.svc.Eliminar(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Cita no encontrada"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cita eliminada exitosamente"})
}
