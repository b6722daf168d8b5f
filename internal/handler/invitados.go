package handler

import (
	"errors"
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

type InvitadosHandler struct{ svc service.InvitadoService }

func NewInvitadosHandler(svc service.InvitadoService) *InvitadosHandler {
	return &InvitadosHandler{svc: svc}
}

// ListarPorCita godoc
// @Summary      Listar invitados de una cita
// @Tags         invitados
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID de la cita"
// @Success      200 {array} dto.InvitadoResponse
// @Router       /citas/{id}/invitados [get]
func (h *InvitadosHandler) ListarPorCita(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	invitados, err := h.svc.ListarPorCita(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitados)
}

// Obtener godoc
// @Summary      Obtener un invitado
// @Tags         invitados
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del invitado"
// @Success      200 {object} dto.InvitadoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /invitados/{id} [get]
func (h *InvitadosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	inv, err := h.svc.Obtener(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Invitado no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Registrar godoc
// @Summary      Registrar un invitado
// @Description  Inserta el invitado e incrementa numero_invitados de la cita en la misma transaccion.
// @Tags         invitados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarInvitadoRequest true "Datos del invitado"
// @Success      201 {object} dto.RegistrarInvitadoResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /invitados [post]
func (h *InvitadosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarInvitadoRequest
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

// Actualizar godoc
// @Summary      Actualizar un invitado
// @Description  Reemplaza los campos descriptivos; id_cita y el contador no cambian.
// @Tags         invitados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int                           true "ID del invitado"
// @Param        body body dto.ActualizarInvitadoRequest true "Campos del invitado"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /invitados/{id} [patch]
func (h *InvitadosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarInvitadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	err := h.svc.Actualizar(c.Request.Context(), id, req)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Invitado no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitado actualizado exitosamente"})
}

// Eliminar godoc
// @Summary      Eliminar un invitado
// @Description  Elimina el invitado y decrementa numero_invitados de la cita en la misma transaccion.
// @Tags         invitados
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID del invitado"
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /invitados/{id} [delete]
func (h *InvitadosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	err := h.svc.Eliminar(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Invitado no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitado eliminado exitosamente"})
}
