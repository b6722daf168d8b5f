package handler

import (
	"errors"
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar returns every registered user (admin only).
func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuarios, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

func (h *UsuariosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	usuario, err := h.svc.ObtenerUsuario(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario, err := h.svc.ActualizarUsuario(c.Request.Context(), id, req)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuario)
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	err := h.svc.EliminarUsuario(c.Request.Context(), id)
	if errors.Is(err, apierror.ErrNotFound) {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}
