package handler

import (
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/dto"
	"github.com/Jonathancraxker/api-ecoparking/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary      Iniciar sesion
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credenciales"
// @Success      200 {object} dto.LoginResponse
// @Failure      401 {object} apierror.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Registrar godoc
// @Summary      Registrar un usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RegistrarUsuarioRequest true "Datos del usuario"
// @Success      201 {object} dto.UsuarioResponse
// @Failure      400 {object} apierror.APIError
// @Router       /auth/registro [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
