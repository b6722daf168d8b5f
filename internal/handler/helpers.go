package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam reads the :id path segment as an unsigned integer.
// Returns false and writes the error response when it is not one.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// respondError translates a taxonomy error into its HTTP response. Store
// failures get a generic message; the detail only goes to the log.
func respondError(c *gin.Context, err error) {
	status := apierror.Status(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("store error")
		c.JSON(status, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(status, apierror.New(mensaje(err)))
}

func mensaje(err error) string {
	switch {
	case errors.Is(err, apierror.ErrNotFound):
		return "Recurso no encontrado"
	case errors.Is(err, apierror.ErrUnauthorized):
		return "Credenciales invalidas"
	default:
		return err.Error()
	}
}
