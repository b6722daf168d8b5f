package handler

import (
	"errors"
	"net/http"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"
	"github.com/Jonathancraxker/api-ecoparking/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AdminHandler exposes the operator surface for the invitation job queue.
type AdminHandler struct{ rdb *redis.Client }

func NewAdminHandler(rdb *redis.Client) *AdminHandler { return &AdminHandler{rdb: rdb} }

// EstadoDLQ godoc
// @Summary      Profundidad de la dead letter queue de invitaciones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]int64
// @Router       /admin/dlq/invitaciones [get]
func (h *AdminHandler) EstadoDLQ(c *gin.Context) {
	n, err := worker.DLQLength(c.Request.Context(), h.rdb, worker.QueueInvitaciones)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pendientes": n})
}

// ReencolarDLQ godoc
// @Summary      Reintentar la entrada mas antigua de la DLQ de invitaciones
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Failure      404 {object} apierror.APIError
// @Router       /admin/dlq/invitaciones/reencolar [post]
func (h *AdminHandler) ReencolarDLQ(c *gin.Context) {
	err := worker.RequeueDLQ(c.Request.Context(), h.rdb, worker.QueueInvitaciones)
	if errors.Is(err, redis.Nil) {
		c.JSON(http.StatusNotFound, apierror.New("La dead letter queue esta vacia"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job reencolado para reintento"})
}
