package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/internal/auth"
	"github.com/GoSim-25-26J-441/projects-service/internal/projects/domain"
)

const (
	msgNotFound  = "Project not found"
	msgDuplicate = "Project already exists"
	msgDeleted   = "Project deleted"
	msgBadBody   = "invalid body"
	msgInternal  = "internal server error"
)

func (h *Handler) create(c *gin.Context) {
	req, err := bindBody[domain.CreateProjectRequest](c, h.lenientJSON)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), auth.Username(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if items == nil {
		items = []domain.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	req, err := bindBody[domain.UpdateProjectRequest](c, h.lenientJSON)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("project_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	deleted, err := h.svc.Delete(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msgNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": msgDeleted})
}

// respondError maps domain errors to status codes; anything unknown is a 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": domain.ErrValidation.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": msgNotFound})
	case errors.Is(err, domain.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": msgDuplicate})
	default:
		h.logger.Error("project request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString("request_id")),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternal})
	}
}
