package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notehub/notes-backend/internal/note/service"
)

// CreateNoteRequest is the payload for POST /notes. Title is required and
// non-empty; content may be empty.
type CreateNoteRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the payload for PUT /notes/:id. Both fields are
// optional; absent fields keep their stored values.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// RegisterNoteRoutes registers the /notes CRUD endpoints.
func RegisterNoteRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/notes", func(c *gin.Context) {
		list, err := svc.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/notes", func(c *gin.Context) {
		var req CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		n, err := svc.Create(req.Title, req.Content)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, n)
	})

	r.GET("/notes/:id", func(c *gin.Context) {
		n, err := svc.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, n)
	})

	r.PUT("/notes/:id", func(c *gin.Context) {
		var req UpdateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// field validation happens in the service, after the id is resolved:
		// a missing note is NotFound regardless of the payload
		n, err := svc.Update(c.Param("id"), req.Title, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			case errors.Is(err, service.ErrNoFields), errors.Is(err, service.ErrInvalidTitle):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, n)
	})

	r.DELETE("/notes/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Param("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
