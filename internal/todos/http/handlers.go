package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/GoSim-25-26J-441/todo-backend/internal/logging"
	"github.com/gin-gonic/gin"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListTodos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgFetchFailed})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	// an empty body is a request without a task
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logging.FromContext(c.Request.Context()).Warn().Err(err).Msg("invalid create body")
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	todo, err := h.svc.CreateTodo(c.Request.Context(), req.Task)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgCreateFailed})
		return
	}
	c.JSON(http.StatusCreated, todo)
}

// delete answers 500 for any failure, including an id that matched nothing.
func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.DeleteTodo(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}
