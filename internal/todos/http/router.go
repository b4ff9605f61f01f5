package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register attaches the collection and item routes to rg.
func (h *Handler) Register(rg gin.IRouter) {
	todos := rg.Group("/todos")
	todos.GET("", h.list)
	todos.POST("", h.create)
	todos.DELETE("/:id", h.delete)
}

// UseMethodNotAllowed makes the engine answer known paths hit with an
// unsupported method with a JSON 405.
func UseMethodNotAllowed(r *gin.Engine) {
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed)
}

func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": msgMethodNotAllowed})
}
