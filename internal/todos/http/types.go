package http

import "github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"

// Handler bundles the dependencies for todo HTTP endpoints.
type Handler struct {
	svc *service.TodoService
}

func New(svc *service.TodoService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Task string `json:"task"`
}

const (
	msgFetchFailed      = "Failed to fetch todos"
	msgCreateFailed     = "Failed to create todo"
	msgDeleteFailed     = "Failed to delete todo"
	msgDeleted          = "Todo deleted successfully"
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "Invalid request body"
)
