package bootstrap

import (
	httpapi "github.com/GoSim-25-26J-441/todo-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/todo-backend/internal/api/http/middleware"
	todohttp "github.com/GoSim-25-26J-441/todo-backend/internal/todos/http"
	"github.com/GoSim-25-26J-441/todo-backend/internal/todos/service"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName      string
	Version          string
	StoreDriver      string
	Store            Store
	CORSAllowOrigins []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	// route on the escaped path so an id containing "/" still hits /todos/:id
	r.UseRawPath = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORS(dep.CORSAllowOrigins))
	todohttp.UseMethodNotAllowed(r)

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.StoreDriver, dep.Store)
	healthHandler.RegisterRoutes(r)

	todoHandler := todohttp.New(service.NewTodoService(dep.Store))
	todoHandler.Register(r)
	todoHandler.Register(r.Group("/api"))

	return r
}
