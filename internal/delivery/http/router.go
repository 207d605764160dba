package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"reflectionlesson/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(stageController *controllers.StageController) *http.ServeMux {
	mux := http.NewServeMux()

	// Lesson
	mux.HandleFunc("GET /{$}", stageController.StartLesson)
	mux.HandleFunc("GET /stages", stageController.ListStages)
	mux.HandleFunc("GET /stages/{stage}", stageController.GetStage)

	mux.HandleFunc("GET /health", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
