package system

import (
	"hr-dashboard/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type DebugApi struct {
	controller *DebugController
}

func NewDebugApi(controller *DebugController) api.Route {
	return &DebugApi{controller: controller}
}

// Setup registers debug routes
func (h *DebugApi) Setup(app *fiber.App) {
	debug := app.Group("/api/debug")
	debug.Get("/dataset", h.controller.GetDatasetStatus)
}
