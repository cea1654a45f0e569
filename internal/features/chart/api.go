package chart

import (
	"hr-dashboard/internal/common/api"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type ChartApi struct {
	ChartController  *ChartController
	SocketController *ChartSocketController
}

func NewChartApi(chartController *ChartController, socketController *ChartSocketController) api.Route {
	return &ChartApi{
		ChartController:  chartController,
		SocketController: socketController,
	}
}

func (api *ChartApi) Setup(app *fiber.App) {
	group := app.Group("/api/charts")

	group.Get("/types", api.ChartController.Types)
	group.Get("/axes/:type", api.ChartController.Axes)
	group.Post("/model", api.ChartController.Model)
	group.Get("/render", api.ChartController.Render)

	app.Use("/ws/charts", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/charts", websocket.New(api.SocketController.HandleWebSocket))
}
