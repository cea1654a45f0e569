package page

import (
	"hr-dashboard/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type PageApi struct {
	PageController *PageController
}

func NewPageApi(pageController *PageController) api.Route {
	return &PageApi{PageController: pageController}
}

func (api *PageApi) Setup(app *fiber.App) {
	app.Get("/", api.PageController.Dashboard)
}
