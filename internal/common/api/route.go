package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API. Fx collects them in the
// "routes" group and main registers each one on the Fiber app.
type Route interface {
	Setup(app *fiber.App)
}
