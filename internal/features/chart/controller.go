package chart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChartController struct {
	ChartService ChartService
	Logger       *zap.Logger
}

func NewChartController(chartService ChartService, log *zap.Logger) *ChartController {
	return &ChartController{ChartService: chartService, Logger: log}
}

// statusFor maps chart errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownChartType), errors.Is(err, ErrAxisNotAllowed):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidColumn):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, ErrDatasetUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func (c *ChartController) fail(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		c.Logger.Error("chart request failed", zap.String("path", ctx.Path()), zap.Error(err))
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// Types godoc
// @Summary List chart types
// @Description List the chart types offered by the dashboard
// @Tags charts
// @Produce json
// @Success 200 {array} string
// @Router /api/charts/types [get]
func (c *ChartController) Types(ctx *fiber.Ctx) error {
	return ctx.JSON(c.ChartService.Types())
}

// Axes godoc
// @Summary Get axis options
// @Description Get the X and Y columns allowed for a chart type
// @Tags charts
// @Produce json
// @Param type path string true "Chart type"
// @Success 200 {object} AxisOptions
// @Failure 404 {object} map[string]interface{}
// @Router /api/charts/axes/{type} [get]
func (c *ChartController) Axes(ctx *fiber.Ctx) error {
	opts, err := c.ChartService.Axes(ctx.Params("type"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(opts)
}

// Model godoc
// @Summary Build chart model
// @Description Build the chart model for a chart type and pair of columns
// @Tags charts
// @Accept json
// @Produce json
// @Param request body ChartRequest true "Chart request"
// @Success 200 {object} ChartModel
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/charts/model [post]
func (c *ChartController) Model(ctx *fiber.Ctx) error {
	var req ChartRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	model, err := c.ChartService.Model(ctx.UserContext(), req)
	if err != nil {
		return c.fail(ctx, err)
	}
	return ctx.JSON(model)
}

// Render godoc
// @Summary Render chart
// @Description Render a chart as a standalone HTML document
// @Tags charts
// @Produce html
// @Param type query string true "Chart type"
// @Param x query string true "X column"
// @Param y query string false "Y column"
// @Success 200 {string} string "HTML"
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/charts/render [get]
func (c *ChartController) Render(ctx *fiber.Ctx) error {
	req := ChartRequest{
		ChartType: ChartType(ctx.Query("type")),
		XColumn:   ctx.Query("x"),
		YColumn:   ctx.Query("y"),
	}

	rendered, err := c.ChartService.Render(ctx.UserContext(), req)
	if err != nil {
		return c.fail(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(rendered.Markup)
}
