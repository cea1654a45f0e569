package page

import (
	"hr-dashboard/internal/features/chart"
	"hr-dashboard/internal/features/dataset"
	"hr-dashboard/internal/features/render"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PageController struct {
	DatasetService dataset.DatasetService
	Renderer       *render.Renderer
	Content        *StaticContent
	Logger         *zap.Logger
}

func NewPageController(datasetService dataset.DatasetService, renderer *render.Renderer, content *StaticContent, log *zap.Logger) *PageController {
	return &PageController{
		DatasetService: datasetService,
		Renderer:       renderer,
		Content:        content,
		Logger:         log,
	}
}

// Dashboard godoc
// @Summary Dashboard page
// @Description Render the dashboard for the selected chart, axes, raw-data toggle and navigation action
// @Tags dashboard
// @Produce html
// @Param chart query string false "Chart type"
// @Param x query string false "X column"
// @Param y query string false "Y column"
// @Param raw query string false "Show raw data (1)"
// @Param nav query string false "Navigation action (home, about, contact)"
// @Success 200 {string} string "HTML"
// @Router / [get]
func (c *PageController) Dashboard(ctx *fiber.Ctx) error {
	chartType, _ := chart.ParseChartType(ctx.Query("chart"))
	req := chart.Normalize(chart.ChartRequest{
		ChartType: chartType,
		XColumn:   ctx.Query("x"),
		YColumn:   ctx.Query("y"),
	})

	vm := DashboardVM{
		Content: c.Content,
		State:   Route(ParseAction(ctx.Query("nav"))),
		Request: req,
		ShowRaw: ctx.QueryBool("raw"),
	}

	ds, err := c.DatasetService.Dataset(ctx.UserContext())
	if err != nil {
		vm.LoadError = "Dataset file not found. Please upload the file or check the path."
		c.Logger.Warn("dashboard without dataset", zap.Error(err))
		return ctx.Render("dashboard", vm, "layouts/main")
	}

	if ds.IsEmpty() {
		vm.Notice = "The dataset has no rows."
	}
	vm.ShowControls = true
	c.fillControls(&vm)
	c.fillChart(&vm, ds)
	if vm.ShowRaw {
		vm.Raw = newRawTable(ds)
	}

	return ctx.Render("dashboard", vm, "layouts/main")
}

func (c *PageController) fillControls(vm *DashboardVM) {
	opts, _ := chart.AllowedAxes(vm.Request.ChartType)
	vm.ChartTypes = chartTypeOptions(vm.Request.ChartType)
	vm.XOptions = options(opts.X, vm.Request.XColumn)
	vm.YOptions = options(opts.Y, vm.Request.YColumn)
	vm.PieSelected = vm.Request.ChartType == chart.ChartTypePie
}

func (c *PageController) fillChart(vm *DashboardVM, ds *dataset.Dataset) {
	model, err := chart.Build(ds, vm.Request.ChartType, vm.Request.XColumn, vm.Request.YColumn)
	if err != nil {
		vm.ChartError = err.Error()
		return
	}

	markup, err := c.Renderer.Render(model)
	if err != nil {
		c.Logger.Error("chart render failed", zap.String("title", model.Title), zap.Error(err))
		vm.ChartError = "Chart could not be rendered."
		return
	}

	vm.ChartTitle = model.Title
	vm.Chart = c.Renderer.Display(markup)
}
