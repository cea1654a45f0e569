package system

import (
	"hr-dashboard/internal/config"
	"hr-dashboard/internal/features/dataset"

	"github.com/gofiber/fiber/v2"
)

type DebugController struct {
	DatasetService dataset.DatasetService
	Config         *config.Config
}

func NewDebugController(datasetService dataset.DatasetService, cfg *config.Config) *DebugController {
	return &DebugController{DatasetService: datasetService, Config: cfg}
}

// GetDatasetStatus godoc
// @Summary      Get dataset status
// @Description  Report the configured dataset source and what the loader holds for it
// @Tags         debug
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/debug/dataset [get]
func (c *DebugController) GetDatasetStatus(ctx *fiber.Ctx) error {
	source := c.Config.DatasetPath
	if c.Config.DatasetSource == config.DatasetSourceMongo {
		source = c.Config.DBName + "." + c.Config.MongoCollection
	}

	status := fiber.Map{
		"app_id":      c.Config.AppId,
		"environment": c.Config.Environment,
		"source_type": c.Config.DatasetSource,
		"source":      source,
	}

	ds, err := c.DatasetService.Dataset(ctx.UserContext())
	if err != nil {
		status["error"] = err.Error()
	}
	status["columns"] = ds.Columns
	status["row_count"] = ds.Len()

	return ctx.JSON(status)
}
