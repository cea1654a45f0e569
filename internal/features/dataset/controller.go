package dataset

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DatasetController struct {
	DatasetService DatasetService
	Logger         *zap.Logger
}

func NewDatasetController(datasetService DatasetService, log *zap.Logger) *DatasetController {
	return &DatasetController{DatasetService: datasetService, Logger: log}
}

// RawDataResponse is the raw table shown by the "Show raw data" toggle.
type RawDataResponse struct {
	Columns  []string `json:"columns"`
	Rows     []Row    `json:"rows"`
	RowCount int      `json:"row_count"`
}

// Get godoc
// @Summary Get raw dataset
// @Description Return the loaded HR dataset as columns and rows
// @Tags dataset
// @Produce json
// @Success 200 {object} RawDataResponse
// @Failure 503 {object} map[string]interface{}
// @Router /api/dataset [get]
func (c *DatasetController) Get(ctx *fiber.Ctx) error {
	ds, err := c.DatasetService.Dataset(ctx.UserContext())
	if err != nil {
		c.Logger.Warn("dataset unavailable", zap.String("path", ctx.Path()), zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(RawDataResponse{
		Columns:  ds.Columns,
		Rows:     ds.Rows,
		RowCount: ds.Len(),
	})
}
