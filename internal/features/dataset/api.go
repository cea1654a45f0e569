package dataset

import (
	"hr-dashboard/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type DatasetApi struct {
	DatasetController *DatasetController
}

func NewDatasetApi(datasetController *DatasetController) api.Route {
	return &DatasetApi{DatasetController: datasetController}
}

func (api *DatasetApi) Setup(app *fiber.App) {
	app.Get("/api/dataset", api.DatasetController.Get)
}
