package main

import (
	"context"
	"fmt"

	common_api "hr-dashboard/internal/common/api"
	"hr-dashboard/internal/config"
	"hr-dashboard/internal/database"
	"hr-dashboard/internal/features/chart"
	"hr-dashboard/internal/features/dataset"
	"hr-dashboard/internal/features/page"
	"hr-dashboard/internal/features/render"
	"hr-dashboard/internal/features/system"
	"hr-dashboard/internal/logger"
	"hr-dashboard/internal/middleware"
	"hr-dashboard/internal/views"

	_ "hr-dashboard/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer(cfg *config.Config, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Views:                 views.NewEngine(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(middleware.CORSMiddleware(cfg))

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route, log *zap.Logger) {
	for _, route := range routes {
		log.Debug("registering route", zap.String("route", fmt.Sprintf("%T", route)))
		route.Setup(app)
	}
	log.Info("routes registered", zap.Int("count", len(routes)))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`, ``),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				log.Info("server listening", zap.String("addr", port))
				if err := app.Listen(port); err != nil {
					log.Fatal("server failed to start", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

// WarmDataset loads the configured dataset once at startup so the first
// page view does not pay for it. Failures are kept by the loader and shown inline.
func WarmDataset(lc fx.Lifecycle, svc dataset.DatasetService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, _ = svc.Dataset(ctx)
			return nil
		},
	})
}

// @title           HR Dashboard API
// @version         1.0
// @description     Interactive charts over the HR dataset.

// @host            localhost:8080
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			dataset.NewLoader,
			dataset.NewDatasetService,
			render.NewRenderer,
			func(r *render.Renderer) chart.Renderer { return r },
			chart.NewChartService,
			page.NewStaticContent,

			dataset.NewDatasetController,
			chart.NewChartController,
			chart.NewChartSocketController,
			page.NewPageController,
			system.NewDebugController,

			AsRoute(page.NewPageApi),
			AsRoute(dataset.NewDatasetApi),
			AsRoute(chart.NewChartApi),
			AsRoute(system.NewDebugApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			WarmDataset,
			StartServer,
		),
	)

	app.Run()
}
