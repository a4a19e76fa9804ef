package cmd

import (
	"log/slog"
	"net/http"

	"pancakes/internal/adapters/out/memory/orderrepo"
	"pancakes/internal/adapters/out/metrics"
	"pancakes/internal/core/application/services"
	"pancakes/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CompositionRoot builds every service exactly once. Dependents receive the
// instances through their constructors; there is no package-level state.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	metricsRegistry *prometheus.Registry

	buildingService *services.BuildingService
	recipeService   *services.RecipeService
	orderService    *services.OrderService
}

func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	metricsRegistry := prometheus.NewRegistry()
	metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	orderRegistry := orderrepo.NewRegistry()
	orderMetrics, err := metrics.NewOrderMetrics(metricsRegistry, orderRegistry.Len)
	if err != nil {
		return nil, err
	}

	buildingService := services.NewBuildingService()
	recipeService := services.NewRecipeService()

	return &CompositionRoot{
		config:          config,
		logger:          logger,
		metricsRegistry: metricsRegistry,
		buildingService: buildingService,
		recipeService:   recipeService,
		orderService: services.NewOrderService(
			buildingService,
			recipeService,
			orderRegistry,
			orderMetrics,
			logger,
		),
	}, nil
}

func (c *CompositionRoot) BuildingService() *services.BuildingService {
	return c.buildingService
}

func (c *CompositionRoot) RecipeService() *services.RecipeService {
	return c.recipeService
}

func (c *CompositionRoot) OrderService() *services.OrderService {
	return c.orderService
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderService,
		c.config.KitchenBoardSchedule,
		c.config.DispatchBoardSchedule,
		c.logger,
	)
}

// MetricsHandler serves the process and order metrics in the Prometheus text format.
func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.metricsRegistry, promhttp.HandlerOpts{})
}
