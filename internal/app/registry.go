package app

import (
	"go-employee/internal/bootstrap"
	"go-employee/internal/employee"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type modules struct {
	repo      employee.Repository
	publisher employee.EventPublisher
	gatherer  prometheus.Gatherer
	logger    *zap.Logger
}

func registerModules(router *gin.Engine, m modules) {
	// --- Services ---
	employeeService := employee.NewService(m.repo, m.publisher, m.logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, m.logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler)
	}

	router.GET("/healthz", bootstrap.Health(m.repo))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})))
}
