package app

import (
	"errors"
	"fmt"

	"go-employee/internal/config"
	"go-employee/internal/employee"
	"go-employee/internal/metrics"
	"go-employee/internal/middleware"
	"go-employee/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// store is the opened employee backend plus whatever must be closed with it.
type store struct {
	repo    employee.Repository
	backend string
	close   func() error
}

// BuildApp connects the infrastructure named by cfg and registers every
// route on router. The returned cleanup closes those connections.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	st, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("employee store ready", zap.String("backend", st.backend))

	closers := []func() error{st.close}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", zap.Error(err))
			}
		}
	}

	publisher := employee.NewNoopEventPublisher()
	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Retries, logger)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, writer.Close)
		publisher = employee.NewKafkaEventPublisher(writer)
		logger.Info("kafka event publisher enabled", zap.String("broker", cfg.Kafka.Broker))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(reg)

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.Metrics(m),
	)

	registerModules(router, modules{
		repo:      employee.NewInstrumentedRepository(st.repo, st.backend, m),
		publisher: publisher,
		gatherer:  reg,
		logger:    logger,
	})

	return cleanup, nil
}

func openStore(cfg config.Config, logger *zap.Logger) (store, error) {
	switch cfg.Store.Driver {
	case config.StoreRedis:
		rdb, err := connection.ConnectRedisWithRetry(cfg.Store.RedisAddr, cfg.Retries, logger)
		if err != nil {
			return store{}, err
		}
		return store{
			repo:    employee.NewRedisRepository(rdb),
			backend: config.StoreRedis,
			close:   rdb.Close,
		}, nil

	case config.StorePostgres, config.StoreSQLite:
		return openGORMStore(cfg, logger)

	default:
		return store{}, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func openGORMStore(cfg config.Config, logger *zap.Logger) (store, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.Store.Driver == config.StorePostgres {
		pg := cfg.Store.Postgres
		dsn := connection.PostgresDSN(pg.Host, pg.User, pg.Password, pg.Name, pg.Port, pg.SSLMode)
		db, err = connection.ConnectPostgresWithRetry(dsn, cfg.Retries, logger)
	} else {
		db, err = connection.ConnectSQLiteWithRetry(cfg.Store.SQLitePath, cfg.Retries, logger)
	}
	if err != nil {
		return store{}, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return store{}, err
	}

	// Table creation only; there is no versioned migration history.
	if err := employee.AutoMigrate(db); err != nil {
		return store{}, errors.Join(fmt.Errorf("migrate employees: %w", err), sqlDB.Close())
	}

	return store{
		repo:    employee.NewRepository(db),
		backend: cfg.Store.Driver,
		close:   sqlDB.Close,
	}, nil
}
