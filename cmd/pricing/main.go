package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	pricingapp "github.com/wyfcoding/optionpricing/internal/pricing/application"
	pricinghttp "github.com/wyfcoding/optionpricing/internal/pricing/interfaces/http"
	riskapp "github.com/wyfcoding/optionpricing/internal/risk/application"
	riskhttp "github.com/wyfcoding/optionpricing/internal/risk/interfaces/http"
	simapp "github.com/wyfcoding/optionpricing/internal/simulation/application"
	simhttp "github.com/wyfcoding/optionpricing/internal/simulation/interfaces/http"
	"github.com/wyfcoding/optionpricing/pkg/config"
	"github.com/wyfcoding/optionpricing/pkg/logger"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
	"github.com/wyfcoding/optionpricing/pkg/middleware"
)

func main() {
	configPath := flag.String("config", "configs/pricing.toml", "path to config file")
	flag.Parse()

	// 1. Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Logger
	if err := logger.Init(cfg.Logger); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	slogger := logger.Get()

	// 3. Metrics
	m := metrics.New(cfg.ServiceName)

	// 4. Layers
	pricingService := pricingapp.NewPricingService(slogger, m)
	simulationService := simapp.NewSimulationService(slogger, m, cfg.Simulation)
	riskService := riskapp.NewRiskService(slogger, m)

	// 5. HTTP
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.Logging(), middleware.Metrics(m), middleware.CORS())

	pricinghttp.NewPricingHandler(pricingService).RegisterRoutes(engine)
	simhttp.NewSimulationHandler(simulationService).RegisterRoutes(engine)
	riskhttp.NewRiskHandler(riskService).RegisterRoutes(engine)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"timestamp": time.Now().Unix(),
		})
	})
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		slogger.Info("server started", "addr", server.Addr, "service", cfg.ServiceName)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	// 6. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slogger.Error("forced shutdown", "error", err)
	}
}
