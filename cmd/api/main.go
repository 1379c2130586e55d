package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/schedulingco/scheduler-api/internal/config"
	"github.com/schedulingco/scheduler-api/internal/logging"
	"github.com/schedulingco/scheduler-api/internal/routes"
	"github.com/schedulingco/scheduler-api/internal/store"
)

func main() {

	cfg := config.Load()

	log := logging.New(cfg.IsProduction())
	defer log.Sync()

	st := store.New()
	if cfg.SeedDemo {
		st.Seed()
		log.Info("demo data seeded")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
