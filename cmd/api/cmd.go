package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/pinkswindowcleaning/pulse-backend/internal/bootstrap"
	"github.com/pinkswindowcleaning/pulse-backend/internal/config"
	"github.com/pinkswindowcleaning/pulse-backend/internal/handlers"
	"github.com/pinkswindowcleaning/pulse-backend/internal/kpi"
	"github.com/pinkswindowcleaning/pulse-backend/internal/response"
	"github.com/pinkswindowcleaning/pulse-backend/internal/router"
	"github.com/pinkswindowcleaning/pulse-backend/internal/services"
	"github.com/pinkswindowcleaning/pulse-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	wstore := store.NewWarehouseStore(bs.BigQuery, cfg.Dataset)

	// services
	dsvc := services.NewDashboardService(wstore, cfg.CacheTTL, kpi.Options{
		TargetYear: cfg.TargetYear,
		OTBWeeks:   cfg.OTBWeeks,
	})

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.DashboardSvc = dsvc

	// router
	r := router.NewRouter(deps, cfg)
	bs.Log.Info("pulse api listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
