package handlers

import (
	"log/slog"

	"github.com/pinkswindowcleaning/pulse-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}
