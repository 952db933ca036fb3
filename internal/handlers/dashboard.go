package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
	"github.com/pinkswindowcleaning/pulse-backend/internal/response"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, refresh bool) (dto.DashboardResponse, error)
	GetLeaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetDashboard)
	r.Get("/leaderboard", h.GetLeaderboard)
	return r
}

// GetDashboard serves the full KPI report. ?refresh=1 bypasses the snapshot
// cache.
func (h *dashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "1"
	report, err := h.DashboardSvc.GetDashboard(r.Context(), refresh)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, report)
}

func (h *dashboardHandlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.DashboardSvc.GetLeaderboard(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, entries)
}
