package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/hlog"

	"github.com/diamondjirapat/mango-reach-management-mockup/internal/api/respond"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/model"
	"github.com/diamondjirapat/mango-reach-management-mockup/internal/services"
)

const maxBodyBytes = 1 << 20

// AdHandler is a thin HTTP transport over AdService.
type AdHandler struct {
	svc *services.AdService
}

func NewAdHandler(svc *services.AdService) *AdHandler { return &AdHandler{svc: svc} }

// ListAds GET /api/ads?skip=&limit=
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		respond.InvalidAd(w, r, err.Error())
		return
	}
	limit, err := queryInt(r, "limit", services.DefaultListLimit)
	if err != nil {
		respond.InvalidAd(w, r, err.Error())
		return
	}
	ads, err := h.svc.ListAds(r.Context(), model.ListAdsRequest{Skip: skip, Limit: limit})
	if err != nil {
		respond.ServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, ads)
}

// CreateAd POST /api/ads
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var in model.AdCreate
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		respond.InvalidAd(w, r, "request body is not a valid ad JSON object")
		return
	}
	out, err := h.svc.CreateAd(r.Context(), &in)
	if err != nil {
		respond.ServiceError(w, r, err)
		return
	}
	hlog.FromRequest(r).Info().Int64("ad_id", out.ID).Str("project_id", out.ProjectID).Msg("ad created")
	respond.JSON(w, r, http.StatusOK, out)
}

// GetDashboard GET /api/dashboard
func (h *AdHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.DashboardStats(r.Context())
	if err != nil {
		respond.ServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, stats)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return v, nil
}
