package handler

import (
	"net/http"

	"github.com/osse101/CropProfit_Go/internal/logger"
)

// AdminCacheHandler exposes the price cache controls.
type AdminCacheHandler struct {
	prices PriceService
}

func NewAdminCacheHandler(prices PriceService) *AdminCacheHandler {
	return &AdminCacheHandler{prices: prices}
}

// HandleInvalidate drops both price caches; they rebuild on next use.
// @Summary Invalidate price caches
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/invalidate [post]
func (h *AdminCacheHandler) HandleInvalidate(w http.ResponseWriter, r *http.Request) {
	h.prices.InvalidateCaches(r.Context())
	logger.FromContext(r.Context()).Info(LogMsgAdminCacheCommand, "command", "invalidate")
	respondJSON(w, r, http.StatusOK, SuccessResponse{Message: MsgCachesInvalidated})
}

// HandleRebuild rebuilds both price caches now.
// @Summary Rebuild price caches
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/cache/rebuild [post]
func (h *AdminCacheHandler) HandleRebuild(w http.ResponseWriter, r *http.Request) {
	if err := h.prices.ForceRebuildCache(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgCacheRebuildFail, err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgAdminCacheCommand, "command", "rebuild")
	respondJSON(w, r, http.StatusOK, SuccessResponse{Message: MsgCachesRebuilt})
}
