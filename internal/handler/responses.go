package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON encodes payload into a pooled buffer before writing so an
// encoding failure never leaves a half-written body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	log := logger.FromContext(r.Context())

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		log.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondJSON(w, r, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", op, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "op", op, "error", err)
	}
	respondError(w, r, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidSettingsErr  = "Invalid settings. Please check your inputs."
	ErrMsgInvalidInputErr     = "Invalid request. Please check your inputs."
	ErrMsgUnknownSeasonErr    = "Unknown season"
	ErrMsgCropNotFoundErr     = "Crop not found"
	ErrMsgItemNotFoundErr     = "Item not found"
	ErrMsgShopNotFoundErr     = "Shop not found"
	ErrMsgDuplicateCropErr    = "Crop already registered"
	ErrMsgPricesUnavailable = "Prices are temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and
// a message that is safe to show to callers.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidSettings):
		return http.StatusBadRequest, ErrMsgInvalidSettingsErr
	case errors.Is(err, domain.ErrUnmappedSeason):
		return http.StatusBadRequest, ErrMsgUnknownSeasonErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputErr
	case errors.Is(err, domain.ErrCropNotFound):
		return http.StatusNotFound, ErrMsgCropNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundErr
	case errors.Is(err, domain.ErrShopNotFound):
		return http.StatusNotFound, ErrMsgShopNotFoundErr
	case errors.Is(err, domain.ErrDuplicateCrop):
		return http.StatusConflict, ErrMsgDuplicateCropErr
	case errors.Is(err, domain.ErrCacheRebuild):
		return http.StatusServiceUnavailable, ErrMsgPricesUnavailable
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
