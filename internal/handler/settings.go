package handler

import (
	"net/http"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// SettingsRequest is the body of PUT /api/v1/settings.
type SettingsRequest struct {
	Day              int       `json:"day" validate:"min=0,max=27"`
	Season           string    `json:"season" validate:"required,season"`
	Fertilizer       string    `json:"fertilizer" validate:"fertilizer"`
	ProduceType      string    `json:"produce_type" validate:"omitempty,oneof=raw"`
	PayForSeeds      bool      `json:"pay_for_seeds"`
	PayForFertilizer bool      `json:"pay_for_fertilizer"`
	MaxMoney         int       `json:"max_money" validate:"min=0"`
	UseBaseStats     bool      `json:"use_base_stats"`
	FarmingLevel     int       `json:"farming_level" validate:"min=0"`
	Professions      []string  `json:"professions" validate:"dive,oneof=tiller agriculturist"`
	PriceMultipliers []float64 `json:"price_multipliers" validate:"omitempty,len=4,dive,min=0"`
}

// Settings converts a validated request. Parse errors cannot occur after
// validation but are still reported.
func (req SettingsRequest) Settings() (domain.Settings, error) {
	season, err := domain.ParseSeason(req.Season)
	if err != nil {
		return domain.Settings{}, err
	}
	fertilizer := domain.FertilizerNone
	if req.Fertilizer != "" {
		if fertilizer, err = domain.ParseFertilizer(req.Fertilizer); err != nil {
			return domain.Settings{}, err
		}
	}

	s := domain.Settings{
		Day:              req.Day,
		Season:           season,
		Fertilizer:       fertilizer,
		ProduceType:      domain.ProduceType(req.ProduceType),
		PayForSeeds:      req.PayForSeeds,
		PayForFertilizer: req.PayForFertilizer,
		MaxMoney:         req.MaxMoney,
		UseBaseStats:     req.UseBaseStats,
		FarmingLevel:     req.FarmingLevel,
	}
	for _, p := range req.Professions {
		s.Professions = append(s.Professions, domain.Profession(p))
	}
	copy(s.PriceMultipliers[:], req.PriceMultipliers)
	return s.Normalize(), nil
}

// HandleGetSettings returns the active settings.
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /api/v1/settings [get]
func HandleGetSettings(svc CropService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, svc.Settings())
	}
}

// HandleSetSettings replaces the active settings.
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body SettingsRequest true "Simulation settings"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/settings [put]
func HandleSetSettings(svc CropService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettingsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set settings"); err != nil {
			return
		}

		settings, err := req.Settings()
		if err == nil {
			err = svc.SetSettings(r.Context(), settings)
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgSetSettingsFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgSettingsUpdated,
			"season", settings.Season, "day", settings.Day, "fertilizer", settings.Fertilizer)
		respondJSON(w, r, http.StatusOK, svc.Settings())
	}
}
