package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// CropsResponse is a ranking together with the settings it was computed for.
type CropsResponse struct {
	Settings domain.Settings   `json:"settings"`
	Crops    []domain.CropInfo `json:"crops"`
}

// SearchResult is one fuzzy match for a crop name.
type SearchResult struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Score float64 `json:"score"`
}

// AddCropRequest is the body of POST /api/v1/crops. The crop's harvest item
// is taken from Harvest.
type AddCropRequest struct {
	Crop               catalog.CropDef `json:"crop" validate:"-"`
	Harvest            domain.Item     `json:"harvest"`
	Seed               domain.Item     `json:"seed"`
	AffectByQuality    *bool           `json:"affect_by_quality,omitempty"`
	AffectByFertilizer *bool           `json:"affect_by_fertilizer,omitempty"`
}

// AddCropResponse reports whether the crop was added.
type AddCropResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Added   bool   `json:"added"`
}

// HandleGetCrops ranks every registered plant by profit per day. A "limit"
// query parameter truncates the list.
// @Summary Rank crops
// @Tags crops
// @Produce json
// @Param limit query int false "Maximum number of crops"
// @Success 200 {object} CropsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/crops [get]
func HandleGetCrops(svc CropService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				respondError(w, r, http.StatusBadRequest, ErrMsgInvalidInputErr)
				return
			}
			limit = n
		}

		settings := svc.Settings()
		infos, err := svc.RetrieveCropInfosFor(r.Context(), settings)
		if err != nil {
			respondServiceError(w, r, ErrMsgRankCropsFailed, err)
			return
		}
		if limit > 0 && len(infos) > limit {
			infos = infos[:limit]
		}
		if infos == nil {
			infos = []domain.CropInfo{}
		}

		logger.FromContext(r.Context()).Debug(LogMsgCropsRanked, "count", len(infos))
		respondJSON(w, r, http.StatusOK, CropsResponse{Settings: settings, Crops: infos})
	}
}

// HandleSearchCrops finds plants by approximate name.
// @Summary Search crops by name
// @Tags crops
// @Produce json
// @Param name query string true "Crop name"
// @Success 200 {array} SearchResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crops/search [get]
func HandleSearchCrops(svc CropService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}

		matches := svc.SearchCrops(name)
		results := make([]SearchResult, 0, len(matches))
		for _, m := range matches {
			base := m.Model.Base()
			results = append(results, SearchResult{
				ID:    base.ID,
				Name:  base.Name,
				Kind:  m.Model.Kind(),
				Score: m.Score,
			})
		}
		respondJSON(w, r, http.StatusOK, results)
	}
}

// HandleAddCrop registers a crop definition at runtime.
// @Summary Register a crop
// @Tags crops
// @Accept json
// @Produce json
// @Param request body AddCropRequest true "Crop definition"
// @Success 201 {object} AddCropResponse
// @Success 200 {object} AddCropResponse "Already registered"
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/crops [post]
func HandleAddCrop(registrar CropRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddCropRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add crop"); err != nil {
			return
		}

		affectByQuality := req.AffectByQuality == nil || *req.AffectByQuality
		affectByFertilizer := req.AffectByFertilizer == nil || *req.AffectByFertilizer

		added, err := registrar.AddCrop(r.Context(), req.Crop, req.Harvest, req.Seed, affectByQuality, affectByFertilizer)
		if err != nil {
			respondServiceError(w, r, ErrMsgAddCropFailed, err)
			return
		}

		id := req.Crop.ID
		if id == "" {
			id = domain.UnqualifiedID(req.Seed.ID)
		}
		if !added {
			respondJSON(w, r, http.StatusOK, AddCropResponse{Message: MsgCropAlreadyExists, ID: id})
			return
		}
		respondJSON(w, r, http.StatusCreated, AddCropResponse{Message: MsgCropRegistered, ID: id, Added: true})
	}
}
