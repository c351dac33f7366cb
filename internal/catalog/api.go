package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// API lets other components register crops that are not in the data files.
type API struct {
	registrar Registrar
	items     *ItemRegistry
	validate  *validator.Validate
}

func NewAPI(registrar Registrar, items *ItemRegistry) *API {
	return &API{registrar: registrar, items: items, validate: newValidator()}
}

// AddCrop registers a crop grown from seed and yielding harvest. Both items
// are added to the item registry so shop stock can resolve them. It returns
// false without error when the id is already taken.
func (a *API) AddCrop(ctx context.Context, def CropDef, harvest, seed domain.Item, affectByQuality, affectByFertilizer bool) (bool, error) {
	def.HarvestItem = harvest.ID
	if def.ID == "" {
		def.ID = domain.UnqualifiedID(seed.ID)
	}
	if err := a.validate.Struct(def); err != nil {
		return false, fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidInput, ErrMsgInvalidDef, def.ID, err)
	}
	if harvest.ID == "" || seed.ID == "" {
		return false, fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, ErrMsgUnknownItem, def.ID)
	}

	crop, err := buildCrop(def, harvest, DisplayName(def.Name, harvest, true, harvest.ID), affectByQuality, affectByFertilizer)
	if err != nil {
		return false, err
	}
	crop.SeedID = domain.UnqualifiedID(seed.ID)

	if !a.registrar.AddCrop(ctx, crop.ID, crop) {
		return false, nil
	}
	a.items.Register(harvest)
	a.items.Register(seed)
	logger.FromContext(ctx).Info(LogMsgPlantRegistered, "id", crop.ID, "name", crop.Name)
	return true, nil
}
