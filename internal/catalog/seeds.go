package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/validation"
)

// FileSeedPriceSource reads the static seed price table from a JSON file
// mapping bare seed ids to prices. It satisfies pricing.SeedPriceSource.
type FileSeedPriceSource struct {
	path    string
	schemas validation.SchemaValidator
}

func NewFileSeedPriceSource(path string, schemas validation.SchemaValidator) *FileSeedPriceSource {
	if schemas == nil {
		schemas = validation.NewSchemaValidator()
	}
	return &FileSeedPriceSource{path: path, schemas: schemas}
}

// LoadSeedPrices reads and validates the file on every call, so a rebuild
// picks up edits.
func (s *FileSeedPriceSource) LoadSeedPrices(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgSeedPricesFailed, s.path, err)
	}
	if err := s.schemas.ValidateBytes(data, validation.SchemaSeedPrices); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgSeedPricesFailed, s.path, err)
	}
	prices := make(map[string]int)
	if err := json.Unmarshal(data, &prices); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidInput, ErrMsgSeedPricesFailed, s.path, err)
	}
	out := make(map[string]int, len(prices))
	for id, price := range prices {
		out[domain.UnqualifiedID(id)] = price
	}
	return out, nil
}
