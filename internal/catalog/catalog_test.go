package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/plant"
)

const shippedDataDir = "../../configs/data"

type fakeRegistrar struct {
	mu     sync.Mutex
	models map[string]plant.Model
	order  []string
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{models: make(map[string]plant.Model)}
}

func (f *fakeRegistrar) AddCrop(_ context.Context, id string, m plant.Model) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.models[id]; exists {
		return false
	}
	f.models[id] = m
	f.order = append(f.order, id)
	return true
}

func writeData(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const minimalItems = `items:
  - {id: "(O)472", name: Parsnip Seeds, sell_price: 10}
  - {id: "(O)24", name: Parsnip, sell_price: 35}
`

func TestLoader_ShippedCatalog(t *testing.T) {
	c, err := NewLoader(shippedDataDir, nil).Load(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, c.Crops)
	assert.NotEmpty(t, c.FruitTrees)
	assert.NotEmpty(t, c.Bushes)

	shops, err := c.Shops(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, shops)

	models, err := c.Models()
	require.NoError(t, err)
	assert.Len(t, models, len(c.Crops)+len(c.FruitTrees)+len(c.Bushes))
}

func TestLoader_OptionalFilesMayBeAbsent(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, FileItems, minimalItems)

	c, err := NewLoader(dir, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Items.Len())
	assert.Empty(t, c.Crops)
	shops, err := c.Shops(context.Background())
	require.NoError(t, err)
	assert.Empty(t, shops)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
		errMsg  string
	}{
		{
			name:   "missing items file",
			files:  map[string]string{},
			errMsg: ErrMsgReadFileFailed,
		},
		{
			name: "schema violation",
			files: map[string]string{
				FileItems: "items:\n  - {id: \"(O)1\", sell_price: -4}\n",
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "duplicate item",
			files: map[string]string{
				FileItems: "items:\n  - {id: \"(O)1\", sell_price: 1}\n  - {id: \"1\", sell_price: 2}\n",
			},
			wantErr: domain.ErrInvalidInput,
			errMsg:  ErrMsgDuplicateID,
		},
		{
			name: "unknown season",
			files: map[string]string{
				FileItems: minimalItems,
				FileCrops: "crops:\n  - {id: \"472\", harvest_item: \"24\", phase_days: [4], seasons: [monsoon]}\n",
			},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "unknown harvest item",
			files: map[string]string{
				FileItems: minimalItems,
				FileCrops: "crops:\n  - {id: \"472\", harvest_item: \"999\", phase_days: [4], seasons: [spring]}\n",
			},
			wantErr: domain.ErrItemNotFound,
		},
		{
			name: "duplicate crop",
			files: map[string]string{
				FileItems: minimalItems,
				FileCrops: "crops:\n" +
					"  - {id: \"472\", harvest_item: \"24\", phase_days: [4], seasons: [spring]}\n" +
					"  - {id: \"472\", harvest_item: \"24\", phase_days: [3], seasons: [spring]}\n",
			},
			wantErr: domain.ErrInvalidInput,
			errMsg:  ErrMsgDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeData(t, dir, name, content)
			}
			_, err := NewLoader(dir, nil).Load(context.Background())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestItemRegistry(t *testing.T) {
	r, err := NewItemRegistry([]domain.Item{{ID: "24", Name: "Parsnip", SellPrice: 35}})
	require.NoError(t, err)

	item, ok := r.Item("(O)24")
	require.True(t, ok)
	assert.Equal(t, "(O)24", item.ID)

	_, ok = r.Item("24")
	assert.True(t, ok)

	_, err = r.Lookup("25")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	r.Register(domain.Item{ID: "(O)25", SellPrice: 1})
	assert.Equal(t, []string{"(O)24", "(O)25"}, r.IDs())
}

func TestDisplayName(t *testing.T) {
	named := domain.Item{ID: "(O)24", Name: "Parsnip"}
	assert.Equal(t, "Giant Parsnip", DisplayName("Giant Parsnip", named, true, "24"))
	assert.Equal(t, "Parsnip", DisplayName("", named, true, "24"))
	assert.Equal(t, "Bramble Cutting", DisplayName("", domain.Item{}, false, "(O)bramble_cutting"))
}
