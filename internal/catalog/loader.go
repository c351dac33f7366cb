package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/validation"
)

// Catalog is the decoded content of a data directory.
type Catalog struct {
	Items      *ItemRegistry
	Crops      []CropDef
	FruitTrees []FruitTreeDef
	Bushes     []BushDef
	shops      []domain.Shop
}

// Shops returns the shop definitions. It satisfies pricing.ShopProvider.
func (c *Catalog) Shops(context.Context) ([]domain.Shop, error) {
	out := make([]domain.Shop, len(c.shops))
	copy(out, c.shops)
	return out, nil
}

// Loader reads catalog files from a data directory. Each file is checked
// against its JSON schema before decoding and against the struct tags after.
type Loader struct {
	dataDir  string
	schemas  validation.SchemaValidator
	validate *validator.Validate
}

// NewLoader creates a loader for dataDir.
func NewLoader(dataDir string, schemas validation.SchemaValidator) *Loader {
	if schemas == nil {
		schemas = validation.NewSchemaValidator()
	}
	return &Loader{
		dataDir:  dataDir,
		schemas:  schemas,
		validate: newValidator(),
	}
}

// Load reads every catalog file. items.yaml is required; the plant and shop
// files are skipped when absent.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	log := logger.FromContext(ctx)

	var items ItemsFile
	if err := l.decode(FileItems, validation.SchemaItems, &items); err != nil {
		return nil, err
	}
	registry, err := NewItemRegistry(items.Items)
	if err != nil {
		return nil, err
	}

	var crops CropsFile
	var trees FruitTreesFile
	var bushes BushesFile
	var shops ShopsFile
	optional := []struct {
		file   string
		schema string
		out    any
	}{
		{FileCrops, validation.SchemaCrops, &crops},
		{FileFruitTrees, validation.SchemaFruitTrees, &trees},
		{FileBushes, validation.SchemaBushes, &bushes},
		{FileShops, validation.SchemaShops, &shops},
	}
	for _, o := range optional {
		err := l.decode(o.file, o.schema, o.out)
		if errors.Is(err, fs.ErrNotExist) {
			log.Info(LogMsgCatalogFileAbsent, "file", o.file)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		Items:      registry,
		Crops:      crops.Crops,
		FruitTrees: trees.FruitTrees,
		Bushes:     bushes.Bushes,
		shops:      shops.Shops,
	}
	if err := c.checkReferences(); err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"dir", l.dataDir,
		"items", registry.Len(),
		"crops", len(c.Crops),
		"fruit_trees", len(c.FruitTrees),
		"bushes", len(c.Bushes),
		"shops", len(c.shops))
	return c, nil
}

func (l *Loader) decode(file, schema string, out any) error {
	path := filepath.Join(l.dataDir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgReadFileFailed, path, err)
	}
	if err := l.schemas.ValidateYAML(data, schema); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidInput, ErrMsgParseFileFailed, path, err)
	}
	if err := l.validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrInvalidInput, ErrMsgInvalidDef, path, err)
	}
	return nil
}

// checkReferences makes sure every plant points at known items and that ids
// are unique per catalog file.
func (c *Catalog) checkReferences() error {
	known := func(kind, owner, id string) error {
		if _, ok := c.Items.Item(id); !ok {
			return fmt.Errorf("%w: %s %s %s %q", domain.ErrItemNotFound, kind, owner, ErrMsgUnknownItem, id)
		}
		return nil
	}

	seen := make(map[string]struct{})
	unique := func(kind, id string) error {
		key := kind + ":" + id
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s %s %q", domain.ErrInvalidInput, kind, ErrMsgDuplicateID, id)
		}
		seen[key] = struct{}{}
		return nil
	}

	for _, d := range c.Crops {
		if err := unique(domain.KindCrop, d.ID); err != nil {
			return err
		}
		if err := known(domain.KindCrop, d.ID, d.HarvestItem); err != nil {
			return err
		}
	}
	for _, d := range c.FruitTrees {
		if err := unique(domain.KindFruitTree, d.ID); err != nil {
			return err
		}
		for _, drop := range d.Fruit {
			if err := known(domain.KindFruitTree, d.ID, drop.ItemID); err != nil {
				return err
			}
		}
	}
	for _, d := range c.Bushes {
		if err := unique(domain.KindCustomBush, d.ID); err != nil {
			return err
		}
		for _, drop := range d.Drops {
			if err := known(domain.KindCustomBush, d.ID, drop.ItemID); err != nil {
				return err
			}
		}
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("season", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseCalendarSeason(fl.Field().String())
		return err == nil
	})
	return v
}
