package validation

// Schema files shipped under configs/schemas, resolved relative to the
// working directory or the module root.
const (
	SchemaSeedPrices = "configs/schemas/seed_prices.schema.json"
	SchemaItems      = "configs/schemas/items.schema.json"
	SchemaCrops      = "configs/schemas/crops.schema.json"
	SchemaFruitTrees = "configs/schemas/fruit_trees.schema.json"
	SchemaBushes     = "configs/schemas/bushes.schema.json"
	SchemaShops      = "configs/schemas/shops.schema.json"
)

// Error message constants
const (
	ErrMsgSchemaViolation = "schema validation failed"
	ErrMsgReadData        = "failed to read data file"
	ErrMsgLoadSchema      = "failed to load schema"
	ErrMsgParseJSON       = "failed to parse JSON data"
	ErrMsgParseYAML       = "failed to parse YAML data"
)
