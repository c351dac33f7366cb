package catalog

// Data file names under the data directory
const (
	FileItems      = "items.yaml"
	FileCrops      = "crops.yaml"
	FileFruitTrees = "fruit_trees.yaml"
	FileBushes     = "bushes.yaml"
	FileShops      = "shops.yaml"
)

// Error message constants
const (
	ErrMsgReadFileFailed   = "failed to read catalog file"
	ErrMsgParseFileFailed  = "failed to parse catalog file"
	ErrMsgDuplicateID      = "duplicate definition id"
	ErrMsgUnknownItem      = "references unknown item"
	ErrMsgInvalidDef       = "invalid definition"
	ErrMsgSeedPricesFailed = "failed to load seed prices"
)

// Log message constants
const (
	LogMsgCatalogLoaded     = "Catalog loaded"
	LogMsgCatalogFileAbsent = "Catalog file not found, skipping"
	LogMsgPlantRejected     = "Plant registration rejected"
	LogMsgPlantRegistered   = "Third-party plant registered"
)
