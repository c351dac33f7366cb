package postgres

// Seed price sources recorded alongside each row
const (
	SeedPriceSourceImport = "import"
	SeedPriceSourceManual = "manual"
)

// Error Messages - Seed price operations
const (
	ErrMsgFailedToQuerySeedPrices  = "failed to query seed prices"
	ErrMsgFailedToScanSeedPrice    = "failed to scan seed price row"
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToUpsertSeedPrice  = "failed to upsert seed price"
	ErrMsgFailedToCommit           = "failed to commit transaction"
	ErrMsgFailedToDeleteSeedPrice  = "failed to delete seed price"
)

// Log Messages
const (
	LogMsgSeedPricesImported = "Seed prices imported"
)
