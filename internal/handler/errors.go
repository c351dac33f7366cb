package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgGetSettingsFailed = "Failed to retrieve settings"
	ErrMsgSetSettingsFailed = "Failed to update settings"
	ErrMsgRankCropsFailed   = "Failed to rank crops"
	ErrMsgAddCropFailed     = "Failed to register crop"
	ErrMsgSeedPriceFailed   = "Failed to look up seed price"
	ErrMsgCacheRebuildFail  = "Failed to rebuild price caches"
)

// Success messages for API responses
const (
	MsgSettingsUpdated   = "Settings updated"
	MsgCropRegistered    = "Crop registered"
	MsgCropAlreadyExists = "Crop already registered"
	MsgCachesInvalidated = "Price caches invalidated"
	MsgCachesRebuilt     = "Price caches rebuilt"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgServiceError      = "Service call failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgSettingsUpdated   = "Settings updated via API"
	LogMsgCropsRanked       = "Crops ranked"
	LogMsgAdminCacheCommand = "Admin cache command"
)
