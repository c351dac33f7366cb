package calculator

// Fuzzy search scoring
const (
	scoreExact   = 1.0
	scorePrefix  = 0.9
	scoreFuzzy   = 0.72
	scorePerEdit = 0.08
	minFuzzyLen  = 3
)

// Log message constants
const (
	LogMsgDuplicateCrop   = "Crop already registered, ignoring"
	LogMsgCropRegistered  = "Crop registered"
	LogMsgCropsCleared    = "Registered crops cleared"
	LogMsgSettingsChanged = "Simulation settings updated"
	LogMsgRankingComputed = "Crop ranking computed"
)

// Error message constants
const (
	ErrMsgEvaluateFailed = "failed to evaluate crop"
)
