package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Calendar errors
	ErrMsgUnmappedSeason = "season has no calendar mapping"

	// Settings errors
	ErrMsgInvalidSettings = "invalid simulation settings"

	// Catalog errors
	ErrMsgDuplicateCrop = "crop already registered"
	ErrMsgCropNotFound  = "crop not found"
	ErrMsgItemNotFound  = "item not found"
	ErrMsgShopNotFound  = "shop not found"

	// Cache errors
	ErrMsgCacheRebuild = "price cache rebuild failed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnmappedSeason  = errors.New(ErrMsgUnmappedSeason)
	ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)
	ErrDuplicateCrop   = errors.New(ErrMsgDuplicateCrop)
	ErrCropNotFound    = errors.New(ErrMsgCropNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrShopNotFound    = errors.New(ErrMsgShopNotFound)
	ErrCacheRebuild    = errors.New(ErrMsgCacheRebuild)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
