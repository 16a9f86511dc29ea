package types

import "errors"

// Client and resolver errors.
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidID        = errors.New("invalid record ID")
	ErrUnknownResource  = errors.New("unknown resource")
	ErrBackend          = errors.New("backend reported error")
	ErrBadEnvelope      = errors.New("malformed response envelope")
	ErrBatchUnsupported = errors.New("batch endpoint not supported")
)

// Schema validation errors.
var (
	ErrResourceEmpty    = errors.New("resource name must not be empty")
	ErrFieldNameEmpty   = errors.New("field name must not be empty")
	ErrInvalidFieldKind = errors.New("invalid field kind")
	ErrInvalidReference = errors.New("invalid reference spec")
)

// Config validation errors.
var (
	ErrBaseURLEmpty    = errors.New("base URL must not be empty")
	ErrTimeoutInvalid  = errors.New("timeout must be positive")
	ErrPageSizeInvalid = errors.New("page size must be positive")
)
