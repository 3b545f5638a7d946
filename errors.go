package barchart

import "github.com/tinywasm/barchart/errs"

// Input-validation failures. All of them are reported before anything is
// drawn.
type (
	ConfigurationError = errs.ConfigurationError
	EmptyDatasetError  = errs.EmptyDatasetError
	InvalidValueError  = errs.InvalidValueError
)
