package main

import "errors"

// Sentinel errors for broad classification. Callers match with
// errors.Is; the pipeline wraps each with the offending path.
var (
	errInputNotFound = errors.New("input not found")
	errRead          = errors.New("read error")
	errWrite         = errors.New("write error")
	errConvert       = errors.New("conversion error")
)
