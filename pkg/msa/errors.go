package msa

import "errors"

// Errors returned by this package. They are wrapped with some context
// (the label, the threshold, the stage), so check them with errors.Is.
var (
	ErrConstruct   = errors.New("bad alignment")
	ErrType        = errors.New("wrong type of input")
	ErrIndex       = errors.New("index out of range")
	ErrNotFound    = errors.New("label not found")
	ErrAmbiguous   = errors.New("label maps onto multiple sequences")
	ErrThreshold   = errors.New("threshold must be between 0 and 1")
	ErrNoCriterion = errors.New("no refinement criterion given")
	ErrTooFew      = errors.New("need more than one alignment")
)
