package aggchainproofservice

import (
	"errors"
	"fmt"
)

const (
	// StageProposer identifies errors of the proposer stage
	StageProposer = "proposer"
	// StageBuilder identifies errors of the aggchain proof builder stage
	StageBuilder = "builder"
)

var (
	// ErrProposerConstruction is returned when the proposer stage can't be built
	ErrProposerConstruction = errors.New("unable to build the proposer service")
	// ErrBuilderConstruction is returned when the builder stage can't be built
	ErrBuilderConstruction = errors.New("unable to build the aggchain proof builder")
)

// Error is a failure of one of the stages, Stage is StageProposer or StageBuilder
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
