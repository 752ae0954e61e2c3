package types

import (
	"context"
	"io"
	"time"
)

type RunStage uint8

const (
	RunStageResolving RunStage = iota + 1
	RunStageDeriving
	RunStageInvoking
	RunStageSucceeded
	RunStageFailed
)

func (s RunStage) String() string {
	switch s {
	case RunStageResolving:
		return "resolving"
	case RunStageDeriving:
		return "deriving"
	case RunStageInvoking:
		return "invoking"
	case RunStageSucceeded:
		return "succeeded"
	case RunStageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func (s RunStage) IsTerminal() bool {
	return s == RunStageSucceeded || s == RunStageFailed
}

// CommandSpec describes one external process invocation: the program path,
// its arguments, the working directory and the full child environment.
type CommandSpec struct {
	Path   string
	Args   []string
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

type CommandResult struct {
	ExitCode   int
	Duration   time.Duration
	StderrTail []string
}

type CommandRunner interface {
	Run(ctx context.Context, spec CommandSpec) (CommandResult, error)
}

// GraphParams carries the builder invocation parameters after config and
// request values have been merged.
type GraphParams struct {
	WordDiscount   float64
	PhraseDiscount float64
	WordsFile      string
	PhrasesFile    string
	OutputFile     string
	WorkDir        string
}

type GraphResult struct {
	ExitCode   int
	Duration   time.Duration
	Command    []string
	StderrTail []string
}

type GraphBuilder interface {
	Build(ctx context.Context, params GraphParams, env []string) (GraphResult, error)
}
