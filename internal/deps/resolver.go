package deps

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

type DependencyTier string

const (
	DependencyTierMust     DependencyTier = "must"
	DependencyTierOptional DependencyTier = "optional"
)

type DependencyStatus string

const (
	DependencyStatusOK      DependencyStatus = "ok"
	DependencyStatusMissing DependencyStatus = "missing"
	DependencyStatusError   DependencyStatus = "error"
)

type DependencySource string

const (
	DependencySourceConfigured DependencySource = "configured"
	DependencySourceLookPath   DependencySource = "lookpath"
)

type DependencySpec struct {
	ID             string
	Name           string
	Command        string
	Tier           DependencyTier
	ConfiguredPath string
	Hint           string
}

type DependencyState struct {
	DependencySpec
	ResolvedPath string
	Status       DependencyStatus
	Source       DependencySource
	Error        string
}

type PathResolver struct {
	LookPath func(file string) (string, error)
	AbsPath  func(path string) (string, error)
	Stat     func(name string) (os.FileInfo, error)
}

func NewPathResolver() PathResolver {
	return PathResolver{
		LookPath: exec.LookPath,
		AbsPath:  filepath.Abs,
		Stat:     os.Stat,
	}
}

func (r PathResolver) Resolve(spec DependencySpec) DependencyState {
	state := DependencyState{DependencySpec: spec}
	configured := strings.TrimSpace(spec.ConfiguredPath)

	if configured != "" {
		state.Source = DependencySourceConfigured
		resolvedPath, err := r.resolveConfiguredPath(configured)
		if err == nil {
			state.Status = DependencyStatusOK
			state.ResolvedPath = resolvedPath
			return state
		}

		if absPath, absErr := r.AbsPath(configured); absErr == nil {
			state.ResolvedPath = absPath
		} else {
			state.ResolvedPath = configured
		}
		state.Error = err.Error()
		if isMissingPathError(err) {
			state.Status = DependencyStatusMissing
		} else {
			state.Status = DependencyStatusError
		}
		return state
	}

	state.Source = DependencySourceLookPath
	resolvedPath, err := r.LookPath(spec.Command)
	if err == nil {
		state.Status = DependencyStatusOK
		state.ResolvedPath = resolvedPath
		return state
	}

	state.Error = err.Error()
	if isMissingPathError(err) {
		state.Status = DependencyStatusMissing
		return state
	}
	state.Status = DependencyStatusError
	return state
}

func (r PathResolver) resolveConfiguredPath(configuredPath string) (string, error) {
	if resolvedPath, err := r.LookPath(configuredPath); err == nil {
		return resolvedPath, nil
	}

	absPath, err := r.AbsPath(configuredPath)
	if err != nil {
		return "", err
	}
	if _, err = r.Stat(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

func ResolveDependencyStates(specs []DependencySpec, resolver PathResolver) []DependencyState {
	resolved := make([]DependencyState, 0, len(specs))
	for _, spec := range specs {
		resolved = append(resolved, resolver.Resolve(spec))
	}
	return resolved
}

func ResolveDependencyInventory(interpreter, builderScript string) []DependencyState {
	specs := BuildDependencyInventory(interpreter, builderScript)
	return ResolveDependencyStates(specs, NewPathResolver())
}

func BuildDependencyInventory(interpreter, builderScript string) []DependencySpec {
	interpreterCommand := strings.TrimSpace(interpreter)
	if interpreterCommand == "" {
		interpreterCommand = "python3"
	}

	return []DependencySpec{
		{
			ID:      "python",
			Name:    "python",
			Command: interpreterCommand,
			Tier:    DependencyTierMust,
			Hint:    "Required to run the boosting-graph builder; PYTHONPATH is derived from its resolved path.",
		},
		{
			ID:             "builder",
			Name:           "builder script",
			Command:        builderScript,
			Tier:           DependencyTierMust,
			ConfiguredPath: builderScript,
			Hint:           "The boosting-graph builder invoked by the run command; path is relative to the recipe directory.",
		},
		{
			ID:      "fstcompile",
			Name:    "fstcompile",
			Command: "fstcompile",
			Tier:    DependencyTierOptional,
			Hint:    "OpenFst CLI; its presence suggests the Kaldi tools tree has been built.",
		},
		{
			ID:      "dot",
			Name:    "dot",
			Command: "dot",
			Tier:    DependencyTierOptional,
			Hint:    "Graphviz; only needed when the builder renders debug PDFs of the graph.",
		},
	}
}

func FormatDependencyReport(states []DependencyState) string {
	if len(states) == 0 {
		return "No dependencies to diagnose."
	}

	var builder strings.Builder
	builder.WriteString("Dependency status")

	for _, state := range states {
		resolvedPath := strings.TrimSpace(state.ResolvedPath)
		if resolvedPath == "" {
			resolvedPath = "unknown"
		}

		source := strings.TrimSpace(string(state.Source))
		if source == "" {
			source = "n/a"
		}

		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("- %s [%s]: %s | path=%s | source=%s", state.Name, strings.ToUpper(string(state.Tier)), state.Status, resolvedPath, source))
		if state.Error != "" {
			builder.WriteString("\n")
			builder.WriteString("  error: ")
			builder.WriteString(state.Error)
		}
		if state.Hint != "" {
			builder.WriteString("\n")
			builder.WriteString("  hint: ")
			builder.WriteString(state.Hint)
		}
	}

	return builder.String()
}

func isMissingPathError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
		return true
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		if errors.Is(pathErr.Err, os.ErrNotExist) {
			return true
		}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		if errors.Is(execErr.Err, exec.ErrNotFound) {
			return true
		}
	}

	message := strings.ToLower(err.Error())
	return strings.Contains(message, "not found") || strings.Contains(message, "cannot find")
}
