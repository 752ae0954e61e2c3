// Package boostfst wraps the external boosting-graph builder script: it
// assembles the fixed argument list, spawns the script with an explicitly
// prepared environment and reports the child's exit status.
package boostfst

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"boostgraph/internal/types"
	"boostgraph/log"
	apperrors "boostgraph/pkg/errors"

	"go.uber.org/zap"
)

type Builder struct {
	Script string
	Runner types.CommandRunner
	Stdout io.Writer
	Stderr io.Writer
}

func NewBuilder(script string) *Builder {
	return &Builder{
		Script: script,
		Runner: NewExecRunner(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// BuildArgs assembles the builder's argument list. With a zero phrase
// discount this is exactly the legacy five-argument call:
// --word-discount -3.0 <words> <phrases> <output>.
func BuildArgs(params types.GraphParams) []string {
	args := make([]string, 0, 7)
	args = append(args, "--word-discount", FormatDiscount(params.WordDiscount))
	if params.PhraseDiscount != 0 {
		args = append(args, "--phrase-discount", FormatDiscount(params.PhraseDiscount))
	}
	return append(args, params.WordsFile, params.PhrasesFile, params.OutputFile)
}

// FormatDiscount renders a discount the way the shell passed it: integral
// values keep a trailing .0, so -3 becomes "-3.0".
func FormatDiscount(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.Contains(formatted, ".") {
		formatted += ".0"
	}
	return formatted
}

// Build invokes the script and blocks until it exits. The command and both
// derived environment values are logged before the spawn, and the child's
// streams are relayed live. A non-zero exit surfaces as CodeBuilderFailed
// carrying the status; failures to start are resolution errors, the child
// never ran.
func (b *Builder) Build(ctx context.Context, params types.GraphParams, env []string) (types.GraphResult, error) {
	args := BuildArgs(params)
	command := append([]string{b.Script}, args...)

	log.GetLogger().Info("执行构建脚本 executing builder",
		zap.Strings("command", command),
		zap.String("dir", params.WorkDir))

	result, err := b.Runner.Run(ctx, types.CommandSpec{
		Path:   b.Script,
		Args:   args,
		Dir:    params.WorkDir,
		Env:    env,
		Stdout: b.Stdout,
		Stderr: b.Stderr,
	})

	graphResult := types.GraphResult{
		ExitCode:   result.ExitCode,
		Duration:   result.Duration,
		Command:    command,
		StderrTail: result.StderrTail,
	}

	if err == nil {
		return graphResult, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		detail := fmt.Sprintf("exit status %d", graphResult.ExitCode)
		if len(graphResult.StderrTail) > 0 {
			detail += ": " + strings.Join(graphResult.StderrTail, " | ")
		}
		return graphResult, apperrors.WrapWithDetail(apperrors.CodeBuilderFailed, "构建进程退出异常 Builder process exited with an error", detail, err)
	}

	if errors.Is(err, os.ErrNotExist) || errors.Is(err, exec.ErrNotFound) {
		return graphResult, apperrors.WrapWithDetail(apperrors.CodeBuilderNotFound, "构建脚本未找到 Builder script not found", b.Script, err)
	}
	return graphResult, apperrors.Wrap(apperrors.CodeBuilderStart, "构建进程启动失败 Builder process failed to start", err)
}
