package boostfst

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"boostgraph/internal/types"
	"boostgraph/log"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const stderrTailLimit = 20

// execRunner is the real CommandRunner: exec.CommandContext with the
// CommandSpec's working directory and environment, streams relayed line by
// line.
type execRunner struct{}

func NewExecRunner() types.CommandRunner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, spec types.CommandSpec) (types.CommandResult, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return types.CommandResult{}, err
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return types.CommandResult{}, err
	}

	startedAt := time.Now()
	if err = cmd.Start(); err != nil {
		return types.CommandResult{}, err
	}

	tail := &tailBuffer{limit: stderrTailLimit}

	// 两条管道读完后才能调用 Wait，否则 Wait 会提前关闭管道
	var group errgroup.Group
	group.Go(func() error {
		return relay(stdoutPipe, spec.Stdout, "stdout", nil)
	})
	group.Go(func() error {
		return relay(stderrPipe, spec.Stderr, "stderr", tail)
	})
	relayErr := group.Wait()

	waitErr := cmd.Wait()
	result := types.CommandResult{
		ExitCode:   exitCodeOf(waitErr),
		Duration:   time.Since(startedAt),
		StderrTail: tail.lines,
	}

	if waitErr != nil {
		return result, waitErr
	}
	if relayErr != nil {
		return result, relayErr
	}
	return result, nil
}

func relay(src io.Reader, dst io.Writer, stream string, tail *tailBuffer) error {
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := scanner.Text()
		if tail != nil {
			tail.add(line)
		}
		// 只写入日志文件（Debug 级别），终端输出走 dst 透传，避免重复打印
		log.GetLogger().Debug("builder output", zap.String("stream", stream), zap.String("line", line))
		if dst != nil {
			if _, err := io.WriteString(dst, line+"\n"); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

// exitCodeOf maps a Wait error to the code the shell would have seen. A
// signal-terminated child has no exit code; it maps to 1.
func exitCodeOf(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}

type tailBuffer struct {
	limit int
	lines []string
}

func (b *tailBuffer) add(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > b.limit {
		b.lines = b.lines[1:]
	}
}
