//go:build verify
// +build verify

package main

import (
	"context"
	"fmt"
	"os"

	"boostgraph/internal/pyenv"
	"boostgraph/internal/types"
	"boostgraph/log"
	"boostgraph/pkg/boostfst"
)

// Manual check: resolve a real interpreter on this machine, derive the
// environment and spawn the interpreter once so it can echo what it sees.
//
//	go run -tags verify tests/verify/pyenv_verify.go [interpreter]
func main() {
	log.InitLogger()

	interpreter := "python3"
	if len(os.Args) > 1 {
		interpreter = os.Args[1]
	}

	fmt.Printf("--- Resolving interpreter: %s ---\n", interpreter)
	interp, err := pyenv.NewResolver().ResolveInterpreter(interpreter)
	if err != nil {
		fmt.Printf("resolution failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("path: %s\n", interp.Path)
	fmt.Printf("real_path: %s\n", interp.RealPath)
	fmt.Printf("name: %s\n", interp.Name)

	wd, err := os.Getwd()
	if err != nil {
		fmt.Printf("getwd failed: %v\n", err)
		os.Exit(1)
	}
	kaldiRoot := pyenv.KaldiRootFrom(wd)
	env := pyenv.Derive(interp, kaldiRoot)
	fmt.Printf("kaldi_root: %s\n", kaldiRoot)
	fmt.Printf("PYTHONPATH: %s\n", env.PythonPath)
	fmt.Printf("LD_LIBRARY_PATH: %s\n", env.LibraryPath)

	fmt.Println("--- Spawning interpreter to echo the prepared environment ---")
	result, err := boostfst.NewExecRunner().Run(context.Background(), types.CommandSpec{
		Path:   interp.Path,
		Args:   []string{"-c", "import os; print(os.environ.get('PYTHONPATH')); print(os.environ.get('LD_LIBRARY_PATH'))"},
		Env:    env.Apply(os.Environ()),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		fmt.Printf("spawn failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("exit_code: %d\n", result.ExitCode)
}
