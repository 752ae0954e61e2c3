// Package pyenv locates the active Python interpreter and derives the
// OpenFst import and runtime-library paths the graph builder needs inside a
// Kaldi tree.
package pyenv

import (
	"os/exec"
	"path/filepath"
	"strings"

	apperrors "boostgraph/pkg/errors"
)

// recipe 目录在 Kaldi 树下四层：egs/<语料>/<recipe>/<目录>
const kaldiRootRelative = "../../../.."

// Interpreter describes the active interpreter after search-path lookup and
// symlink resolution. Name is the base name of the resolved path, not of
// the command: a python3 -> python3.8 symlink must key the site-packages
// directory as python3.8.
type Interpreter struct {
	Command  string
	Path     string
	RealPath string
	Name     string
}

type Resolver struct {
	LookPath     func(file string) (string, error)
	EvalSymlinks func(path string) (string, error)
}

func NewResolver() Resolver {
	return Resolver{
		LookPath:     exec.LookPath,
		EvalSymlinks: filepath.EvalSymlinks,
	}
}

func (r Resolver) ResolveInterpreter(command string) (Interpreter, error) {
	trimmed := strings.TrimSpace(command)
	if trimmed == "" {
		return Interpreter{}, apperrors.ErrInvalidParams
	}

	path, err := r.LookPath(trimmed)
	if err != nil {
		return Interpreter{}, apperrors.WrapWithDetail(apperrors.CodeInterpreterNotFound, "解释器未找到 Interpreter not found", trimmed, err)
	}

	realPath, err := r.EvalSymlinks(path)
	if err != nil {
		return Interpreter{}, apperrors.WrapWithDetail(apperrors.CodeInterpreterResolve, "解释器路径解析失败 Interpreter path resolution failed", path, err)
	}

	return Interpreter{
		Command:  trimmed,
		Path:     path,
		RealPath: realPath,
		Name:     filepath.Base(realPath),
	}, nil
}

// KaldiRootFrom derives the Kaldi checkout root from a recipe working
// directory. Pure path arithmetic: the root is not required to exist.
func KaldiRootFrom(workDir string) string {
	return filepath.Clean(filepath.Join(workDir, kaldiRootRelative))
}

// SitePackagesDir is where the Kaldi tools tree installs the compiled
// OpenFst extension for one interpreter version.
func SitePackagesDir(kaldiRoot, interpreterName string) string {
	return filepath.Join(kaldiRoot, "tools", "openfst", "lib", interpreterName, "site-packages")
}

// RuntimeLibDir is the interpreter installation's lib directory, the
// grandparent of the resolved binary plus lib: /opt/conda/bin/python ->
// /opt/conda/lib.
func RuntimeLibDir(interpreterRealPath string) string {
	return filepath.Join(filepath.Dir(filepath.Dir(interpreterRealPath)), "lib")
}
