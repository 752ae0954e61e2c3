package pyenv

import (
	"strings"

	apperrors "boostgraph/pkg/errors"
	"boostgraph/pkg/util"
)

const (
	PythonPathVar  = "PYTHONPATH"
	LibraryPathVar = "LD_LIBRARY_PATH"
)

// Env is the explicit environment overlay handed to the child-process
// spawn. The invoker's own process environment is never mutated.
type Env struct {
	PythonPath  string
	LibraryPath string
}

// Derive computes the overlay for one interpreter inside one Kaldi tree.
// Deterministic: same interpreter and root always yield the same overlay.
func Derive(interp Interpreter, kaldiRoot string) Env {
	return Env{
		PythonPath:  SitePackagesDir(kaldiRoot, interp.Name),
		LibraryPath: RuntimeLibDir(interp.RealPath),
	}
}

// Validate treats an empty derived value as fatal, the set -u discipline of
// the legacy wrapper.
func (e Env) Validate() error {
	if strings.TrimSpace(e.PythonPath) == "" {
		return apperrors.WrapWithDetail(apperrors.CodeUnsetVariable, "环境变量值为空 Derived environment value is empty", PythonPathVar, nil)
	}
	if strings.TrimSpace(e.LibraryPath) == "" {
		return apperrors.WrapWithDetail(apperrors.CodeUnsetVariable, "环境变量值为空 Derived environment value is empty", LibraryPathVar, nil)
	}
	return nil
}

// Apply returns a copy of base with both search-path variables replaced by
// the derived values. Inherited entries for other keys pass through
// untouched.
func (e Env) Apply(base []string) []string {
	env := util.SetEnvVar(base, PythonPathVar, e.PythonPath)
	return util.SetEnvVar(env, LibraryPathVar, e.LibraryPath)
}
