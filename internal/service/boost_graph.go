package service

import (
	"boostgraph/config"
	"boostgraph/internal/dto"
	"boostgraph/internal/pyenv"
	"boostgraph/internal/types"
	"boostgraph/log"
	"boostgraph/pkg/boostfst"
	apperrors "boostgraph/pkg/errors"
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BuildBoostingGraph runs one end-to-end build: resolve the configured
// interpreter, derive the Kaldi python environment, then spawn the builder
// script with the prepared environment. On a builder exit failure the
// returned data still carries the child's exit code.
func (s *Service) BuildBoostingGraph(ctx context.Context, req dto.BuildGraphReq) (*dto.BuildGraphResData, error) {
	runID := uuid.New().String()
	logger := log.WithRunID(runID)

	workDir := req.WorkDir
	if workDir == "" {
		workDir = config.Conf.App.RunWorkdir
	}
	if workDir == "" {
		workDir = "."
	}
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeWorkdirResolve, "工作目录解析失败 Failed to resolve working directory", err)
	}

	// 1. 解析解释器
	logger.Info("运行阶段", zap.Stringer("stage", types.RunStageResolving))
	interp, err := s.Resolver.ResolveInterpreter(config.Conf.Python.Interpreter)
	if err != nil {
		logger.Error("解释器解析失败", zap.String("interpreter", config.Conf.Python.Interpreter), zap.Error(err))
		return nil, err
	}
	logger.Info("解释器已解析",
		zap.String("command", interp.Command),
		zap.String("path", interp.Path),
		zap.String("real_path", interp.RealPath),
		zap.String("name", interp.Name))

	// 2. 推导环境
	logger.Info("运行阶段", zap.Stringer("stage", types.RunStageDeriving))
	kaldiRoot := config.Conf.Kaldi.Root
	if kaldiRoot == "" {
		kaldiRoot = pyenv.KaldiRootFrom(absWorkDir)
	}
	env := pyenv.Derive(interp, kaldiRoot)
	if err = env.Validate(); err != nil {
		logger.Error("环境变量缺失", zap.Error(err))
		return nil, err
	}
	// 逐项打印派生值，等价于 shell 的 set -x
	logger.Info("环境已推导",
		zap.String("kaldi_root", kaldiRoot),
		zap.String(pyenv.PythonPathVar, env.PythonPath),
		zap.String(pyenv.LibraryPathVar, env.LibraryPath))

	params := types.GraphParams{
		WordDiscount:   req.WordDiscount,
		PhraseDiscount: req.PhraseDiscount,
		WordsFile:      req.WordsFile,
		PhrasesFile:    req.PhrasesFile,
		OutputFile:     req.OutputFile,
		WorkDir:        absWorkDir,
	}
	applyParamDefaults(&params)

	resData := &dto.BuildGraphResData{
		RunID:       runID,
		Interpreter: interp.RealPath,
		PackageDir:  env.PythonPath,
		LibraryDir:  env.LibraryPath,
		Command:     append([]string{config.Conf.Boost.Script}, boostfst.BuildArgs(params)...),
		OutputFile:  params.OutputFile,
	}

	if req.DryRun {
		logger.Info("dry-run：跳过构建执行", zap.Strings("command", resData.Command))
		return resData, nil
	}

	// 3. 执行构建
	logger.Info("运行阶段", zap.Stringer("stage", types.RunStageInvoking))
	result, err := s.GraphBuilder.Build(ctx, params, env.Apply(os.Environ()))
	resData.ExitCode = result.ExitCode
	resData.DurationMS = result.Duration.Milliseconds()
	if err != nil {
		logger.Error("运行阶段", zap.Stringer("stage", types.RunStageFailed),
			zap.Int("exit_code", result.ExitCode), zap.Error(err))
		return resData, err
	}

	logger.Info("运行阶段", zap.Stringer("stage", types.RunStageSucceeded),
		zap.Int("exit_code", result.ExitCode),
		zap.Duration("duration", result.Duration))
	return resData, nil
}

// applyParamDefaults fills unset request fields from the loaded config.
func applyParamDefaults(params *types.GraphParams) {
	if params.WordDiscount == 0 {
		params.WordDiscount = config.Conf.Boost.WordDiscount
	}
	if params.PhraseDiscount == 0 {
		params.PhraseDiscount = config.Conf.Boost.PhraseDiscount
	}
	if params.WordsFile == "" {
		params.WordsFile = config.Conf.Boost.WordsFile
	}
	if params.PhrasesFile == "" {
		params.PhrasesFile = config.Conf.Boost.PhrasesFile
	}
	if params.OutputFile == "" {
		params.OutputFile = config.Conf.Boost.OutputFile
	}
}
