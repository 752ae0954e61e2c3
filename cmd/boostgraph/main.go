package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"boostgraph/config"
	"boostgraph/internal/dto"
	"boostgraph/internal/service"
	"boostgraph/internal/vocab"
	"boostgraph/log"
	apperrors "boostgraph/pkg/errors"

	"go.uber.org/zap"
)

func main() {
	opts, handled, exitCode := handleCLIFlags()
	if handled {
		os.Exit(exitCode)
	}

	log.InitLogger()
	defer log.GetLogger().Sync()

	created, err := config.LoadOrCreateConfig()
	if err != nil {
		log.GetLogger().Error("加载配置失败", zap.Error(err))
		os.Exit(1)
	}
	if created {
		if configPath, pathErr := config.ResolveConfigPath(); pathErr == nil {
			log.GetLogger().Info("已生成默认配置", zap.String("path", configPath))
		}
	}
	if err = config.CheckConfig(); err != nil {
		log.GetLogger().Error("配置校验失败", zap.Error(err))
		os.Exit(1)
	}

	svc := service.NewService()

	if opts.checkPhrases {
		report, checkErr := svc.CheckPhrases(opts.workDir, opts.wordsFile, opts.phrasesFile)
		if checkErr != nil {
			log.GetLogger().Error("短语预检失败", zap.Error(checkErr))
			os.Exit(1)
		}
		fmt.Println(vocab.FormatReport(report))
		if !report.Clean() {
			os.Exit(1)
		}
		return
	}

	req := dto.BuildGraphReq{
		WorkDir:        opts.workDir,
		WordDiscount:   opts.wordDiscount,
		PhraseDiscount: opts.phraseDiscount,
		WordsFile:      opts.wordsFile,
		PhrasesFile:    opts.phrasesFile,
		OutputFile:     opts.outputFile,
		DryRun:         opts.dryRun,
	}

	res, err := svc.BuildBoostingGraph(context.Background(), req)
	if err != nil {
		log.GetLogger().Error("构建失败", zap.Error(err))
		// 子进程退出码原样透传给调用方
		if apperrors.Is(err, apperrors.CodeBuilderFailed) && res != nil && res.ExitCode != 0 {
			os.Exit(res.ExitCode)
		}
		os.Exit(1)
	}

	if req.DryRun {
		fmt.Printf("interpreter: %s\n", res.Interpreter)
		fmt.Printf("PYTHONPATH: %s\n", res.PackageDir)
		fmt.Printf("LD_LIBRARY_PATH: %s\n", res.LibraryDir)
		fmt.Printf("command: %s\n", strings.Join(res.Command, " "))
		return
	}

	log.GetLogger().Info("构建成功",
		zap.String("output", res.OutputFile),
		zap.Int("exit_code", res.ExitCode),
		zap.Int64("duration_ms", res.DurationMS))
}
