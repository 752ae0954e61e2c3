package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"boostgraph/config"
	"boostgraph/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliOptions struct {
	checkPhrases   bool
	dryRun         bool
	workDir        string
	wordsFile      string
	phrasesFile    string
	outputFile     string
	wordDiscount   float64
	phraseDiscount float64
}

func handleCLIFlags() (cliOptions, bool, int) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)

	showVersion := flags.Bool("version", false, "print version information")
	showDiagnose := flags.Bool("diagnose", false, "print runtime diagnostics and dependency status")
	checkPhrases := flags.Bool("check-phrases", false, "check the phrase list against the vocabulary and exit")
	dryRun := flags.Bool("dry-run", false, "resolve the interpreter and derive the environment without running the builder")
	workDir := flags.String("workdir", "", "working directory for the build (default from config)")
	wordsFile := flags.String("words", "", "vocabulary words.txt path (default from config)")
	phrasesFile := flags.String("phrases", "", "phrase list path (default from config)")
	outputFile := flags.String("output", "", "output FST path (default from config)")
	wordDiscount := flags.Float64("word-discount", 0, "word discount (default from config)")
	phraseDiscount := flags.Float64("phrase-discount", 0, "phrase discount (default from config)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return cliOptions{}, true, 2
	}

	opts := cliOptions{
		checkPhrases:   *checkPhrases,
		dryRun:         *dryRun,
		workDir:        *workDir,
		wordsFile:      *wordsFile,
		phrasesFile:    *phrasesFile,
		outputFile:     *outputFile,
		wordDiscount:   *wordDiscount,
		phraseDiscount: *phraseDiscount,
	}

	if !*showVersion && !*showDiagnose {
		return opts, false, 0
	}

	if *showVersion {
		printVersion()
	}

	if *showDiagnose {
		if *showVersion {
			fmt.Println()
		}
		printDiagnose()
	}

	return opts, true, 0
}

func printVersion() {
	fmt.Printf("version: %s\ncommit: %s\ndate: %s\n", version, commit, date)
}

func printDiagnose() {
	fmt.Printf("runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("version: %s\n", version)
	fmt.Printf("commit: %s\n", commit)
	fmt.Printf("date: %s\n", date)

	if wd, err := os.Getwd(); err == nil {
		fmt.Printf("working_dir: %s\n", wd)
	} else {
		fmt.Printf("working_dir: <error: %v>\n", err)
	}

	if exePath, err := os.Executable(); err == nil {
		fmt.Printf("executable: %s\n", exePath)
	} else {
		fmt.Printf("executable: <error: %v>\n", err)
	}

	if configPath, err := config.ResolveConfigPath(); err == nil {
		printPath("config", configPath)
		// 配置文件存在才加载，诊断命令不应生成文件
		if _, statErr := os.Stat(configPath); statErr == nil {
			if _, loadErr := config.LoadOrCreateConfig(); loadErr != nil {
				fmt.Printf("config: <error: %v>\n", loadErr)
			}
		}
	} else {
		fmt.Printf("path.config: <error: %v>\n", err)
	}
	printPath("log", "app.log")
	printPath("cache", "cache")

	svc := &service.Service{}
	fmt.Println(svc.Diagnose())
}

func printPath(name, value string) {
	absPath, err := filepath.Abs(value)
	if err != nil {
		fmt.Printf("path.%s: %s (abs_error=%v)\n", name, value, err)
		return
	}

	if _, err = os.Stat(absPath); err == nil {
		fmt.Printf("path.%s: %s (exists)\n", name, absPath)
		return
	}
	if os.IsNotExist(err) {
		fmt.Printf("path.%s: %s (missing)\n", name, absPath)
		return
	}

	fmt.Printf("path.%s: %s (error=%v)\n", name, absPath, err)
}
