package service

import (
	"path/filepath"

	"boostgraph/config"
	"boostgraph/internal/deps"
	"boostgraph/internal/vocab"
)

// Diagnose resolves every external dependency on the current machine and
// renders the report.
func (s *Service) Diagnose() string {
	states := deps.ResolveDependencyInventory(config.Conf.Python.Interpreter, config.Conf.Boost.Script)
	return deps.FormatDependencyReport(states)
}

// CheckPhrases loads the recognizer vocabulary and the phrase list, then
// reports phrases containing out-of-vocabulary words. Relative file paths
// resolve against the working directory, mirroring the builder invocation.
func (s *Service) CheckPhrases(workDir, wordsFile, phrasesFile string) (vocab.Report, error) {
	if workDir == "" {
		workDir = config.Conf.App.RunWorkdir
	}
	if workDir == "" {
		workDir = "."
	}
	if wordsFile == "" {
		wordsFile = config.Conf.Boost.WordsFile
	}
	if phrasesFile == "" {
		phrasesFile = config.Conf.Boost.PhrasesFile
	}
	if !filepath.IsAbs(wordsFile) {
		wordsFile = filepath.Join(workDir, wordsFile)
	}
	if !filepath.IsAbs(phrasesFile) {
		phrasesFile = filepath.Join(workDir, phrasesFile)
	}

	table, err := vocab.LoadTable(wordsFile)
	if err != nil {
		return vocab.Report{}, err
	}
	phrases, err := vocab.LoadPhrases(phrasesFile)
	if err != nil {
		return vocab.Report{}, err
	}
	return vocab.Check(table, phrases), nil
}
