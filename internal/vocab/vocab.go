// Package vocab reads the decoding vocabulary table and the boosted-phrase
// list, and reports phrases the builder would skip as out-of-vocabulary.
package vocab

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	apperrors "boostgraph/pkg/errors"

	"github.com/samber/lo"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const maxSuggestions = 3

// suggestionMaxDistance caps how far a vocabulary word may be from an OOV
// word to still count as a plausible misspelling.
const suggestionMaxDistance = 2

// Table holds the usable vocabulary: every symbol of words.txt except
// epsilon and the rho symbol, which are structural and never boostable.
type Table struct {
	words map[string]int
}

func (t *Table) Contains(word string) bool {
	_, ok := t.words[word]
	return ok
}

func (t *Table) Size() int {
	return len(t.words)
}

// Words returns the vocabulary sorted, for deterministic iteration.
func (t *Table) Words() []string {
	words := lo.Keys(t.words)
	sort.Strings(words)
	return words
}

// LoadTable parses a words.txt symbol table: one `<symbol> <id>` pair per
// line.
func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeVocabularyLoad, "词表读取失败 Vocabulary table load failed", err)
	}
	defer file.Close()

	words := make(map[string]int)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, apperrors.WrapWithDetail(apperrors.CodeVocabularyLoad, "词表格式错误 Malformed vocabulary table", fmt.Sprintf("%s:%d: %q", path, lineNo, line), nil)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, apperrors.WrapWithDetail(apperrors.CodeVocabularyLoad, "词表格式错误 Malformed vocabulary table", fmt.Sprintf("%s:%d: %q", path, lineNo, line), err)
		}
		words[fields[0]] = id
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeVocabularyLoad, "词表读取失败 Vocabulary table load failed", err)
	}

	// epsilon 恒为 0，#0 是 rho 符号，二者都不是词
	delete(words, "<eps>")
	delete(words, "#0")

	return &Table{words: words}, nil
}

// Phrase is one line of the boosted-phrase file, whitespace-tokenized.
type Phrase struct {
	Line  int
	Text  string
	Words []string
}

// LoadPhrases reads the boosted-phrase list, one phrase per line. Blank
// lines are dropped, matching the builder's own parsing.
func LoadPhrases(path string) ([]Phrase, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodePhraseListLoad, "短语列表读取失败 Phrase list load failed", err)
	}
	defer file.Close()

	var phrases []Phrase
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}
		phrases = append(phrases, Phrase{Line: lineNo, Text: text, Words: words})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodePhraseListLoad, "短语列表读取失败 Phrase list load failed", err)
	}

	return phrases, nil
}

// PhraseIssue marks one phrase the builder would skip, with the offending
// words and nearby vocabulary entries as correction candidates.
type PhraseIssue struct {
	Phrase      Phrase
	OOVWords    []string
	Suggestions map[string][]string
}

type Report struct {
	Phrases int
	Usable  int
	Issues  []PhraseIssue
}

func (r Report) Clean() bool {
	return len(r.Issues) == 0
}

// Check flags every phrase containing a word outside the table. The
// builder warns and skips such phrases at run time; Check surfaces them
// before anything is spawned.
func Check(table *Table, phrases []Phrase) Report {
	report := Report{Phrases: len(phrases)}

	for _, phrase := range phrases {
		oov := lo.Uniq(lo.Filter(phrase.Words, func(word string, _ int) bool {
			return !table.Contains(word)
		}))
		if len(oov) == 0 {
			report.Usable++
			continue
		}

		issue := PhraseIssue{
			Phrase:      phrase,
			OOVWords:    oov,
			Suggestions: make(map[string][]string, len(oov)),
		}
		for _, word := range oov {
			if suggestions := suggest(table, word); len(suggestions) > 0 {
				issue.Suggestions[word] = suggestions
			}
		}
		report.Issues = append(report.Issues, issue)
	}

	return report
}

type scoredWord struct {
	word     string
	distance int
}

func suggest(table *Table, oovWord string) []string {
	source := []rune(oovWord)

	var candidates []scoredWord
	for _, word := range table.Words() {
		distance := levenshtein.DistanceForStrings(source, []rune(word), levenshtein.DefaultOptions)
		if distance <= suggestionMaxDistance {
			candidates = append(candidates, scoredWord{word: word, distance: distance})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distance != candidates[j].distance {
			return candidates[i].distance < candidates[j].distance
		}
		return candidates[i].word < candidates[j].word
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return lo.Map(candidates, func(c scoredWord, _ int) string { return c.word })
}

// FormatReport renders the check result for the terminal.
func FormatReport(report Report) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Phrase check: %d phrases, %d usable", report.Phrases, report.Usable))

	for _, issue := range report.Issues {
		builder.WriteString("\n")
		builder.WriteString(fmt.Sprintf("- line %d: %q skipped, out-of-vocabulary: %s", issue.Phrase.Line, issue.Phrase.Text, strings.Join(issue.OOVWords, ", ")))
		for _, word := range issue.OOVWords {
			if suggestions, ok := issue.Suggestions[word]; ok {
				builder.WriteString("\n")
				builder.WriteString(fmt.Sprintf("  %s: did you mean %s?", word, strings.Join(suggestions, ", ")))
			}
		}
	}

	return builder.String()
}
