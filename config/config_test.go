package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func setConfigPathForTest(t *testing.T, configPath string) {
	t.Helper()

	old := resolveConfigPath
	resolveConfigPath = func() (string, error) { return configPath, nil }
	t.Cleanup(func() { resolveConfigPath = old })
}

func TestLoadOrCreateConfigMissingCreatesDefault(t *testing.T) {
	tmp := t.TempDir()

	configPath := filepath.Join(tmp, "config", "config.toml")
	setConfigPathForTest(t, configPath)

	// Ensure missing
	if _, err := os.Stat(configPath); err == nil {
		t.Fatalf("expected config file to be missing")
	}

	Conf = Config{}

	created, err := LoadOrCreateConfig()
	if err != nil {
		t.Fatalf("LoadOrCreateConfig() error: %v", err)
	}
	if !created {
		t.Fatalf("LoadOrCreateConfig() created=false, want true")
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("expected config file to be created: %v", err)
	}

	var got Config
	if _, err := toml.DecodeFile(configPath, &got); err != nil {
		t.Fatalf("decode created config: %v", err)
	}
	if got.Python.Interpreter != "python3" {
		t.Fatalf("default interpreter = %q, want %q", got.Python.Interpreter, "python3")
	}
	if got.Boost.WordDiscount != -3.0 {
		t.Fatalf("default word discount = %v, want %v", got.Boost.WordDiscount, -3.0)
	}
	if got.Boost.Script != "./make_sigle_boosting_graph.py" {
		t.Fatalf("default script = %q, want %q", got.Boost.Script, "./make_sigle_boosting_graph.py")
	}
	if got.Boost.WordsFile != "../data/lang_nosp/words.txt" {
		t.Fatalf("default words file = %q, want %q", got.Boost.WordsFile, "../data/lang_nosp/words.txt")
	}
	if got.Boost.OutputFile != "boosted_phrases.fst" {
		t.Fatalf("default output file = %q, want %q", got.Boost.OutputFile, "boosted_phrases.fst")
	}
}

func TestLoadOrCreateConfigLoadsExisting(t *testing.T) {
	tmp := t.TempDir()

	configPath := filepath.Join(tmp, "config.toml")
	setConfigPathForTest(t, configPath)

	Conf = defaultConfig()
	Conf.Python.Interpreter = "python3.11"
	Conf.Boost.WordDiscount = -1.5
	Conf.Kaldi.Root = "/opt/kaldi"
	if err := SaveConfig(); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	Conf = Config{}

	created, err := LoadOrCreateConfig()
	if err != nil {
		t.Fatalf("LoadOrCreateConfig() error: %v", err)
	}
	if created {
		t.Fatal("LoadOrCreateConfig() created=true, want false")
	}

	if Conf.Python.Interpreter != "python3.11" {
		t.Fatalf("loaded interpreter = %q, want %q", Conf.Python.Interpreter, "python3.11")
	}
	if Conf.Boost.WordDiscount != -1.5 {
		t.Fatalf("loaded word discount = %v, want %v", Conf.Boost.WordDiscount, -1.5)
	}
	if Conf.Kaldi.Root != "/opt/kaldi" {
		t.Fatalf("loaded kaldi root = %q, want %q", Conf.Kaldi.Root, "/opt/kaldi")
	}
}

func TestSaveConfigCreatesParentDirs(t *testing.T) {
	tmp := t.TempDir()

	configPath := filepath.Join(tmp, "deep", "nest", "config.toml")
	setConfigPathForTest(t, configPath)

	Conf = defaultConfig()
	Conf.Boost.PhrasesFile = "my_phrases.txt"

	if err := SaveConfig(); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	if _, err := os.Stat(filepath.Dir(configPath)); err != nil {
		t.Fatalf("expected parent directories to exist: %v", err)
	}

	var got Config
	if _, err := toml.DecodeFile(configPath, &got); err != nil {
		t.Fatalf("decode saved config: %v", err)
	}
	if got.Boost.PhrasesFile != "my_phrases.txt" {
		t.Fatalf("saved phrases file = %q, want %q", got.Boost.PhrasesFile, "my_phrases.txt")
	}
}

func TestCheckConfig(t *testing.T) {
	testCases := []struct {
		name       string
		mutate     func(*Config)
		wantErrSub string
	}{
		{
			name:   "default config is valid",
			mutate: func(*Config) {},
		},
		{
			name:       "empty interpreter",
			mutate:     func(c *Config) { c.Python.Interpreter = "  " },
			wantErrSub: "python.interpreter",
		},
		{
			name:       "empty script",
			mutate:     func(c *Config) { c.Boost.Script = "" },
			wantErrSub: "boost.script",
		},
		{
			name:       "empty words file",
			mutate:     func(c *Config) { c.Boost.WordsFile = "" },
			wantErrSub: "boost.words_file",
		},
		{
			name:       "empty phrases file",
			mutate:     func(c *Config) { c.Boost.PhrasesFile = "" },
			wantErrSub: "boost.phrases_file",
		},
		{
			name:       "empty output file",
			mutate:     func(c *Config) { c.Boost.OutputFile = "" },
			wantErrSub: "boost.output_file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			Conf = defaultConfig()
			tc.mutate(&Conf)

			err := CheckConfig()
			if tc.wantErrSub == "" {
				if err != nil {
					t.Fatalf("CheckConfig() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("CheckConfig() returned nil error")
			}
			if !strings.Contains(err.Error(), tc.wantErrSub) {
				t.Fatalf("CheckConfig() error = %q, want containing %q", err.Error(), tc.wantErrSub)
			}
		})
	}
}
