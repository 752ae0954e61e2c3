package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"boostgraph/internal/appdirs"

	"github.com/BurntSushi/toml"
)

type App struct {
	// 为空时使用当前目录
	RunWorkdir string `toml:"run_workdir"`
}

type Python struct {
	Interpreter string `toml:"interpreter"`
}

type Kaldi struct {
	// 为空时按 recipe 布局从工作目录向上四级推导
	Root string `toml:"root"`
}

type Boost struct {
	Script         string  `toml:"script"`
	WordDiscount   float64 `toml:"word_discount"`
	PhraseDiscount float64 `toml:"phrase_discount"`
	WordsFile      string  `toml:"words_file"`
	PhrasesFile    string  `toml:"phrases_file"`
	OutputFile     string  `toml:"output_file"`
}

type Config struct {
	App    App    `toml:"app"`
	Python Python `toml:"python"`
	Kaldi  Kaldi  `toml:"kaldi"`
	Boost  Boost  `toml:"boost"`
}

var Conf Config

var resolveConfigPath = func() (string, error) {
	paths, err := appdirs.Resolve()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

func ResolveConfigPath() (string, error) {
	return resolveConfigPath()
}

// defaultConfig reproduces the legacy wrapper script's constants exactly.
func defaultConfig() Config {
	return Config{
		Python: Python{
			Interpreter: "python3",
		},
		Boost: Boost{
			Script:         "./make_sigle_boosting_graph.py",
			WordDiscount:   -3.0,
			PhraseDiscount: 0,
			WordsFile:      "../data/lang_nosp/words.txt",
			PhrasesFile:    "boosted_phrases.txt",
			OutputFile:     "boosted_phrases.fst",
		},
	}
}

// LoadOrCreateConfig reads the config file into Conf, writing the default
// config first when the file does not exist. The returned bool reports
// whether a new file was created.
func LoadOrCreateConfig() (bool, error) {
	configPath, err := ResolveConfigPath()
	if err != nil {
		return false, fmt.Errorf("解析配置路径失败 resolve config path: %w", err)
	}

	if _, err = os.Stat(configPath); err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("读取配置文件失败 stat config file: %w", err)
		}
		Conf = defaultConfig()
		if err = SaveConfig(); err != nil {
			return false, err
		}
		return true, nil
	}

	if _, err = toml.DecodeFile(configPath, &Conf); err != nil {
		return false, fmt.Errorf("解析配置文件失败 decode config file %s: %w", configPath, err)
	}
	return false, nil
}

// SaveConfig writes whatever Conf currently contains, creating parent
// directories as needed.
func SaveConfig() error {
	configPath, err := ResolveConfigPath()
	if err != nil {
		return fmt.Errorf("解析配置路径失败 resolve config path: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("创建配置目录失败 create config dir: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("创建配置文件失败 create config file: %w", err)
	}
	defer file.Close()

	if err = toml.NewEncoder(file).Encode(Conf); err != nil {
		return fmt.Errorf("写入配置文件失败 encode config file: %w", err)
	}
	return nil
}

// CheckConfig validates Conf before a run. Empty required values fail here
// rather than surfacing later as a broken child invocation.
func CheckConfig() error {
	if strings.TrimSpace(Conf.Python.Interpreter) == "" {
		return fmt.Errorf("python.interpreter 不能为空 python.interpreter must not be empty")
	}
	if strings.TrimSpace(Conf.Boost.Script) == "" {
		return fmt.Errorf("boost.script 不能为空 boost.script must not be empty")
	}
	if strings.TrimSpace(Conf.Boost.WordsFile) == "" {
		return fmt.Errorf("boost.words_file 不能为空 boost.words_file must not be empty")
	}
	if strings.TrimSpace(Conf.Boost.PhrasesFile) == "" {
		return fmt.Errorf("boost.phrases_file 不能为空 boost.phrases_file must not be empty")
	}
	if strings.TrimSpace(Conf.Boost.OutputFile) == "" {
		return fmt.Errorf("boost.output_file 不能为空 boost.output_file must not be empty")
	}
	return nil
}
