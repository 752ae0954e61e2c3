package dto

// BuildGraphReq 构建增强图请求
type BuildGraphReq struct {
	WorkDir        string  `json:"work_dir"` // 为空时使用配置中的工作目录
	WordDiscount   float64 `json:"word_discount"`
	PhraseDiscount float64 `json:"phrase_discount"`
	WordsFile      string  `json:"words_file"`
	PhrasesFile    string  `json:"phrases_file"`
	OutputFile     string  `json:"output_file"`
	DryRun         bool    `json:"dry_run"` // 只做解析与环境推导，不执行构建
}

// BuildGraphResData 构建结果
type BuildGraphResData struct {
	RunID       string   `json:"run_id"`
	Interpreter string   `json:"interpreter"` // 符号链接解析后的解释器真实路径
	PackageDir  string   `json:"package_dir"`
	LibraryDir  string   `json:"library_dir"`
	Command     []string `json:"command"`
	ExitCode    int      `json:"exit_code"`
	DurationMS  int64    `json:"duration_ms"`
	OutputFile  string   `json:"output_file"`
}
