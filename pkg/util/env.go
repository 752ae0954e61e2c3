package util

import (
	"strings"

	"github.com/samber/lo"
)

// SetEnvVar 返回替换掉 key 后的环境副本，原切片不被修改
func SetEnvVar(env []string, key, value string) []string {
	prefix := key + "="
	kept := lo.Filter(env, func(entry string, _ int) bool {
		return !strings.HasPrefix(entry, prefix)
	})
	return append(kept, prefix+value)
}

// EnvValue looks key up in an environment slice. With duplicate entries the
// last one wins, matching what the OS hands a child process.
func EnvValue(env []string, key string) (string, bool) {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			return strings.TrimPrefix(env[i], prefix), true
		}
	}
	return "", false
}
