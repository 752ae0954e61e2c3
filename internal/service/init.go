package service

import (
	"boostgraph/config"
	"boostgraph/internal/pyenv"
	"boostgraph/internal/types"
	"boostgraph/log"
	"boostgraph/pkg/boostfst"

	"go.uber.org/zap"
)

type Service struct {
	Resolver     pyenv.Resolver
	GraphBuilder types.GraphBuilder
}

func NewService() *Service {
	log.GetLogger().Info("当前配置的解释器： ", zap.String("interpreter", config.Conf.Python.Interpreter))

	return &Service{
		Resolver:     pyenv.NewResolver(),
		GraphBuilder: boostfst.NewBuilder(config.Conf.Boost.Script),
	}
}
