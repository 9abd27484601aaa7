package inits

import (
	"fmt"
	"go.uber.org/zap"
)

// Logger 开发模式输出易读的日志，生产模式输出 JSON
func Logger(debugMode bool) (l *zap.Logger, err error) {
	if debugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return l.Named("x-dimension"), nil
}
