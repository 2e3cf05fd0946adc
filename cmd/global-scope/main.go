package main

import (
	"os"

	"go.uber.org/zap"

	"storageduration/pkg/examples"
)

func main() {
	if err := examples.GlobalScope(os.Stdout); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("global-scope failed", zap.Error(err))
	}
}
