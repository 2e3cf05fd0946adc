package main

import (
	"os"

	"go.uber.org/zap"

	"storageduration/pkg/examples"
)

func main() {
	if err := examples.NormalVsStatic(os.Stdout, 3); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("normal-vs-static failed", zap.Error(err))
	}
}
