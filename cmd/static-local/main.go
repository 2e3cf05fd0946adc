package main

import (
	"os"

	"go.uber.org/zap"

	"storageduration/pkg/examples"
)

func main() {
	if err := examples.StaticLocal(os.Stdout, 3); err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("static-local failed", zap.Error(err))
	}
}
