package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/priyakanth/payengine/internal/config"
	"github.com/priyakanth/payengine/internal/processor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: payengine <ledger.csv>")
		os.Exit(2)
	}

	file, err := os.Open(os.Args[1])
	if err != nil {
		logger.Fatal("opening input", zap.Error(err))
	}
	defer file.Close()

	p := processor.New(logger, cfg.OutputPrecision)
	if err := p.Run(bufio.NewReader(file)); err != nil {
		logger.Fatal("processing failed", zap.Error(err))
	}
	if err := p.Export(os.Stdout); err != nil {
		logger.Fatal("writing summaries", zap.Error(err))
	}
}

// newLogger builds the diagnostics logger. Everything goes to stderr so
// stdout stays reserved for the summary CSV.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}
