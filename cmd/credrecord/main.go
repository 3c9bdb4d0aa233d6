package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gestaozabele/credrecord/internal/auth"
	"github.com/gestaozabele/credrecord/internal/config"
	"github.com/gestaozabele/credrecord/internal/paths"
	"github.com/gestaozabele/credrecord/internal/prompt"
	"github.com/gestaozabele/credrecord/internal/service"
	"github.com/gestaozabele/credrecord/internal/util"
)

const (
	ExitSuccess = 0
	ExitFatal   = 1
)

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}

// run devolve o código de saída; toda falha fatal vira uma única linha em stderr.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := execute(ctx, stdin, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFatal
	}
	return ExitSuccess
}

func execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(cfg.LogLevel).
		With().Str("run_id", util.NewRunID()).Logger()
	log.Logger = logger

	resolver, err := paths.New(cfg.BaseDir)
	if err != nil {
		return err
	}
	logger.Debug().Str("base_dir", resolver.BaseDir()).Str("executable", resolver.Executable()).Msg("diretório base resolvido")

	hasher, err := auth.NewHasher(cfg.Hash)
	if err != nil {
		return fmt.Errorf("hasher: %w", err)
	}

	orchestrator := prompt.New(prompt.NewConsole(stdin, stdout), stdout, stderr, resolver,
		prompt.WithRetryInterval(cfg.RetryInterval),
		prompt.WithLogger(logger),
	)
	input, err := orchestrator.Collect(ctx)
	if err != nil {
		return err
	}

	return service.NewCredentials(hasher, stdout, logger).Process(input)
}
