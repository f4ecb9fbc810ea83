package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	sowdoc "github.com/bashhh89/sow-api-service"
	"github.com/bashhh89/sow-api-service/internal/config"
)

// Version is set at build time via ldflags.
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	log := newLogger(flags.verbose)
	defer func() { _ = log.Sync() }()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, a ...interface{}) {
		log.Sugar().Debugf(format, a...)
	}))

	cfg, err := config.Load(flags.config)
	if err != nil {
		return err
	}
	if flags.listen != "" {
		cfg.Server.Listen = flags.listen
	}
	if flags.workers > 0 {
		cfg.Server.Workers = flags.workers
	}

	opts, err := serviceOptions(cfg, log)
	if err != nil {
		return err
	}

	pool := sowdoc.NewServicePool(sowdoc.ResolvePoolSize(cfg.Server.Workers), opts...)
	defer func() { _ = pool.Close() }()

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           newServer(pool, log).routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			zap.String("addr", cfg.Server.Listen),
			zap.String("version", Version),
			zap.Int("workers", pool.Size()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// serviceOptions builds the Service options from config: logger,
// upstream history client, uploader, and the optional DOCX template.
func serviceOptions(cfg *config.Config, log *zap.Logger) ([]sowdoc.Option, error) {
	fetchTimeout, err := cfg.FetchTimeout()
	if err != nil {
		return nil, err
	}
	uploadTimeout, err := cfg.UploadTimeout()
	if err != nil {
		return nil, err
	}

	opts := []sowdoc.Option{
		sowdoc.WithLogger(log),
		sowdoc.WithHistoryClient(sowdoc.NewAnythingLLMClient(cfg.Upstream.URL, cfg.Upstream.APIKey, fetchTimeout)),
		sowdoc.WithUploader(sowdoc.NewGofileUploader(uploadTimeout)),
	}

	// A missing template file is not an error: documents then start
	// from a blank base instead of the template's styles.
	if cfg.Document.TemplatePath != "" {
		data, err := os.ReadFile(cfg.Document.TemplatePath) // #nosec G304 -- path is operator-provided
		switch {
		case err == nil:
			opts = append(opts, sowdoc.WithTemplate(data))
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading template: %w", err)
		}
	}
	return opts, nil
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			return log
		}
	}
	log, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
