// Command formkit serves declarative form validation over HTTP.
//
// Configuration comes from the environment (or a .env file):
//
//	FORMKIT_SCHEMA         path to a YAML or JSON schema file (required)
//	FORMKIT_SERVICE_NAME   service name attached to log records
//	FORMKIT_LOG_LEVEL      debug, info, warn or error
//	FORMKIT_LOG_FORMAT     json or text
//	FORMKIT_HTTP_ADDR      listen address, ":8080" by default
//	FORMKIT_NORMALIZE_NFC  normalize submitted values to NFC before validation
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

const envPrefix = "FORMKIT_"

type Config struct {
	Service      string `env:"SERVICE_NAME" envDefault:"formkit"`
	Schema       string `env:"SCHEMA,required,notEmpty"`
	NormalizeNFC bool   `env:"NORMALIZE_NFC" envDefault:"false"`
	Log          logger.Config
	HTTP         httpserver.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return err
	}

	log, err := logger.NewFromConfig(cfg.Log,
		logger.WithAttr(slog.String("service", cfg.Service)),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	reg, err := loadRegistry(ctx, cfg.Schema)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "schema loaded", slog.String("path", cfg.Schema), slog.Any("forms", reg.Names()))

	var formOpts []formhttp.Option
	if cfg.NormalizeNFC {
		formOpts = append(formOpts, formhttp.WithNormalization(norm.NFC))
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(reg, log, formOpts...))
}

func loadRegistry(ctx context.Context, path string) (*schema.Registry, error) {
	doc, err := schema.LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc.Compile()
}

func newRouter(reg *schema.Registry, log *slog.Logger, opts ...formhttp.Option) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthCheckHandler(log, func(*http.Request) error {
		if len(reg.Names()) == 0 {
			return errors.New("no forms loaded")
		}
		return nil
	}))
	r.Mount("/", formhttp.Handler(reg, append([]formhttp.Option{formhttp.WithLogger(log)}, opts...)...))
	return r
}
