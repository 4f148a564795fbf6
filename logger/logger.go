package logger

import (
	"fmt"
	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"mixtape/blueprint"
	"os"
	"time"
)

// NewLogger returns a new zap logger
func NewLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	defer func(logger *zap.Logger) {
		err := logger.Sync()
		if err != nil {
			panic(err)
		}
	}(logger)

	return logger
}

// NewZapSentryLogger returns a new zap logger with sentry integration. It is
// used instead of NewLogger when SENTRY_DSN is configured.
func NewZapSentryLogger(opts *blueprint.LoggerOptions) *zap.Logger {
	if opts == nil {
		opts = &blueprint.LoggerOptions{
			RequestID: "not_set",
		}
	}

	if opts.RequestID == "" {
		opts.RequestID = "not_set"
	}

	cfg := zapsentry.Configuration{
		Level:             zapcore.WarnLevel,
		BreadcrumbLevel:   zapcore.WarnLevel,
		EnableBreadcrumbs: true,
		DisableStacktrace: !opts.AddTrace,
		Tags: map[string]string{
			"component":  "system",
			"when":       time.Now().String(),
			"request_id": opts.RequestID,
		},
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	sentryClient, sErr := sentry.NewClient(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		TracesSampleRate: 1.0,
		AttachStacktrace: opts.AddTrace,
	})

	defer sentryClient.Flush(2)

	if sErr != nil {
		fmt.Println("error creating sentry client")
		panic(sErr)
	}

	core, zErr := zapsentry.NewCore(cfg, zapsentry.NewSentryClientFromDSN(os.Getenv("SENTRY_DSN")))
	if zErr != nil {
		fmt.Println("error creating zap core")
	}

	log = zapsentry.AttachCoreToLogger(core, log)
	sentryScope := sentry.NewScope()

	if opts.UserID != "" {
		sentryScope.AddBreadcrumb(&sentry.Breadcrumb{
			Category:  "User",
			Message:   "Spotify user tied to the request",
			Data:      map[string]interface{}{"user_id": opts.UserID},
			Timestamp: time.Time{},
		}, 1)
	}

	if opts.Error != nil {
		sentryScope.AddBreadcrumb(&sentry.Breadcrumb{
			Category:  "Error",
			Message:   "Error encountered while making the request",
			Data:      map[string]interface{}{"error": opts.Error},
			Timestamp: time.Time{},
		}, 1)
	}

	return log.With(zapsentry.NewScopeFromScope(sentryScope))
}
