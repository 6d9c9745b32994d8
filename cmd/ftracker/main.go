package main

//go:generate go build -o=../../bin/ftracker

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/observability"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/tracker"
)

func main() {
	logger := newLogger(os.Stderr)

	if err := run(context.Background(), os.Stdout, logger, prometheus.DefaultRegisterer); err != nil {
		logger.WithError(err).Fatal("cannot process sensor packages")
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	return logger
}

func run(ctx context.Context, stdout io.Writer, logger logrus.FieldLogger, reg prometheus.Registerer) error {
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("cannot register metrics: %w", err)
	}

	t := tracker.New(
		tracker.WithLogger(logger),
		tracker.WithMetrics(metrics),
		tracker.WithWorkers(runtime.NumCPU()),
	)
	return t.Run(ctx, stdout, sensors.DefaultPackages())
}
