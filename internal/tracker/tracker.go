// Package tracker processes batches of sensor packages into report lines.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/observability"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/sensors"
	"github.com/Yandex-Practicum/go-fitness-tracker/internal/training"
)

// Tracker computes workout reports for sensor packages.
type Tracker struct {
	log     logrus.FieldLogger
	workers int
	metrics *observability.Metrics
}

// New returns a Tracker. Without options it is sequential, silent and
// records no metrics.
func New(opts ...Option) *Tracker {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	t := &Tracker{
		log:     discard,
		workers: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BatchError identifies the package that stopped a batch.
type BatchError struct {
	Index   int
	Package sensors.Package
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("package #%d: %s", e.Index, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Report reads a single package and returns its summary.
func (t *Tracker) Report(p sensors.Package) (training.InfoMessage, error) {
	tr, err := sensors.Read(p)
	if err != nil {
		return training.InfoMessage{}, err
	}
	return training.Info(tr), nil
}

type result struct {
	msg training.InfoMessage
	err error
}

// Run computes reports for pkgs and writes one line per package to w in
// input order. It stops at the first package that cannot be read: lines
// of all preceding packages are written and a *BatchError is returned.
func (t *Tracker) Run(ctx context.Context, w io.Writer, pkgs []sensors.Package) error {
	batchID, err := uuid.NewV4()
	if err != nil {
		return fmt.Errorf("cannot generate batch id: %w", err)
	}
	log := t.log.WithFields(logrus.Fields{
		"batch_id": batchID.String(),
		"packages": len(pkgs),
	})
	log.Info("processing sensor packages")

	results := make([]result, len(pkgs))

	// a failing package must not cancel packages preceding it
	g := new(errgroup.Group)
	g.SetLimit(t.workers)
	for i := range pkgs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			results[i].msg, results[i].err = t.Report(pkgs[i])
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if res.err != nil {
			if !canceled(res.err) {
				t.metrics.RecordFailed(res.err)
			}
			return &BatchError{Index: i, Package: pkgs[i], Err: res.err}
		}

		if _, err := fmt.Fprintln(w, res.msg.Message()); err != nil {
			return fmt.Errorf("cannot write report of package #%d: %w", i, err)
		}
		t.metrics.RecordProcessed(pkgs[i].Type)
		log.WithFields(logrus.Fields{
			"index":        i,
			"workout_type": pkgs[i].Type,
		}).Debug("package reported")
	}

	log.Info("sensor packages processed")
	return nil
}

// canceled reports whether err stopped the batch without rejecting a package.
func canceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
