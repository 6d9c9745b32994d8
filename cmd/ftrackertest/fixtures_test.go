package ftrackertest

import (
	"os"
	"testing"
	"time"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-fitness-tracker/internal/fork"
)

const runProcessTimeout = 20 * time.Second

type Env struct {
	fixenv.EnvT
	assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       *fixenv.NewEnv(t),
		Assertions: *assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.T().Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(&e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func TrackerBinaryPath(e *Env) string {
	return ExistPath(e, flagTargetBinaryPath)
}

// TrackerRun is a finished run of the tracker binary.
type TrackerRun struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunTracker runs the tracker binary once per test and caches the result.
func RunTracker(e *Env, args ...string) TrackerRun {
	command := TrackerBinaryPath(e)
	cacheKey := append([]string{"run", command}, args...)
	return fixenv.Cache(e, cacheKey, nil, func() (TrackerRun, error) {
		ctx, cancel := context.WithTimeout(e.Ctx, runProcessTimeout)
		defer cancel()

		p := fork.NewProcess(ctx, command, fork.WithArgs(args...))
		e.Logf("Запускаю %q", p)
		exitCode, err := p.Run(ctx)
		if err != nil {
			return TrackerRun{}, err
		}

		run := TrackerRun{
			ExitCode: exitCode,
			Stdout:   string(p.Stdout()),
			Stderr:   string(p.Stderr()),
		}
		if exitCode != 0 {
			e.Logf("Ненулевой код возврата: %v\n\nSTDERR:\n%s", exitCode, run.Stderr)
		}
		return run, nil
	})
}
