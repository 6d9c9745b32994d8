package fork

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shell(t *testing.T) string {
	t.Helper()

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh is not available")
	}
	return sh
}

func TestProcessRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p := NewProcess(ctx, shell(t), WithArgs("-c", `echo "$GREETING"; echo oops >&2; exit 3`), WithEnv("GREETING=hello"))
	exitCode, err := p.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, exitCode)
	assert.Equal(t, "hello\n", string(p.Stdout()))
	assert.Equal(t, "oops\n", string(p.Stderr()))
	assert.Contains(t, p.String(), "exit 3")
}

func TestProcessDir(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dir := t.TempDir()
	p := NewProcess(ctx, shell(t), WithArgs("-c", "pwd -P"), WithDir(dir))
	exitCode, err := p.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.NotEmpty(t, p.Stdout())
}

func TestProcessMissingBinary(t *testing.T) {
	p := NewProcess(context.Background(), "/nonexistent/ftracker")
	exitCode, err := p.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, -1, exitCode)
}
