package fork

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Process is a command run to completion with captured output.
type Process struct {
	cmd    *exec.Cmd
	stdout *buffer
	stderr *buffer
}

// NewProcess returns new unstarted process instance.
func NewProcess(ctx context.Context, command string, opts ...ProcessOpt) *Process {
	p := &Process{
		cmd: exec.CommandContext(ctx, command),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.stdout = new(buffer)
	p.cmd.Stdout = p.stdout
	p.stderr = new(buffer)
	p.cmd.Stderr = p.stderr

	return p
}

// Start attempts to create OS process and start command execution.
func (p *Process) Start(ctx context.Context) error {
	startChan := make(chan error, 1)
	go func() {
		startChan <- p.cmd.Start()
	}()

	select {
	case err := <-startChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until the process exits and returns its exit code.
// Non-zero exit is not an error; err is set only if waiting itself failed.
func (p *Process) Wait() (exitCode int, err error) {
	err = p.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, fmt.Errorf("error waiting for process: %w", err)
	}
	return p.cmd.ProcessState.ExitCode(), nil
}

// Run starts the process and waits for it to exit.
func (p *Process) Run(ctx context.Context) (exitCode int, err error) {
	if err := p.Start(ctx); err != nil {
		return -1, fmt.Errorf("cannot start process: %w", err)
	}
	return p.Wait()
}

// Stdout returns everything the process has written to stdout so far.
func (p *Process) Stdout() []byte {
	return p.stdout.Bytes()
}

// Stderr returns everything the process has written to stderr so far.
func (p *Process) Stderr() []byte {
	return p.stderr.Bytes()
}

// String returns a human-readable representation of process command.
func (p *Process) String() string {
	return p.cmd.String()
}
