package marp

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"marpmcp/config"
)

// Runner executes the Marp CLI. It holds the effective configuration
// explicitly; there is no package-level state beyond the debug logger.
type Runner struct {
	cfg *config.Config

	mu      sync.Mutex
	binPath string
}

// RunResult captures one finished Marp invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

func (r *Runner) Config() *config.Config {
	return r.cfg
}

// binary resolves the Marp executable, caching only success so an install
// done after startup is picked up on the next call. Absence of the CLI is
// a per-call error, not a startup crash.
func (r *Runner) binary() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.binPath != "" {
		return r.binPath, nil
	}

	path, err := exec.LookPath(r.cfg.MarpPath)
	if err != nil {
		return "", Errorf(CodeToolNotFound,
			"Marp CLI not found at %q. Install it with: npm install -g @marp-team/marp-cli",
			r.cfg.MarpPath)
	}
	r.binPath = path

	if config.DebugLog != nil {
		config.DebugLog.Printf("[marp] Resolved Marp CLI: %s", path)
	}

	return path, nil
}

// Run executes marp with the given arguments under the configured timeout.
// All launch and exit failures come back as *ToolError; the process never
// inherits stdio since stdout belongs to the MCP transport.
func (r *Runner) Run(ctx context.Context, args []string) (*RunResult, error) {
	bin, err := r.binary()
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout())
	defer cancel()

	cmd := exec.CommandContext(runCtx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if config.DebugLog != nil {
		config.DebugLog.Printf("[marp] Running: %s %s", bin, strings.Join(args, " "))
	}

	runErr := cmd.Run()

	result := &RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case runErr == nil:
		return result, nil

	case runCtx.Err() == context.DeadlineExceeded:
		return nil, &ToolError{
			Code:    CodeTimeout,
			Message: "Marp CLI timed out after " + r.cfg.Timeout().String(),
			Stderr:  result.Stderr,
		}

	case ctx.Err() != nil:
		// Caller cancelled; CommandContext already killed the child.
		return nil, &ToolError{
			Code:    CodeTimeout,
			Message: "Marp CLI invocation cancelled",
			Stderr:  result.Stderr,
		}
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		msg := strings.TrimSpace(result.Stderr)
		if msg == "" {
			msg = "Marp CLI exited with an error"
		}
		return nil, &ToolError{
			Code:     CodeToolFailed,
			Message:  msg,
			Stderr:   result.Stderr,
			ExitCode: exitErr.ExitCode(),
		}
	}

	return nil, &ToolError{
		Code:    CodeToolFailed,
		Message: "failed to run Marp CLI: " + runErr.Error(),
		Stderr:  result.Stderr,
	}
}

// Version probes the installed Marp CLI version.
func (r *Runner) Version(ctx context.Context) (string, error) {
	result, err := r.Run(ctx, []string{"--version"})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}
