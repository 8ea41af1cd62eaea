package exchange

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/entraops/dlman/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Runner executes a PowerShell script and returns its stdout. It exists as
// an interface so tests can substitute the real shell with a fake.
type Runner interface {
	Run(ctx context.Context, script string) (string, error)
}

type shellRunner struct {
	shell string
}

// NewRunner creates a Runner that invokes the given PowerShell binary.
// An empty shell defaults to "powershell" on PATH.
func NewRunner(shell string) Runner {
	if shell == "" {
		shell = "powershell"
	}
	return &shellRunner{shell: shell}
}

// Run invokes the shell synchronously. The call blocks until the process
// exits; cancellation of ctx kills the process.
func (r *shellRunner) Run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, r.shell, "-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	ctxlog.From(ctx).Debug("running admin shell command")

	runErr := cmd.Run()
	errText := strings.TrimSpace(stderr.String())

	if runErr != nil || strings.Contains(strings.ToLower(errText), "error") {
		if errText == "" {
			errText = strings.TrimSpace(stdout.String())
		}
		return "", classifyShellError(errText, runErr)
	}

	return stdout.String(), nil
}

// classifyShellError maps raw shell failures onto the error taxonomy.
// Module and certificate problems are terminal configuration errors;
// everything else is an operation-specific remote failure carrying the raw
// message.
func classifyShellError(errText string, cause error) error {
	lower := strings.ToLower(errText)

	switch {
	case strings.Contains(lower, "not installed") || strings.Contains(lower, "not recognized"):
		return goerr.Wrap(model.ErrModuleNotInstalled, "admin shell module missing", goerr.V("output", errText))
	case strings.Contains(lower, "certificate") || strings.Contains(lower, "thumbprint"):
		return goerr.Wrap(model.ErrCertNotConfigured, "certificate auth failed", goerr.V("output", errText))
	case errText != "":
		return goerr.New("shell command failed", goerr.V("output", errText))
	default:
		return goerr.Wrap(cause, "shell command failed")
	}
}
