package execx

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Command defines a command specification. Stderr is always merged
// into the same destination as stdout.
type Command struct {
	Args   []string
	Dir    string
	Output io.Writer
}

// Exec runs a command and waits for it. When no Output is given, the
// combined output is echoed to stdout at debug log level and discarded
// otherwise.
func Exec(ctx context.Context, opts Command) error {
	slog.Info("exec",
		slog.Any("cmd", opts.Args),
		slog.String("cwd", opts.Dir))

	cmd := exec.CommandContext(ctx, opts.Args[0], opts.Args[1:]...)
	cmd.Dir = opts.Dir

	out := opts.Output
	if out == nil {
		if slog.Default().Enabled(ctx, slog.LevelDebug) {
			out = os.Stdout
		} else {
			out = io.Discard
		}
	}
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Start(); err != nil {
		return NewExecutionError(err, "exec")
	}
	if err := cmd.Wait(); err != nil {
		return NewExecutionError(err, "wait")
	}
	return nil
}
