package converter

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/docsdk/go-dictsync/internal/pkg/execx"
	"github.com/docsdk/go-dictsync/pkg/filesys"
)

// CreateCacheFlag asks the converter to rebuild its JavaScript cache.
const CreateCacheFlag = "-create-js-cache"

const gitMetaName = ".git"

// Runner invokes the converter process. Swappable in tests.
type Runner func(ctx context.Context, args []string) error

// Trigger fires the converter's cache rebuild after bundle patching.
// It is fire-and-forget: the converter's exit status never fails the
// run, since patching is already complete by the time it starts.
type Trigger struct {
	sdkDir string
	bin    string
	run    Runner
}

type Option func(*Trigger)

func WithRunner(run Runner) Option {
	return func(t *Trigger) {
		t.run = run
	}
}

func New(sdkDir, bin string, options ...Option) *Trigger {
	t := &Trigger{
		sdkDir: sdkDir,
		bin:    bin,
		run: func(ctx context.Context, args []string) error {
			return execx.Exec(ctx, execx.Command{Args: args})
		},
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// DevelopmentCheckout reports whether the SDK root still carries
// version-control metadata, the signal that this tree is a working
// checkout rather than a distributed build.
func (t *Trigger) DevelopmentCheckout() bool {
	return filesys.Exists(filepath.Join(t.sdkDir, gitMetaName))
}

// Run triggers the cache rebuild unless the SDK root is a development
// checkout. Pass force to rebuild regardless.
func (t *Trigger) Run(ctx context.Context, force bool) error {
	if !force && t.DevelopmentCheckout() {
		slog.Info("Development checkout detected, skipping converter cache rebuild",
			slog.String("path", t.sdkDir))
		return nil
	}

	bin := binPathFor(runtime.GOOS, t.bin)
	if err := t.run(ctx, []string{bin, CreateCacheFlag}); err != nil {
		slog.Warn("Converter cache rebuild failed",
			slog.String("bin", bin),
			slog.String("error", err.Error()))
	}
	return nil
}

func binPathFor(goos, bin string) string {
	if goos == "windows" && filepath.Ext(bin) != ".exe" {
		return bin + ".exe"
	}
	return bin
}
