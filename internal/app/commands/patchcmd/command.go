package patchcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docsdk/go-dictsync/internal/app/command"
	"github.com/docsdk/go-dictsync/pkg/catalog"
	"github.com/docsdk/go-dictsync/pkg/patcher"
)

type PatchOptions struct {
	Backup bool
}

func New(ctx context.Context) *cobra.Command {
	patchOpts := PatchOptions{}
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "splice the catalog into SDK bundles without triggering the converter cache",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := command.ResolveRoots(cmd)
			if err != nil {
				return fmt.Errorf("resolve roots: %w", err)
			}

			return command.WrapError(execute(ctx, roots, patchOpts))
		},
	}

	cmd.Flags().BoolVarP(&patchOpts.Backup, "backup", "b", false, "keep a .bak copy of every patched bundle")
	return cmd
}

func execute(_ context.Context, roots command.Roots, opts PatchOptions) error {
	cat, err := catalog.Build(roots.DictionariesDir)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	data, err := cat.Marshal()
	if err != nil {
		return err
	}

	var patchOpts []patcher.Option
	if opts.Backup {
		patchOpts = append(patchOpts, patcher.WithBackup())
	}
	results, err := patcher.New(roots.SDKDir, data, patchOpts...).Run()
	if err != nil {
		return fmt.Errorf("patch bundles: %w", err)
	}

	for _, res := range results {
		slog.Info("Bundle candidate",
			slog.String("path", res.Path),
			slog.String("outcome", res.Outcome.String()))
	}
	return nil
}
