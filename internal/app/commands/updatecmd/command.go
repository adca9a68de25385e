package updatecmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docsdk/go-dictsync/internal/app/command"
	"github.com/docsdk/go-dictsync/pkg/catalog"
	"github.com/docsdk/go-dictsync/pkg/converter"
	"github.com/docsdk/go-dictsync/pkg/filesys"
	"github.com/docsdk/go-dictsync/pkg/patcher"
)

type UpdateOptions struct {
	Backup    bool
	SkipCache bool
}

func New(ctx context.Context) *cobra.Command {
	updateOpts := UpdateOptions{}
	cmd := &cobra.Command{
		Use:   "update",
		Short: "rebuild the dictionary catalog, patch SDK bundles and refresh the converter cache",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := command.ResolveRoots(cmd)
			if err != nil {
				return fmt.Errorf("resolve roots: %w", err)
			}

			return command.WrapError(execute(ctx, roots, updateOpts))
		},
	}

	cmd.Flags().BoolVarP(&updateOpts.Backup, "backup", "b", false, "keep a .bak copy of every patched bundle")
	cmd.Flags().BoolVar(&updateOpts.SkipCache, "skip-cache", false, "do not trigger the converter cache rebuild")
	return cmd
}

func execute(ctx context.Context, roots command.Roots, opts UpdateOptions) error {
	slog.Info("Building dictionary catalog", slog.String("path", roots.DictionariesDir))
	cat, err := catalog.Build(roots.DictionariesDir)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	data, err := cat.Marshal()
	if err != nil {
		return err
	}
	if hash, err := filesys.DirectoryChecksum(roots.DictionariesDir); err == nil {
		slog.Debug("Dictionaries tree checksum", slog.String("hash", hash))
	}

	var patchOpts []patcher.Option
	if opts.Backup {
		patchOpts = append(patchOpts, patcher.WithBackup())
	}
	results, err := patcher.New(roots.SDKDir, data, patchOpts...).Run()
	if err != nil {
		return fmt.Errorf("patch bundles: %w", err)
	}

	counts := patcher.Summarize(results)
	slog.Info("Bundle patching completed",
		slog.Int("languages", len(cat)),
		slog.Int("patched", counts[patcher.OutcomePatched]),
		slog.Int("unchanged", counts[patcher.OutcomeUnchanged]),
		slog.Int("skipped", counts[patcher.OutcomeMissing]+counts[patcher.OutcomeNoMarker]))

	if opts.SkipCache {
		return nil
	}
	return converter.New(roots.SDKDir, roots.ConverterBin).Run(ctx, false)
}
