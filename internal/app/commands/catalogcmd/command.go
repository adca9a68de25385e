package catalogcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/docsdk/go-dictsync/internal/app/command"
	"github.com/docsdk/go-dictsync/pkg/catalog"
)

func New(ctx context.Context) *cobra.Command {
	format := OutputFormatJSON
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "build the language catalog and print it without touching any bundle",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := command.ResolveRoots(cmd)
			if err != nil {
				return fmt.Errorf("resolve roots: %w", err)
			}

			return command.WrapError(execute(ctx, cmd, roots, format))
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "output format, one of: json, table")
	return cmd
}

func execute(_ context.Context, cmd *cobra.Command, roots command.Roots, format OutputFormat) error {
	slog.Debug("Building dictionary catalog", slog.String("path", roots.DictionariesDir))
	cat, err := catalog.Build(roots.DictionariesDir)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	switch format {
	case OutputFormatTable:
		tbl := table.New("Code", "Dictionary", "Hyphen").WithWriter(cmd.OutOrStdout())
		for _, code := range cat.Codes() {
			entry := cat[catalog.LangCode(code)]
			tbl.AddRow(code, entry.Name, entry.Hyphen)
		}
		tbl.Print()
	default:
		data, err := cat.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}
