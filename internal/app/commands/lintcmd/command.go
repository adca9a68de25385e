package lintcmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docsdk/go-dictsync/internal/app/command"
	"github.com/docsdk/go-dictsync/pkg/validator"
)

func New(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "validate dictionary descriptors without modifying anything",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := command.ResolveRoots(cmd)
			if err != nil {
				return fmt.Errorf("resolve roots: %w", err)
			}

			return command.WrapError(execute(ctx, roots))
		},
	}
}

func execute(_ context.Context, roots command.Roots) error {
	issues, err := validator.LintDir(roots.DictionariesDir)
	if err != nil {
		return fmt.Errorf("lint descriptors: %w", err)
	}

	if len(issues) == 0 {
		slog.Info("No problems found", slog.String("path", roots.DictionariesDir))
		return nil
	}
	for _, issue := range issues {
		slog.Error("Descriptor problem",
			slog.String("dictionary", issue.Dictionary),
			slog.String("detail", issue.Detail))
	}
	return fmt.Errorf("found %d descriptor problem(s)", len(issues))
}
