package cachecmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsdk/go-dictsync/internal/app/command"
	"github.com/docsdk/go-dictsync/pkg/converter"
)

func New(ctx context.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "trigger the converter's JavaScript cache rebuild",
		Args:  cobra.MinimumNArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := command.ResolveRoots(cmd)
			if err != nil {
				return fmt.Errorf("resolve roots: %w", err)
			}

			return command.WrapError(
				converter.New(roots.SDKDir, roots.ConverterBin).Run(ctx, force))
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "rebuild even inside a development checkout")
	return cmd
}
