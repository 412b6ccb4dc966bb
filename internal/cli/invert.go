package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInvertCmd() *cobra.Command {
	var hpath, output string

	cmd := &cobra.Command{
		Use:     "invert",
		Short:   "Invert a stored homography",
		Example: `  planar invert -H board-h.toml -o board-inv.toml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			h, err := loadHomography(hpath)
			if err != nil {
				return err
			}
			inv, err := h.Inverse()
			if err != nil {
				return err
			}
			if output != "" {
				if err := saveHomography(output, inv); err != nil {
					return err
				}
				logger.Infof("Wrote inverse to %s", output)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMatrix(inv))
			return nil
		},
	}

	cmd.Flags().StringVarP(&hpath, "homography", "H", "", "homography file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the inverse to this TOML file")
	_ = cmd.MarkFlagRequired("homography")

	return cmd
}
