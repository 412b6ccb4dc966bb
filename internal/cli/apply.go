package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var hpath string

	cmd := &cobra.Command{
		Use:     "apply x,y [x,y ...]",
		Short:   "Project points through a stored homography",
		Example: `  planar apply -H board-h.toml 0.5,0.5 120,48`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHomography(hpath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range args {
				p, err := parsePoint(a)
				if err != nil {
					return err
				}
				q, err := h.Apply(p)
				if err != nil {
					return fmt.Errorf("%s: %w", a, err)
				}
				fmt.Fprintf(out, "%s %s %s\n", formatPoint(p), StyleDim.Render(iconArrow), formatPoint(q))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&hpath, "homography", "H", "", "homography file (TOML)")
	_ = cmd.MarkFlagRequired("homography")

	return cmd
}
