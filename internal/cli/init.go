package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/pkg/layout"
	"github.com/matzehuels/growplan/pkg/plan"
)

// defaultPlanPath is where init writes when no path is given.
const defaultPlanPath = "plan.toml"

// newInitCmd creates the init command, which writes a starter plan file with
// the defaults for the chosen growing system.
func newInitCmd() *cobra.Command {
	var (
		name  string
		mode  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPlanPath
			if len(args) > 0 {
				path = args[0]
			}

			m, err := layout.ParseMode(mode)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}

			p := layout.DefaultParams()
			p.Mode = m
			p.BedWidth, p.AisleWidth = layout.StripeDefaults(m)

			if err := plan.Write(path, name, p); err != nil {
				return err
			}

			printSuccess("Wrote %s", path)
			printNextStep("Compute the layout", appName+" layout "+path)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "plan name stored in the file")
	cmd.Flags().StringVar(&mode, "mode", string(layout.ModeBeds), "growing system: beds, benches")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
