package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newInspectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the parsed mapping tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.loadMapping(cmd)
			if err != nil {
				return err
			}
			dumper.Fdump(cmd.OutOrStdout(), root)
			return nil
		},
	}
	a.mappingFlags(cmd, false)
	return cmd
}
