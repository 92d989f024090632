package cli

import (
	"github.com/spf13/cobra"

	"github.com/reoring/esmap/rehydrate"
)

func newRehydrateCommand(a *app) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "rehydrate",
		Short: "Decode flat field names in a query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, views, err := a.project(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, queryPath)
			if err != nil {
				return err
			}
			q, err := rehydrate.Decode(data)
			if err != nil {
				return err
			}
			r := rehydrate.New(views.Fields.All())
			a.log.Component("rehydrate").LogUnknownFields(r.UnknownFields(q))
			return writeJSON(cmd.OutOrStdout(), r.Query(q))
		},
	}
	a.mappingFlags(cmd, true)
	cmd.Flags().StringVarP(&queryPath, "query", "q", "-", "Path to the query JSON, - for stdin")
	return cmd
}
