package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/reoring/esmap/fieldfamily"
	"github.com/reoring/esmap/jsonschema"
	"github.com/reoring/esmap/projector"
	"github.com/reoring/esmap/typesys"
)

func newProjectCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the typed views and field enumerations of a mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "sdl" && format != "jsonschema" {
				return fmt.Errorf("unknown format %q (want sdl or jsonschema)", format)
			}
			reg, _, err := a.project(cmd)
			if err != nil {
				return err
			}
			if format == "jsonschema" {
				return writeJSONSchema(cmd.OutOrStdout(), reg.Types())
			}
			_, err = io.WriteString(cmd.OutOrStdout(), reg.SDL())
			return err
		},
	}
	a.mappingFlags(cmd, true)
	cmd.Flags().StringVar(&format, "format", "sdl", "Output format: sdl or jsonschema")
	return cmd
}

// project builds the views of the mapping plus every non-empty field family
// enumeration into a fresh registry.
func (a *app) project(cmd *cobra.Command) (*typesys.Registry, *projector.Views, error) {
	root, err := a.loadMapping(cmd)
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	reg := typesys.NewRegistry()
	opts := a.cfg.ConvertOptions()
	views, err := projector.Build(reg, root, a.cfg.TypeName, opts)
	if err != nil {
		return nil, nil, err
	}
	fam := fieldfamily.New(reg, views.Fields, opts)
	for _, f := range fieldfamily.Families() {
		if _, err := fam.FieldNames(f); err != nil {
			return nil, nil, err
		}
	}
	a.log.LogProjected(a.cfg.TypeName, reg.Len(), time.Since(start))
	return reg, views, nil
}

type namedSchema struct {
	Name   string             `json:"name"`
	Schema *jsonschema.Schema `json:"schema"`
}

func writeJSONSchema(w io.Writer, types []typesys.Type) error {
	out := make([]namedSchema, 0, len(types))
	for _, t := range types {
		if s, ok := t.(*typesys.Scalar); ok && s.Builtin() {
			continue
		}
		out = append(out, namedSchema{Name: t.Name(), Schema: jsonschema.Export(t)})
	}
	return writeJSON(w, out)
}
