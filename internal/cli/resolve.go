package cli

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"github.com/reoring/esmap/typesys"
)

func newResolveCommand(a *app) *cobra.Command {
	var docsPath, selector string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve documents through the output type",
		Long: "Resolve reads a JSON document, an array of documents or a search response " +
			"and prints every selected document as the output type exposes it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, views, err := a.project(cmd)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, docsPath)
			if err != nil {
				return err
			}
			docs, err := selectDocuments(data, selector)
			if err != nil {
				return err
			}
			out := make([]any, 0, len(docs))
			for i, d := range docs {
				m, ok := d.(map[string]any)
				if !ok {
					a.log.Warn().Int("index", i).Msg("skipping selected value that is not an object")
					continue
				}
				out = append(out, typesys.ResolveDocument(views.Output, m))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	a.mappingFlags(cmd, true)
	cmd.Flags().StringVarP(&docsPath, "docs", "d", "-", "Path to the documents JSON, - for stdin")
	cmd.Flags().StringVar(&selector, "select", "", "JSONPath selecting documents, e.g. $.hits.hits[*]._source")
	return cmd
}

// selectDocuments decodes data and applies selector. Without a selector a
// top-level array yields its elements and anything else yields itself.
func selectDocuments(data []byte, selector string) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode documents: %w", err)
	}
	if selector == "" {
		if arr, ok := root.([]any); ok {
			return arr, nil
		}
		return []any{root}, nil
	}
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(root), nil
}
