package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sanixdarker/gql-jddf/internal/endpoint"
	"github.com/sanixdarker/gql-jddf/internal/typegraph"
	"github.com/spf13/cobra"
)

var (
	introspectHeaders []string
	introspectTimeout time.Duration
	introspectRaw     bool
	introspectPretty  bool
)

var introspectCmd = &cobra.Command{
	Use:   "introspect <endpoint>",
	Short: "Introspect a running GraphQL endpoint and convert its schema",
	Long: `Introspect a running GraphQL endpoint and convert its schema to JDDF.

The standard introspection query is sent to the endpoint and the response
is translated like a local introspection document. With --raw the
introspection JSON is printed as received, without conversion.

Examples:
  gqljddf introspect https://api.example.com/graphql
  gqljddf introspect https://api.example.com/graphql -H "Authorization: Bearer $TOKEN"
  gqljddf introspect http://localhost:4000/graphql --raw > introspection.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headers, err := parseHeaders(introspectHeaders)
		if err != nil {
			return err
		}

		client := endpoint.New(args[0], headers, introspectTimeout)
		ctx := cmd.Context()

		if introspectRaw {
			raw, err := client.IntrospectRaw(ctx)
			if err != nil {
				return err
			}
			doc := map[string]any{
				"data": map[string]any{"__schema": raw},
			}
			enc := json.NewEncoder(os.Stdout)
			if introspectPretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(doc)
		}

		schema, err := client.Introspect(ctx)
		if err != nil {
			return err
		}

		types, err := typegraph.Build(schema.Types)
		if err != nil {
			return err
		}
		out, err := typegraph.Translate(types, schema.QueryType.Name)
		if err != nil {
			return err
		}

		return writeSchema(os.Stdout, out, introspectPretty)
	},
}

// parseHeaders turns repeated "Name: value" flags into an http.Header.
func parseHeaders(raw []string) (http.Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := http.Header{}
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid header %q, want \"Name: value\"", h)
		}
		headers.Add(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return headers, nil
}

func init() {
	introspectCmd.Flags().StringArrayVarP(&introspectHeaders, "header", "H", nil, "Extra request header, repeatable (\"Name: value\")")
	introspectCmd.Flags().DurationVar(&introspectTimeout, "timeout", endpoint.DefaultTimeout, "Request timeout")
	introspectCmd.Flags().BoolVar(&introspectRaw, "raw", false, "Print the raw introspection JSON without converting")
	introspectCmd.Flags().BoolVar(&introspectPretty, "pretty", false, "Indent the output")

	rootCmd.AddCommand(introspectCmd)
}
