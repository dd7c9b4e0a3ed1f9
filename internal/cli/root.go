// Package cli provides the command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sanixdarker/gql-jddf/internal/converter"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"
	// Commit is set at build time.
	Commit = "none"
)

var rootCmd = &cobra.Command{
	Use:   "gqljddf",
	Short: "Translate GraphQL schemas into JDDF schemas",
	Long: `gqljddf translates GraphQL schemas into JDDF (JSON Data Definition
Format) schemas.

Run bare, it is a filter: it reads one GraphQL introspection JSON document
on stdin and writes the equivalent JDDF schema on stdout.

  gqljddf < introspection.json > schema.jddf.json

Subcommands cover SDL input, live endpoints, instance validation, merging
and an HTTP API:
  - convert:    translate a file or stdin, introspection JSON or SDL
  - introspect: query a running GraphQL endpoint and translate the result
  - validate:   check JSON instances against a produced JDDF schema
  - merge:      combine several schema documents into one
  - serve:      expose the translation over HTTP`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(os.Stdin, os.Stdout)
	},
}

// runFilter reads one introspection document and writes its JDDF schema.
func runFilter(in io.Reader, out io.Writer) error {
	content, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	schema, err := converter.NewManager().Convert(converter.FormatIntrospection, content, nil)
	if err != nil {
		return err
	}

	return writeSchema(out, schema, false)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gqljddf version %s (commit: %s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// writeSchema encodes a JDDF schema as JSON followed by a newline.
func writeSchema(w io.Writer, schema *jddf.Schema, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(schema); err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
