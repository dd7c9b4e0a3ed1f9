package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sanixdarker/gql-jddf/internal/converter"
	"github.com/spf13/cobra"
)

var (
	convertFormat string
	convertOutput string
	convertRoot   string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a GraphQL schema document to a JDDF schema",
	Long: `Convert a GraphQL schema document to a JDDF schema.

Supported formats:
  - introspection: introspection query result JSON ({"data":{"__schema":...}})
  - sdl:           GraphQL schema definition language (.graphql)

The format is detected from the file extension and content when -f is not
given. With no file argument the document is read from stdin.

Examples:
  gqljddf convert schema.json
  gqljddf convert schema.graphql -f sdl
  gqljddf convert schema.json -o schema.jddf.json --pretty
  gqljddf convert schema.json --root Mutation`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var content []byte
		var sourcePath string
		var err error

		if len(args) > 0 {
			sourcePath = args[0]
			content, err = os.ReadFile(sourcePath)
			if err != nil {
				return fmt.Errorf("read input file: %w", err)
			}
		} else {
			content, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		manager := converter.NewManager()
		format := convertFormat
		if format == "" {
			format = manager.DetectFormat(sourcePath, content)
		}

		schema, err := manager.Convert(format, content, &converter.Options{
			SourcePath: sourcePath,
			RootName:   convertRoot,
		})
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		if convertOutput != "" {
			f, err := os.Create(convertOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			if err := writeSchema(f, schema, convertPretty); err != nil {
				return err
			}
			fmt.Printf("JDDF schema written to %s\n", convertOutput)
			return nil
		}

		return writeSchema(os.Stdout, schema, convertPretty)
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", "Input format (introspection, sdl)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path")
	convertCmd.Flags().StringVar(&convertRoot, "root", "", "Definition name for the root ref (default: the query root)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", false, "Indent the output")

	rootCmd.AddCommand(convertCmd)
}
