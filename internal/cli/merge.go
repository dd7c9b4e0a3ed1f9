package cli

import (
	"fmt"
	"os"

	"github.com/sanixdarker/gql-jddf/internal/converter"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
	"github.com/spf13/cobra"
)

var (
	mergeOutput string
	mergeRoot   string
	mergePretty bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge <files...>",
	Short: "Merge multiple schema documents into one JDDF schema",
	Long: `Merge multiple GraphQL schema documents into a single JDDF schema.

Each input is converted on its own (formats are detected per file, so
introspection JSON and SDL mix freely) and the definitions are combined.
When two documents define the same type name, the later file wins. The
root ref comes from the first document unless --root picks another name.

Examples:
  gqljddf merge users.json posts.json -o combined.jddf.json
  gqljddf merge base.graphql extension.graphql --root Query`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		manager := converter.NewManager()

		var schemas []*jddf.Schema
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			format := manager.DetectFormat(path, content)
			schema, err := manager.Convert(format, content, &converter.Options{SourcePath: path})
			if err != nil {
				return fmt.Errorf("convert %s: %w", path, err)
			}

			schemas = append(schemas, schema)
		}

		merged, err := converter.Merge(mergeRoot, schemas...)
		if err != nil {
			return fmt.Errorf("merge failed: %w", err)
		}

		if mergeOutput != "" {
			f, err := os.Create(mergeOutput)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			if err := writeSchema(f, merged, mergePretty); err != nil {
				return err
			}
			fmt.Printf("Merged JDDF schema written to %s\n", mergeOutput)
			return nil
		}

		return writeSchema(os.Stdout, merged, mergePretty)
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Output file path")
	mergeCmd.Flags().StringVar(&mergeRoot, "root", "", "Definition name for the root ref (default: the first document's root)")
	mergeCmd.Flags().BoolVar(&mergePretty, "pretty", false, "Indent the output")

	rootCmd.AddCommand(mergeCmd)
}
