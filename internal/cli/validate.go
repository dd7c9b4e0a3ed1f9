package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sanixdarker/gql-jddf/pkg/jddf"
	"github.com/spf13/cobra"
)

// ErrInvalid reports that an instance failed validation. The individual
// errors are printed before this is returned.
var ErrInvalid = errors.New("instance is invalid")

var (
	validateSchemaPath string
	validateJSON       bool
)

var validateCmd = &cobra.Command{
	Use:   "validate [instance.json]",
	Short: "Validate JSON instances against a JDDF schema",
	Long: `Validate a JSON instance against a JDDF schema produced by convert.

The schema file is checked for well-formedness first, then the instance is
evaluated against it. With no instance argument, stdin is read.

Examples:
  gqljddf convert schema.json -o api.jddf.json
  gqljddf validate --schema api.jddf.json user.json
  curl -s https://api.example.com/user/1 | gqljddf validate --schema api.jddf.json
  gqljddf validate --schema api.jddf.json --json user.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schemaData, err := os.ReadFile(validateSchemaPath)
		if err != nil {
			return fmt.Errorf("read schema file: %w", err)
		}
		var schema jddf.Schema
		if err := json.Unmarshal(schemaData, &schema); err != nil {
			return fmt.Errorf("decode schema: %w", err)
		}
		if err := schema.Check(); err != nil {
			return fmt.Errorf("invalid schema: %w", err)
		}

		var instanceData []byte
		if len(args) > 0 {
			instanceData, err = os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read instance file: %w", err)
			}
		} else {
			instanceData, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}
		var instance any
		if err := json.Unmarshal(instanceData, &instance); err != nil {
			return fmt.Errorf("decode instance: %w", err)
		}

		validator := &jddf.Validator{}
		errs, err := validator.Validate(&schema, instance)
		if err != nil {
			return err
		}

		if validateJSON {
			if errs == nil {
				errs = []jddf.ValidationError{}
			}
			out := map[string]any{"valid": len(errs) == 0, "errors": errs}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			if len(errs) > 0 {
				return ErrInvalid
			}
			return nil
		}

		if len(errs) > 0 {
			fmt.Println("Validation errors:")
			for _, e := range errs {
				fmt.Printf("  - %s\n", e)
			}
			return fmt.Errorf("%w: %d errors", ErrInvalid, len(errs))
		}

		fmt.Println("Instance is valid")
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "JDDF schema file (required)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Emit the result as JSON")
	validateCmd.MarkFlagRequired("schema")

	rootCmd.AddCommand(validateCmd)
}
