package converter

import (
	"errors"

	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// Merge folds the definitions of several converted schemas into one,
// argument order deciding conflicts: a definition name appearing again
// overwrites the earlier one, the same way a single document resolves
// repeated declarations. The root ref comes from the first schema unless
// rootOverride is set.
func Merge(rootOverride string, schemas ...*jddf.Schema) (*jddf.Schema, error) {
	if len(schemas) == 0 {
		return nil, errors.New("nothing to merge")
	}
	defs := make(map[string]*jddf.Schema)
	for _, s := range schemas {
		for name, def := range s.Definitions {
			defs[name] = def
		}
	}
	root := rootOverride
	if root == "" {
		if schemas[0].Ref == nil {
			return nil, errors.New("first schema has no root ref and no override was given")
		}
		root = *schemas[0].Ref
	}
	return &jddf.Schema{Definitions: defs, Ref: &root}, nil
}
