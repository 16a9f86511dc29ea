package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fathomline/gridview/pkg/types"
)

func TestBuiltinSchemasAreValid(t *testing.T) {
	for _, name := range Resources() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Resource)
			assert.NoError(t, s.Validate())
		})
	}
}

func TestBuiltinReferencesPointToKnownResources(t *testing.T) {
	for _, name := range Resources() {
		s, err := Lookup(name)
		require.NoError(t, err)
		for _, ref := range s.References() {
			target, err := Lookup(ref.TargetResource)
			require.NoError(t, err, "%s references unknown resource %s", name, ref.TargetResource)

			// The display field must exist on the target schema.
			_, ok := target.Field(ref.DisplayField)
			assert.True(t, ok, "%s.%s display field missing on %s", name, ref.SourceField, ref.TargetResource)
		}
	}
}

func TestLookupUnknownResource(t *testing.T) {
	_, err := Lookup("widgets")
	assert.ErrorIs(t, err, types.ErrUnknownResource)
}

func TestEverySchemaHasSearchableField(t *testing.T) {
	for _, name := range Resources() {
		s, err := Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, s.SearchableFields(), "%s has no searchable fields", name)
	}
}
