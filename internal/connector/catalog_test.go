package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crono-connector/internal/models"
	"crono-connector/pkg/catalog"
)

// The exported catalog and the dispatch registry must describe the same
// surface, or -describe output drifts from what the connector accepts.
func TestCatalogMatchesRegistry(t *testing.T) {
	cat := catalog.Default()

	require.Len(t, cat.Resources, len(models.AllResources()))

	for _, resource := range models.AllResources() {
		descriptor := cat.Resource(string(resource))
		require.NotNil(t, descriptor, "resource %s missing from catalog", resource)

		assert.Equal(t, resource.Collection(), descriptor.Collection, "resource %s", resource)

		registered := SupportedOperations(resource)
		names := make([]string, len(registered))
		for i, op := range registered {
			names[i] = string(op)
		}
		assert.Equal(t, names, descriptor.Operations, "resource %s", resource)
	}
}
