package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByQuery_MatchesNameAndMaterial(t *testing.T) {
	p := NewProvider(nil)

	results := FilterByQuery(p, context.Background(), "velvet")
	assert.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.ID)
	}

	// insensible à la casse
	upper := FilterByQuery(p, context.Background(), "VELVET")
	assert.Equal(t, results, upper)
}

func TestFilterByQuery_NoMatch(t *testing.T) {
	p := NewProvider(nil)

	assert.Empty(t, FilterByQuery(p, context.Background(), "zanzibar"))
	assert.Empty(t, FilterByQuery(p, context.Background(), "   "))
}
