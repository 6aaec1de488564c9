package archetypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/archetype-match/pkg/traits"
)

func TestCatalogueShape(t *testing.T) {
	all := All()
	require.Len(t, all, 12)
	assert.Equal(t, 12, Len())

	seen := make(map[string]bool)
	for _, a := range all {
		assert.False(t, seen[a.Name], "duplicate archetype %s", a.Name)
		seen[a.Name] = true

		require.Len(t, a.CoreTraits, 3, "archetype %s", a.Name)
		coreSeen := make(map[traits.Dimension]bool)
		for _, d := range a.CoreTraits {
			assert.False(t, coreSeen[d], "archetype %s repeats core trait %s", a.Name, d)
			coreSeen[d] = true
			assert.Contains(t, traits.Dimensions(), d)
		}

		for _, d := range traits.Dimensions() {
			score := a.Reference.Get(d)
			assert.GreaterOrEqual(t, score, traits.MinScore, "archetype %s dimension %s", a.Name, d)
			assert.LessOrEqual(t, score, traits.MaxScore, "archetype %s dimension %s", a.Name, d)
		}
	}
}

func TestCanonicalOrder(t *testing.T) {
	names := Names()
	require.Len(t, names, 12)
	assert.Equal(t, "开心柯基", names[0])
	assert.Equal(t, "隐身猫", names[11])
}

func TestReferenceValuesPinned(t *testing.T) {
	corgi, found := Lookup("开心柯基")
	require.True(t, found)
	assert.Equal(t, 66, corgi.Reference.X)

	cat, found := Lookup("隐身猫")
	require.True(t, found)
	assert.Equal(t, 48, cat.Reference.X)
}

func TestLookupMissing(t *testing.T) {
	_, found := Lookup("不存在")
	assert.False(t, found)
}

func TestAllReturnsCopies(t *testing.T) {
	first := All()
	first[0].CoreTraits[0] = traits.Openness
	first[0].Name = "changed"

	again := All()
	assert.Equal(t, "开心柯基", again[0].Name)
	assert.Equal(t, traits.Extraversion, again[0].CoreTraits[0])
}

func TestIsCore(t *testing.T) {
	corgi, found := Lookup("开心柯基")
	require.True(t, found)
	assert.True(t, corgi.IsCore(traits.Extraversion))
	assert.False(t, corgi.IsCore(traits.Conscientiousness))
}
