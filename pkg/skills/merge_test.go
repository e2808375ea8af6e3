package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkSkill(name, description string) *Skill {
	return &Skill{Metadata: Metadata{Name: name, Description: description}}
}

func TestMerge(t *testing.T) {
	base := map[string]*Skill{
		"a": mkSkill("a", "base a"),
		"b": mkSkill("b", "base b"),
	}
	override := map[string]*Skill{
		"b": mkSkill("b", "override b"),
		"c": mkSkill("c", "override c"),
	}

	merged := Merge(base, override)

	require.Len(t, merged, 3)
	assert.Equal(t, "base a", merged["a"].Description())
	assert.Equal(t, "override b", merged["b"].Description())
	assert.Equal(t, "override c", merged["c"].Description())

	// Skills are shared, not copied.
	assert.Same(t, override["b"], merged["b"])
}

func TestMergeLastOverrideWins(t *testing.T) {
	base := map[string]*Skill{"a": mkSkill("a", "base")}
	first := map[string]*Skill{"c": mkSkill("c", "first")}
	second := map[string]*Skill{"c": mkSkill("c", "second")}

	merged := Merge(base, first, second)

	require.Len(t, merged, 2)
	assert.Equal(t, "second", merged["c"].Description())
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	baseB := mkSkill("b", "base b")
	base := map[string]*Skill{"b": baseB}
	override := map[string]*Skill{"b": mkSkill("b", "override b")}

	_ = Merge(base, override)

	assert.Same(t, baseB, base["b"])
	assert.Equal(t, "base b", base["b"].Description())
}

func TestMergeNoOverrides(t *testing.T) {
	base := map[string]*Skill{"a": mkSkill("a", "base")}

	merged := Merge(base)
	assert.Equal(t, base, merged)

	merged["x"] = mkSkill("x", "added")
	assert.NotContains(t, base, "x")
}

func TestMergeEmptyBase(t *testing.T) {
	merged := Merge(nil, map[string]*Skill{"a": mkSkill("a", "only")})
	require.Len(t, merged, 1)
	assert.Contains(t, merged, "a")
}
