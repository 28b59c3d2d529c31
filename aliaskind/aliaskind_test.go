package aliaskind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strongtypes/aliasgen/aliaskind"
)

type meters float64

func (meters) AliasTag() aliaskind.Tag {
	return aliaskind.Tag{Name: "meters", Underlying: "float64"}
}

type seconds float64

func (seconds) AliasTag() aliaskind.Tag {
	return aliaskind.Tag{Name: "seconds", Underlying: "float64"}
}

type wrapped struct{ v *int }

func (wrapped) AliasTag() aliaskind.Tag {
	return aliaskind.Tag{Name: "wrapped", Underlying: "*int"}
}

func TestIs(t *testing.T) {
	assert.True(t, aliaskind.Is[meters]())
	assert.True(t, aliaskind.Is[wrapped]())
	assert.False(t, aliaskind.Is[float64]())
	assert.False(t, aliaskind.Is[struct{ v int }]())

	// A pointer to an alias carries the value receiver's method set.
	assert.True(t, aliaskind.Is[*meters]())
}

func TestSameAndDifferent(t *testing.T) {
	assert.True(t, aliaskind.Same[meters, meters]())
	assert.False(t, aliaskind.Same[meters, seconds]())
	assert.True(t, aliaskind.Different[meters, seconds]())
	assert.False(t, aliaskind.Different[seconds, seconds]())

	// Identity is the name tag alone; sharing a representation type does not
	// make two aliases the same.
	assert.Equal(t, aliaskind.TagOf[meters]().Underlying, aliaskind.TagOf[seconds]().Underlying)
	assert.True(t, aliaskind.Different[meters, seconds]())
}

func TestTagOf(t *testing.T) {
	tag := aliaskind.TagOf[meters]()
	assert.Equal(t, "meters", tag.Name)
	assert.Equal(t, "float64", tag.Underlying)
}

func TestPointerInstantiation(t *testing.T) {
	// A pointer type's zero value is nil; the predicates must still resolve
	// the tag rather than call AliasTag through the nil pointer.
	tag := aliaskind.TagOf[*meters]()
	assert.Equal(t, "meters", tag.Name)
	assert.Equal(t, "float64", tag.Underlying)

	assert.True(t, aliaskind.Same[*meters, meters]())
	assert.True(t, aliaskind.Same[meters, *meters]())
	assert.True(t, aliaskind.Same[*meters, *meters]())
	assert.True(t, aliaskind.Different[*meters, seconds]())
	assert.False(t, aliaskind.Different[*meters, meters]())

	assert.Equal(t, "wrapped", aliaskind.TagOf[*wrapped]().Name)
}

func TestOf(t *testing.T) {
	tag, ok := aliaskind.Of(meters(5))
	require.True(t, ok)
	assert.Equal(t, "meters", tag.Name)

	m := meters(5)
	tag, ok = aliaskind.Of(&m)
	require.True(t, ok)
	assert.Equal(t, "meters", tag.Name)

	_, ok = aliaskind.Of(42)
	assert.False(t, ok)
}
