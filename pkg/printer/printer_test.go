package printer

import (
	"testing"

	"github.com/kelchtermans/turtle/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestPrintsAtoms(t *testing.T) {
	assert.Equal(t, "foo", Sprint(value.Symbol("foo")))
	assert.Equal(t, "42.000000", Sprint(value.Number(42)))
	assert.Equal(t, `"hi"`, Sprint(value.String("hi")))
	assert.Equal(t, "()", Sprint(value.Nil))
}

func TestPrintsProperList(t *testing.T) {
	v := value.List(value.Symbol("a"), value.Symbol("b"), value.Symbol("c"))
	assert.Equal(t, "(a b c)", Sprint(v))
}

func TestPrintsImproperList(t *testing.T) {
	v := value.NewCons(value.Symbol("a"), value.Symbol("b"))
	assert.Equal(t, "(a . b)", Sprint(v))
}

func TestPrintsNestedList(t *testing.T) {
	v := value.List(value.Symbol("a"), value.List(value.Symbol("b"), value.Symbol("c")))
	assert.Equal(t, "(a (b c))", Sprint(v))
}

func TestPrintsPrimitiveIndex(t *testing.T) {
	assert.Equal(t, "<primitive>3", Sprint(value.Primitive(3)))
}
