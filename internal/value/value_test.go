package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualByKind(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"symbols equal", Symbol("x"), Symbol("x"), true},
		{"symbols differ", Symbol("x"), Symbol("y"), false},
		{"string vs symbol never equal", String("x"), Symbol("x"), false},
		{"numbers equal", Number(1.5), Number(1.5), true},
		{"nan is never equal to itself", Number(math.NaN()), Number(math.NaN()), false},
		{"nil equals nil", Nil, Nil, true},
		{"primitive index compared", Primitive(2), Primitive(2), true},
		{"primitive index differs", Primitive(2), Primitive(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestConsCarCdr(t *testing.T) {
	c := NewCons(Symbol("a"), Symbol("b"))
	assert.Equal(t, Symbol("a"), Car(c))
	assert.Equal(t, Symbol("b"), Cdr(c))
}

func TestCarCdrOnNonConsIsError(t *testing.T) {
	assert.True(t, IsError(Car(Nil)))
	assert.True(t, IsError(Cdr(Number(3))))
}

func TestEqualRecursesIntoCons(t *testing.T) {
	a := List(Symbol("a"), Symbol("b"), Symbol("c"))
	b := List(Symbol("a"), Symbol("b"), Symbol("c"))
	assert.True(t, Equal(a, b))

	c := List(Symbol("a"), Symbol("b"), Symbol("d"))
	assert.False(t, Equal(a, c))
}

func TestSliceWalksProperAndImproperLists(t *testing.T) {
	proper := List(Number(1), Number(2), Number(3))
	elems, tail := Slice(proper)
	require.Len(t, elems, 3)
	assert.Equal(t, Nil, tail)

	improper := NewCons(Number(1), NewCons(Number(2), Symbol("rest")))
	elems, tail = Slice(improper)
	require.Len(t, elems, 2)
	assert.Equal(t, Symbol("rest"), tail)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Count(Nil))
	assert.Equal(t, 3, Count(List(Number(1), Number(2), Number(3))))
	assert.Equal(t, 1, Count(NewCons(Number(1), Symbol("rest"))))
}

func TestAssocRefFindsFirstMatchAndShadows(t *testing.T) {
	var env Value = Nil
	env = AssocCons(Symbol("x"), Number(1), env)
	env = AssocCons(Symbol("x"), Number(2), env)

	assert.Equal(t, Number(2), AssocRef(Symbol("x"), env))
}

func TestAssocRefMissIsError(t *testing.T) {
	assert.True(t, IsError(AssocRef(Symbol("missing"), Nil)))
}

func TestAssocListZipsParamsToArgs(t *testing.T) {
	keys := List(Symbol("a"), Symbol("b"))
	vals := List(Number(1), Number(2))
	env := AssocList(keys, vals, Nil)

	assert.Equal(t, Number(1), AssocRef(Symbol("a"), env))
	assert.Equal(t, Number(2), AssocRef(Symbol("b"), env))
}

func TestAssocListBindsRestParameter(t *testing.T) {
	vals := List(Number(1), Number(2), Number(3))
	env := AssocList(Symbol("args"), vals, Nil)

	bound := AssocRef(Symbol("args"), env)
	assert.True(t, Equal(vals, bound))
}

func TestGlobalExtendReplacesSlot(t *testing.T) {
	g := NewGlobal(Nil)
	g.Extend(Symbol("x"), Number(42))
	assert.Equal(t, Number(42), AssocRef(Symbol("x"), g.Env()))
}
