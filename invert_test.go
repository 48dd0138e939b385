package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 4 from §8: inv(1) == 1, and inv(2)*2 == 1.
func TestScenarioInversion(t *testing.T) {
	one, err := Inverse(One[F163]())
	require.NoError(t, err)
	require.True(t, one.Equal(One[F163]()))

	two := FromUint64[F163](2)
	invTwo, err := Inverse(two)
	require.NoError(t, err)
	require.True(t, Mul(invTwo, two).Equal(One[F163]()))
}

func TestInverseRejectsZero(t *testing.T) {
	_, err := Inverse(Zero[F163]())
	require.Error(t, err)
	var target *DivideByZeroError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "invert", target.Op)
}

func TestDivRejectsZeroDivisor(t *testing.T) {
	_, err := Div(One[F163](), Zero[F163]())
	require.Error(t, err)
	var target *DivideByZeroError
	require.ErrorAs(t, err, &target)
	require.Equal(t, "divide", target.Op)
}

func TestDivByOneIsIdentity(t *testing.T) {
	a := FromUint64[F163](0xabc123)
	q, err := Div(a, One[F163]())
	require.NoError(t, err)
	require.True(t, q.Equal(a))
}
