package gf2

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroOne(t *testing.T) {
	require.True(t, Zero[F163]().IsZero())
	require.False(t, One[F163]().IsZero())
	require.False(t, Zero[F163]().Equal(One[F163]()))
}

func TestFromUint64RoundTrip(t *testing.T) {
	a := FromUint64[F163](42)
	require.Equal(t, big.NewInt(42), a.ToBigInt())
}

func TestFromBigIntTruncatesHighBits(t *testing.T) {
	// D=113 has only 113 significant bits; FromBigInt never reads bits at
	// position >= D, so 2^200 is silently dropped and yields zero.
	a := FromUint64[F113](1)
	b := FromBigInt[F113](new(big.Int).Lsh(big.NewInt(1), 200))
	require.True(t, b.IsZero())
	require.False(t, a.IsZero())
}

func TestHexRoundTrip(t *testing.T) {
	a := FromUint64[F163](0xdeadbeef)
	s := a.ToHex()
	require.Len(t, s, 2*((163+7)/8))
	b, err := FromHex[F163](s)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestFromHexAcceptsWhitespace(t *testing.T) {
	want := FromUint64[F163](3)
	hex := want.ToHex()
	spaced := hex[:10] + " \t" + hex[10:] + "\n"
	got, err := FromHex[F163](spaced)
	require.NoError(t, err)
	require.True(t, want.Equal(got))
}

func TestFromHexRejectsWrongLength(t *testing.T) {
	_, err := FromHex[F163]("")
	require.Error(t, err)
	var target *MalformedInputError
	require.ErrorAs(t, err, &target)
	require.Equal(t, 42, target.Expected)
	require.Equal(t, 0, target.Got)
}

func TestFromHexRejectsNonHex(t *testing.T) {
	bad := make([]byte, 42)
	for i := range bad {
		bad[i] = 'z'
	}
	_, err := FromHex[F163](string(bad))
	require.Error(t, err)
}

func TestIntegerRoundTrip(t *testing.T) {
	n := big.NewInt(0)
	n.SetString("7fffffffffffffffffffffffffffffffffffffff", 16)
	a := FromBigInt[F163](n)
	require.Equal(t, n, a.ToBigInt())
}

// Scenario 1 from §8: 2 XOR 3 == 1 in GF(2^163).
func TestScenarioAddition(t *testing.T) {
	a := FromUint64[F163](2)
	b := FromUint64[F163](3)
	require.True(t, Add(a, b).Equal(FromUint64[F163](1)))
}

// Scenario 6 from §8.
func TestScenarioMalformedAndDivideByZero(t *testing.T) {
	_, err := FromHex[F163]("")
	require.Error(t, err)

	_, err = Inverse(Zero[F163]())
	require.Error(t, err)
	var target *DivideByZeroError
	require.ErrorAs(t, err, &target)
}
