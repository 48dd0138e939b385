package limb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFlipBit(t *testing.T) {
	v := New(2)
	require.EqualValues(t, 0, v.GetBit(5))
	v.FlipBit(5)
	require.EqualValues(t, 1, v.GetBit(5))
	v.FlipBit(5)
	require.EqualValues(t, 0, v.GetBit(5))

	v.SetBit(70)
	require.EqualValues(t, 1, v.GetBit(70))
	require.Equal(t, 71, v.BitLen())
}

func TestBitLenZero(t *testing.T) {
	require.Equal(t, 0, New(3).BitLen())
}

func TestLeftShiftWithinWord(t *testing.T) {
	v := LimbVec{0b1011, 0}
	v.LeftShift(2)
	require.Equal(t, LimbVec{0b101100, 0}, v)
}

func TestLeftShiftAcrossWord(t *testing.T) {
	v := LimbVec{1, 0}
	v.LeftShift(64)
	require.Equal(t, LimbVec{0, 1}, v)

	v = LimbVec{1, 0}
	v.LeftShift(65)
	require.Equal(t, LimbVec{0, 2}, v)
}

func TestLeftShiftDiscardsOverflow(t *testing.T) {
	v := LimbVec{0, 1 << 63}
	v.LeftShift(2)
	require.Equal(t, LimbVec{0, 0}, v)
}

func TestXor(t *testing.T) {
	a := LimbVec{0b1100, 0b1}
	b := LimbVec{0b1010, 0b1}
	a.Xor(b)
	require.Equal(t, LimbVec{0b0110, 0}, a)
}

func TestShiftedXorWordAligned(t *testing.T) {
	v := New(3)
	w := LimbVec{1, 2}
	ShiftedXor(v, w, 64)
	require.Equal(t, LimbVec{0, 1, 2}, v)
}

func TestShiftedXorUnaligned(t *testing.T) {
	v := New(2)
	w := LimbVec{0b101}
	ShiftedXor(v, w, 2)
	require.Equal(t, LimbVec{0b10100, 0}, v)
}

func TestShiftedXorCarriesIntoNewTopLimb(t *testing.T) {
	v := New(2)
	w := LimbVec{1 << 63}
	ShiftedXor(v, w, 1)
	require.Equal(t, LimbVec{0, 1}, v)
}

func TestGetBits(t *testing.T) {
	v := LimbVec{0xF0, 0}
	require.EqualValues(t, 0xF, v.GetBits(4, 4))

	v = LimbVec{1 << 63, 1}
	require.EqualValues(t, 0b11, v.GetBits(63, 2))
}

func TestChangeLength(t *testing.T) {
	v := LimbVec{1, 2, 3}
	require.Equal(t, LimbVec{1, 2}, v.ChangeLength(2))
	require.Equal(t, LimbVec{1, 2, 3, 0}, v.ChangeLength(4))
}

func TestRandomMasksTopBits(t *testing.T) {
	// a reader of all-ones bytes lets us check the mask deterministically.
	r := bytes.NewReader(bytesOf(0xFF, 16))
	v, err := Random(r, 2, 70)
	require.NoError(t, err)
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), v[0])
	require.Equal(t, uint64(0x3F), v[1])
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
