package bintext

import (
	"math/big"
	"math/rand/v2"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatChunkEndian(t *testing.T) {
	chunk := []byte{0x01, 0x02, 0x03, 0x04}

	s, err := FormatChunk(chunk, Hex, Little, 32)
	require.NoError(t, err)
	assert.Equal(t, "04030201", s)

	s, err = FormatChunk(chunk, Hex, Big, 32)
	require.NoError(t, err)
	assert.Equal(t, "01020304", s)

	s, err = FormatChunk(chunk, Bin, Big, 32)
	require.NoError(t, err)
	assert.Equal(t, "00000001000000100000001100000100", s)
}

func TestFormatChunkUppercase(t *testing.T) {
	s, err := FormatChunk([]byte{0xab, 0xcd}, Hex, Big, 16)
	require.NoError(t, err)
	assert.Equal(t, "ABCD", s)
}

func TestFormatChunkPadded(t *testing.T) {
	s, err := FormatChunk([]byte{0x0a, 0xff}, Hex, Little, 16)
	require.NoError(t, err)
	assert.Equal(t, "FF0A", s)
}

func TestFormatChunkShort(t *testing.T) {
	tests := []struct {
		name   string
		chunk  []byte
		format Format
		endian Endian
		depth  int
		want   string
	}{
		{"little hex", []byte{0x0a}, Hex, Little, 16, "000A"},
		{"big hex", []byte{0x01, 0x02}, Hex, Big, 32, "00000102"},
		{"little hex two", []byte{0x01, 0x02}, Hex, Little, 32, "00000201"},
		{"bin", []byte{0x05}, Bin, Little, 16, "0000000000000101"},
		{"empty", nil, Hex, Little, 32, "00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FormatChunk(tt.chunk, tt.format, tt.endian, tt.depth)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestFormatChunkWidthAndRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	binRe := regexp.MustCompile(`^[01]+$`)
	hexRe := regexp.MustCompile(`^[0-9A-F]+$`)
	for depth := 8; depth <= 128; depth += 8 {
		for range 16 {
			chunk := make([]byte, depth/8)
			for i := range chunk {
				chunk[i] = byte(rng.UintN(256))
			}
			for _, endian := range endians {
				// big-endian bytes of the expected value
				want := slices.Clone(chunk)
				if endian == Little {
					slices.Reverse(want)
				}
				expected := new(big.Int).SetBytes(want)

				for _, format := range formats {
					s, err := FormatChunk(chunk, format, endian, depth)
					require.NoError(t, err)
					base := 2
					re := binRe
					if format == Hex {
						base = 16
						re = hexRe
					}
					require.Len(t, s, format.TokenLen(depth))
					require.Regexp(t, re, s)
					got, ok := new(big.Int).SetString(s, base)
					require.True(t, ok)
					require.Zero(t, expected.Cmp(got), "depth %d %s %s: %s", depth, EndianNames[endian], FormatNames[format], s)
				}
			}
		}
	}
}

func TestFormatChunkErrors(t *testing.T) {
	for _, depth := range []int{7, 0, -8, 12} {
		_, err := FormatChunk([]byte{1}, Hex, Little, depth)
		assert.ErrorIs(t, err, ErrDepth, "depth %d", depth)
	}
	_, err := FormatChunk([]byte{1, 2, 3}, Hex, Little, 16)
	assert.ErrorIs(t, err, ErrChunk)
	_, err = FormatChunk([]byte{1}, Format(9), Little, 8)
	assert.ErrorIs(t, err, ErrFormat)
	_, err = FormatChunk([]byte{1}, Hex, Endian(0), 8)
	assert.ErrorIs(t, err, ErrEndian)
}

func TestParseOptions(t *testing.T) {
	f, err := ParseFormat("hex")
	require.NoError(t, err)
	assert.Equal(t, Hex, f)
	_, err = ParseFormat("oct")
	assert.ErrorIs(t, err, ErrFormat)

	e, err := ParseEndian("big")
	require.NoError(t, err)
	assert.Equal(t, Big, e)
	_, err = ParseEndian("middle")
	assert.ErrorIs(t, err, ErrEndian)

	fill, err := ParseFill("1")
	require.NoError(t, err)
	assert.Equal(t, FillFF, fill)
	_, err = ParseFill("2")
	assert.ErrorIs(t, err, ErrFill)

	l, err := ParseLineEnding("rn")
	require.NoError(t, err)
	assert.Equal(t, "\r\n", l.Terminator())
	_, err = ParseLineEnding("nr")
	assert.ErrorIs(t, err, ErrLineEnding)

	assert.Equal(t, "bin, hex", FormatString)
	assert.Equal(t, "n, r, rn", LineEndingString)
}
