package textpos

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestByteToUTF16_SurrogatePair(t *testing.T) {
	// "a🙂b": bytes a=0-1, emoji=1-5, b=5-6; units a=0-1, emoji=1-3, b=3-4.
	s := "a\U0001F642b"
	assert.Equal(t, 0, ByteToUTF16(s, 0))
	assert.Equal(t, 1, ByteToUTF16(s, 1))
	assert.Equal(t, 3, ByteToUTF16(s, 5))
	assert.Equal(t, 4, ByteToUTF16(s, 6))
}

func TestUTF16ToByte_SurrogatePair(t *testing.T) {
	s := "a\U0001F642b"
	assert.Equal(t, 0, UTF16ToByte(s, 0))
	assert.Equal(t, 1, UTF16ToByte(s, 1))
	assert.Equal(t, 5, UTF16ToByte(s, 3))
	assert.Equal(t, 6, UTF16ToByte(s, 4))
}

func TestByteToUTF16_MisalignedSnapsBack(t *testing.T) {
	s := "a\U0001F642b"
	// Offsets 2-4 land inside the emoji.
	assert.Equal(t, 1, ByteToUTF16(s, 2))
	assert.Equal(t, 1, ByteToUTF16(s, 3))
	assert.Equal(t, 1, ByteToUTF16(s, 4))
}

func TestUTF16ToByte_InsideSurrogateSnapsBack(t *testing.T) {
	s := "a\U0001F642b"
	// Unit 2 is the low surrogate of the emoji.
	assert.Equal(t, 1, UTF16ToByte(s, 2))
}

func TestUTF16ToByte_BeyondEnd(t *testing.T) {
	assert.Equal(t, 3, UTF16ToByte("abc", 99))
	assert.Equal(t, 0, UTF16ToByte("abc", -1))
}

func TestByteToUTF16_BeyondEnd(t *testing.T) {
	assert.Equal(t, 3, ByteToUTF16("abc", 99))
	assert.Equal(t, 0, ByteToUTF16("abc", -1))
}

func TestUTF16RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")

		// Every code point boundary survives the round trip.
		for i := 0; i <= len(s); i++ {
			if i < len(s) && !utf8.RuneStart(s[i]) {
				continue
			}
			units := ByteToUTF16(s, i)
			assert.Equal(rt, i, UTF16ToByte(s, units))
		}
	})
}
