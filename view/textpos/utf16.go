package textpos

import "unicode/utf8"

// Input methods speak UTF-16 code units; the document is addressed in UTF-8
// bytes. Both translations walk code points and snap misaligned offsets to
// the preceding boundary rather than erroring, because IME ranges carry no
// sub-code-point semantics.

// ByteToUTF16 converts a byte offset in s to a UTF-16 code unit offset.
func ByteToUTF16(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	units := 0
	for i, r := range s {
		if i >= byteOffset {
			break
		}
		if i+utf8.RuneLen(r) > byteOffset {
			// Offset lands inside this code point: snap back.
			break
		}
		units += utf16Len(r)
	}
	return units
}

// UTF16ToByte converts a UTF-16 code unit offset to a byte offset in s.
func UTF16ToByte(s string, unitOffset int) int {
	if unitOffset <= 0 {
		return 0
	}
	units := 0
	for i, r := range s {
		if units >= unitOffset {
			return i
		}
		w := utf16Len(r)
		if units+w > unitOffset {
			// Offset lands inside a surrogate pair: snap back.
			return i
		}
		units += w
	}
	return len(s)
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
