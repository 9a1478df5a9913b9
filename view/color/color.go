package color

// RGB is a struct that represents an RGB color.
type RGB struct {
	R, G, B uint8
}

// Palette is the 256 color palette.
type Palette [256]RGB

type Name uint8

const (
	NameBlack Name = iota
	NameRed
	NameGreen
	NameYellow
	NameBlue
	NameMagenta
	NameCyan
	NameWhite
	NameBrightBlack
	NameBrightRed
	NameBrightGreen
	NameBrightYellow
	NameBrightBlue
	NameBrightMagenta
	NameBrightCyan
	NameBrightWhite
)

func (n Name) DefaultRGB() RGB {
	switch n {
	case NameBlack:
		return RGB{0x1D, 0x1F, 0x21}
	case NameRed:
		return RGB{0xCC, 0x66, 0x66}
	case NameGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case NameYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case NameBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case NameMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case NameCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case NameWhite:
		return RGB{0xC5, 0xC8, 0xC6}
	case NameBrightBlack:
		return RGB{0x7C, 0x7C, 0x7C}
	case NameBrightRed:
		return RGB{0xFF, 0x8F, 0x8F}
	case NameBrightGreen:
		return RGB{0xB5, 0xBD, 0x68}
	case NameBrightYellow:
		return RGB{0xF0, 0xC6, 0x74}
	case NameBrightBlue:
		return RGB{0x81, 0xA2, 0xBE}
	case NameBrightMagenta:
		return RGB{0xB2, 0x94, 0xC7}
	case NameBrightCyan:
		return RGB{0x8C, 0xC3, 0xE9}
	case NameBrightWhite:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{0, 0, 0}
	}
}

// DefaultPalette is the xterm-style 256 color palette: 16 named values,
// a 6x6x6 color cube, and a gray ramp.
var DefaultPalette = func() Palette {
	var result Palette

	i := 0
	for ; i < 16; i++ {
		result[i] = Name(i).DefaultRGB()
	}

	// Cube
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				rgb := RGB{}
				if r > 0 {
					rgb.R = r*40 + 55
				}
				if g > 0 {
					rgb.G = g*40 + 55
				}
				if b > 0 {
					rgb.B = b*40 + 55
				}
				result[i] = rgb
				i++
			}
		}
	}

	// Gray ramp
	for ; i < 256; i++ {
		value := uint8(i-232)*10 + 8
		result[i] = RGB{value, value, value}
	}

	return result
}()
