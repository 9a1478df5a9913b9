package style

import (
	"fmt"

	"github.com/hnimtadd/gridview/view/color"
	"github.com/hnimtadd/gridview/view/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type UnderlineType int

const (
	UnderlineTypeNone UnderlineType = iota
	UnderlineTypeSingle
	UnderlineTypeDouble
	UnderlineTypeCurly
)

// Attributes are the non-color rendering flags of a cell. A run of cells can
// only be merged into one paint unit when the attributes are identical.
type Attributes struct {
	Bold          bool
	Italic        bool
	Faint         bool
	Blink         bool
	Inverse       bool
	Invisible     bool
	Strikethrough bool
	Overline      bool
	Underline     UnderlineType
}

func (a Attributes) Hash() uint64 {
	hashed, err := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash attributes: %v", err))
	return hashed
}

func (a Attributes) Equals(other Attributes) bool {
	return a.Hash() == other.Hash()
}

// Style attribute for a cell.
type Style struct {
	Foreground Color
	Background Color
	Attrs      Attributes
}

func (s Style) IsDefault() bool {
	return s == Style{}
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash style: %v", err))
	return hashed
}

func (s Style) Equals(other Style) bool {
	return s.Hash() == other.Hash()
}

// FG returns the effective foreground for this style, falling back to def
// when no color is set. Inverse is not applied here; the compositor swaps
// the resolved pair when the inverse flag is set.
func (s *Style) FG(palette *color.Palette, def color.RGB) color.RGB {
	return s.Foreground.Resolve(palette, def)
}

// BG returns the effective background for this style, falling back to def.
func (s *Style) BG(palette *color.Palette, def color.RGB) color.RGB {
	return s.Background.Resolve(palette, def)
}

// The color for a style attribute. A color can come from multiple sources so
// we track the source plus value so palette changes resolve correctly.
type Color struct {
	Type    ColorType
	Palette uint8
	RGB     color.RGB
}

func PaletteColor(index uint8) Color {
	return Color{Type: ColorTypePalette, Palette: index}
}

func RGBColor(rgb color.RGB) Color {
	return Color{Type: ColorTypeRGB, RGB: rgb}
}

// Resolve returns the concrete RGB value of the color given the palette,
// or fallback when the color is unset.
func (c Color) Resolve(palette *color.Palette, fallback color.RGB) color.RGB {
	switch c.Type {
	case ColorTypeNone:
		return fallback
	case ColorTypePalette:
		return palette[c.Palette]
	case ColorTypeRGB:
		return c.RGB
	default:
		return fallback
	}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeNone:
		return "Color.none"
	case ColorTypePalette:
		return fmt.Sprintf("Color.palette{{ %d }}", c.Palette)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}

type ColorType int

const (
	ColorTypeNone ColorType = iota
	ColorTypePalette
	ColorTypeRGB
)
