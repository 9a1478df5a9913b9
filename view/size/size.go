package size

// CellCountInt is the integer type used for counting grid cells. A terminal
// or editor viewport never addresses more cells in one dimension than fits
// in 16 bits.
type CellCountInt uint16

// Pixels is the unit for all pixel-space geometry. The host supplies
// fractional metrics (line height, character width) so this is a float.
type Pixels = float64
