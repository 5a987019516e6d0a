package widget

import "github.com/san-kum/springview/internal/dynamo"

var pieColors = []string{
	"#0099CC", "#FF8800", "#669900", "#9933CC", "#CC0000", "#BF1A0B",
	"#590202", "#BBBF34", "#038C17", "#2E707B", "#5CC9CB", "#CAF1E7",
}

// Palette is the slice fill cycle used by Chart.
var Palette = mustPalette(pieColors)

func mustPalette(hex []string) []dynamo.Color {
	out := make([]dynamo.Color, len(hex))
	for i, h := range hex {
		c, err := dynamo.ParseHex(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// PaletteColor cycles through Palette.
func PaletteColor(i int) dynamo.Color {
	return Palette[i%len(Palette)]
}
