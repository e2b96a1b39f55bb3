package svg

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits written for coordinates.
const Precision = 6

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// toCSSColor writes the RGB channels only; alpha goes into the separate opacity attributes.
func toCSSColor(col color.RGBA) string {
	buf := make([]byte, 7)
	buf[0] = '#'
	hex.Encode(buf[1:], []byte{col.R, col.G, col.B})
	return string(buf)
}
