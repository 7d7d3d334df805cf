package dashboard

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatHumidity renders a soil humidity KPI, e.g. "70.0%".
func FormatHumidity(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// FormatWater renders a water volume with thousands separators and no
// decimals, e.g. "4,850 m³". Halves round to even.
func FormatWater(v float64) string {
	return humanize.Comma(int64(math.RoundToEven(v))) + " m³"
}
