package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

const PricePrecision = 6
const TimeLabelLayout = "15:04:05"

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

type Formatter struct {
	Location *time.Location
}

// FormatPrice always renders exactly six fractional digits.
func (m *Formatter) FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', PricePrecision, 64)
}

// FormatNumber renders the shortest representation that reads back as the
// same value: 2 -> "2", 86000 -> "86000", 0.5 -> "0.5". Magnitudes below
// 1e-6 or from 1e21 up switch to exponent form: 1e-7, 1.5e+21.
func (m *Formatter) FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}

	magnitude := math.Abs(value)
	if magnitude == 0 || (magnitude >= 1e-6 && magnitude < 1e21) {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + exponent[:1] + digits
}

func (m *Formatter) FormatTimeLabel(timestamp model.TimestampMilli) string {
	return timestamp.Time().In(m.location()).Format(TimeLabelLayout)
}

func (m *Formatter) FormatChartTitle(symbol string, interval string) string {
	return fmt.Sprintf("%s — %s", symbol, interval)
}

// ParseAmount reads the leading number of the input the way a lenient form
// field does ("12.5abc" -> 12.5); anything without a leading number is 0.
func (m *Formatter) ParseAmount(input string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(input))
	if match == "" {
		return 0.00
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0.00
	}

	return value
}

func (m *Formatter) location() *time.Location {
	if m.Location == nil {
		return time.Local
	}

	return m.Location
}
