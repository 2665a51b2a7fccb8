// Package pricing computes the figures printed on a quotation.
//
// [Price] is the only place the area and total are derived. The 3D summary,
// the printed document and the HTTP surface all read a [Breakdown] rather
// than repeating the arithmetic.
//
// Price performs no validation. Degenerate inputs follow IEEE-754: a zero
// width gives a zero area, a NaN rate gives a NaN total. Callers reject
// those at the boundary with [window.WindowSpecs.Validate].
package pricing

import (
	"fmt"

	"github.com/matzehuels/casement/pkg/window"
)

// SquareInchesPerSquareFoot converts inch² to ft².
const SquareInchesPerSquareFoot = 144

// DefaultCurrency is the symbol used by [FormatMoney] callers that have no
// template preference.
const DefaultCurrency = "₹"

// Breakdown holds the priced figures for one window line.
type Breakdown struct {
	AreaSqFt float64 `json:"areaSqFt"` // per window
	Rate     float64 `json:"rate"`     // per square foot
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Price returns the area of one window in square feet and the line total.
// Values are not rounded.
func Price(s window.WindowSpecs) Breakdown {
	area := (s.Height * s.Width) / SquareInchesPerSquareFoot
	return Breakdown{
		AreaSqFt: area,
		Rate:     s.Rate,
		Quantity: s.Quantity,
		Total:    area * s.Rate * float64(s.Quantity),
	}
}

// TotalArea is the area of all windows in the line.
func (b Breakdown) TotalArea() float64 {
	return b.AreaSqFt * float64(b.Quantity)
}

// FormatAmount formats v with two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatArea formats an area as "12.00 Sq.ft".
func FormatArea(v float64) string {
	return FormatAmount(v) + " Sq.ft"
}

// FormatMoney formats v with two decimals behind a currency symbol.
func FormatMoney(currency string, v float64) string {
	return currency + FormatAmount(v)
}
