// Package pricing turns a cart into a financial breakdown. Every function
// here is pure; persistence and HTTP concerns live elsewhere.
package pricing

import (
	"math"
	"strings"
)

// Surface is the ground the inflatable will be set up on.
type Surface string

const (
	SurfaceGrassFront Surface = "grass-front"
	SurfaceGrassBack  Surface = "grass-back"
	SurfaceConcrete   Surface = "concrete"
	SurfaceAsphalt    Surface = "asphalt"
	SurfaceIndoor     Surface = "indoor"
	SurfaceParkingLot Surface = "parking-lot"
)

const (
	// TaxRate is the fixed Arkansas rental tax.
	TaxRate = 0.10

	// HardSurfaceFee applies when stakes cannot be used and sandbags are
	// delivered instead.
	HardSurfaceFee = 30.0

	// OvernightFee applies when pickup happens the next morning.
	OvernightFee = 75.0

	// Discount tiers. Multi-item wins over subtotal tiers.
	MultiItemDiscountPercent = 10.0
	Tier1Threshold           = 1200.0
	Tier1DiscountPercent     = 15.0
	Tier2Threshold           = 2000.0
	Tier2DiscountPercent     = 20.0
)

// Line is one cart entry. Quantity below 1 is treated as 1.
type Line struct {
	ProductName     string
	ProductCategory string
	Quantity        float64
	UnitPrice       float64
}

// Breakdown is the priced result. All amounts are rounded to two decimal
// places; intermediate math is done unrounded to avoid drift.
type Breakdown struct {
	BaseSubtotal     float64 `json:"base_subtotal"`
	DiscountPercent  float64 `json:"discount_percent"`
	DiscountAmount   float64 `json:"discount_amount"`
	SurfaceFee       float64 `json:"surface_fee"`
	OvernightFee     float64 `json:"overnight_fee"`
	AdjustedSubtotal float64 `json:"adjusted_subtotal"`
	Tax              float64 `json:"tax"`
	Total            float64 `json:"total"`
}

// Round2 rounds to two decimal places, the display precision for all
// currency amounts.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal is the price of one line: quantity times unit price.
func LineTotal(l Line) float64 {
	qty := l.Quantity
	if qty < 1 {
		qty = 1
	}
	return qty * l.UnitPrice
}

// NormalizeSurface maps free-form surface input ("Concrete", "parking lot")
// onto the canonical Surface values. Anything unrecognized passes through
// lowercased, which never carries a fee.
func NormalizeSurface(s string) Surface {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "-")
	normalized = strings.ReplaceAll(normalized, "_", "-")
	return Surface(normalized)
}

// HasSurfaceFee reports whether a surface carries the hard-surface fee.
// Unknown or empty surfaces do not.
func HasSurfaceFee(s Surface) bool {
	switch s {
	case SurfaceConcrete, SurfaceAsphalt, SurfaceIndoor, SurfaceParkingLot:
		return true
	}
	return false
}

// discountPercent picks the discount tier. The rules are mutually
// exclusive and evaluated in priority order; first match wins.
func discountPercent(lineCount int, baseSubtotal float64) float64 {
	switch {
	case lineCount > 1:
		return MultiItemDiscountPercent
	case baseSubtotal >= Tier2Threshold:
		return Tier2DiscountPercent
	case baseSubtotal >= Tier1Threshold:
		return Tier1DiscountPercent
	}
	return 0
}

// Quote prices a cart. An empty cart yields an all-zero breakdown; the
// caller is responsible for rejecting empty submissions upstream.
func Quote(lines []Line, surface Surface, overnight bool) Breakdown {
	var base float64
	for _, l := range lines {
		base += LineTotal(l)
	}

	pct := discountPercent(len(lines), base)
	discount := base * pct / 100
	afterDiscount := base - discount

	var surfaceFee float64
	if HasSurfaceFee(NormalizeSurface(string(surface))) {
		surfaceFee = HardSurfaceFee
	}

	var overnightFee float64
	if overnight {
		overnightFee = OvernightFee
	}

	adjusted := afterDiscount + surfaceFee + overnightFee
	tax := adjusted * TaxRate
	total := adjusted + tax

	return Breakdown{
		BaseSubtotal:     Round2(base),
		DiscountPercent:  pct,
		DiscountAmount:   Round2(discount),
		SurfaceFee:       surfaceFee,
		OvernightFee:     overnightFee,
		AdjustedSubtotal: Round2(adjusted),
		Tax:              Round2(tax),
		Total:            Round2(total),
	}
}
