package pricing

import (
	"math"

	"mecanique_mobile/internal/domain/entities"
)

// Fixed pricing configuration. Rates mirror the workshop's published fee
// schedule and the Québec tax regimes.
const (
	// RatePerKm is the travel fee per resolved road kilometer (CAD).
	RatePerKm = 0.61
	// TravelCostCap bounds the travel fee regardless of distance (CAD).
	TravelCostCap = 55.0
	// CombinedTaxRate is TPS 5% + TVQ 9.975%, applied on subtotal+travel.
	CombinedTaxRate = 0.14975
	// MaxServiceRadiusKm is the farthest address the workshop serves.
	MaxServiceRadiusKm = 100.0
)

// Breakdown is the full price decomposition of a selection set. All amounts
// are kept at full precision; round only at the presentation boundary.
type Breakdown struct {
	Lines      []entities.QuoteLine
	Subtotal   float64
	TravelCost float64
	Taxes      float64
	Total      float64
}

// Calculate prices a selection set against a catalog snapshot and a resolved
// distance. It is pure and never fails: selections referencing services or
// option indexes absent from the snapshot contribute zero instead of
// erroring, so a stale browser session can always be priced.
func Calculate(catalog *entities.Catalog, selections []entities.SelectedService, distanceKm float64) Breakdown {
	b := Breakdown{Lines: make([]entities.QuoteLine, 0, len(selections))}

	for _, sel := range selections {
		line := entities.QuoteLine{
			ServiceID:    sel.ServiceID,
			BaseSelected: sel.BaseSelected,
			Options:      make([]entities.QuoteLineOption, 0, len(sel.Options)),
		}

		svc, found := catalog.Service(sel.ServiceID)
		if found {
			line.ServiceName = svc.Name
			if sel.BaseSelected {
				line.BasePrice = svc.BasePrice
			}
		}

		lineTotal := line.BasePrice
		for _, opt := range sel.Options {
			qty := opt.Quantity
			if qty < 0 {
				qty = 0
			}
			o := entities.QuoteLineOption{Quantity: qty}
			if catOpt, ok := catalog.Option(sel.ServiceID, opt.OptionIndex); ok {
				o.Name = catOpt.Name
				o.Price = catOpt.Price
				o.Total = catOpt.Price * float64(qty)
			}
			lineTotal += o.Total
			line.Options = append(line.Options, o)
		}

		line.TotalPrice = lineTotal
		b.Subtotal += lineTotal
		b.Lines = append(b.Lines, line)
	}

	b.TravelCost = TravelCost(distanceKm)
	b.Taxes = Taxes(b.Subtotal + b.TravelCost)
	b.Total = b.Subtotal + b.TravelCost + b.Taxes
	return b
}

// TravelCost is min(distance * RatePerKm, TravelCostCap), monotonic
// non-decreasing in distance. Non-finite or negative distances count as zero.
func TravelCost(distanceKm float64) float64 {
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		distanceKm = 0
	}
	return math.Min(distanceKm*RatePerKm, TravelCostCap)
}

// Taxes applies the combined rate on a taxable base (subtotal + travel).
func Taxes(base float64) float64 {
	if math.IsNaN(base) || base < 0 {
		base = 0
	}
	return base * CombinedTaxRate
}

// RoundMoney rounds to two decimals for display/persist boundaries.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// WithinServiceRadius reports whether a resolved distance is serviceable.
// The boundary is inclusive: exactly 100 km is still served.
func WithinServiceRadius(distanceKm float64) bool {
	return distanceKm <= MaxServiceRadiusKm
}
