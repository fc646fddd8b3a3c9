package pricing

import (
	"math"
	"testing"

	"mecanique_mobile/internal/domain/entities"
)

func testCatalog() *entities.Catalog {
	return entities.NewCatalog([]entities.ServiceCatalogEntry{
		{
			ServiceID: "svc-brakes",
			Name:      "Brake service",
			BasePrice: 80,
			Options: []entities.ServiceOption{
				{Name: "Brake pads", Price: 20},
				{Name: "Rotor resurfacing", Price: 35},
			},
			Active: true,
		},
		{
			ServiceID: "svc-oil",
			Name:      "Oil change",
			BasePrice: 45,
			Options:   []entities.ServiceOption{{Name: "Synthetic upgrade", Price: 15}},
			Active:    true,
		},
	})
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_Scenario(t *testing.T) {
	// base 80 + option 20 x2 = 120; travel min(50*0.61, 55) = 30.5;
	// taxes 150.5 * 0.14975; total is the straight sum.
	b := Calculate(testCatalog(), []entities.SelectedService{
		{
			ServiceID:    "svc-brakes",
			BaseSelected: true,
			Options:      []entities.SelectedOption{{OptionIndex: 0, Quantity: 2}},
		},
	}, 50)

	if !almostEqual(b.Subtotal, 120) {
		t.Fatalf("expected subtotal 120, got %v", b.Subtotal)
	}
	if !almostEqual(b.TravelCost, 30.5) {
		t.Fatalf("expected travel 30.5, got %v", b.TravelCost)
	}
	if !almostEqual(b.Taxes, 150.5*0.14975) {
		t.Fatalf("expected taxes %v, got %v", 150.5*0.14975, b.Taxes)
	}
	if !almostEqual(b.Total, b.Subtotal+b.TravelCost+b.Taxes) {
		t.Fatalf("total must equal subtotal+travel+taxes, got %v", b.Total)
	}
	if RoundMoney(b.Taxes) != 22.54 {
		t.Fatalf("expected displayed taxes 22.54, got %v", RoundMoney(b.Taxes))
	}
	if RoundMoney(b.Total) != 173.04 {
		t.Fatalf("expected displayed total 173.04, got %v", RoundMoney(b.Total))
	}
}

func TestCalculate_BaseNotSelectedNeverChargesBase(t *testing.T) {
	b := Calculate(testCatalog(), []entities.SelectedService{
		{
			ServiceID:    "svc-brakes",
			BaseSelected: false,
			Options: []entities.SelectedOption{
				{OptionIndex: 0, Quantity: 1},
				{OptionIndex: 1, Quantity: 1},
			},
		},
	}, 0)

	if !almostEqual(b.Subtotal, 55) {
		t.Fatalf("expected options-only subtotal 55, got %v", b.Subtotal)
	}
	if b.Lines[0].BasePrice != 0 {
		t.Fatalf("base price must stay 0 when base not selected, got %v", b.Lines[0].BasePrice)
	}
}

func TestCalculate_StaleReferencesContributeZero(t *testing.T) {
	b := Calculate(testCatalog(), []entities.SelectedService{
		{ServiceID: "svc-gone", BaseSelected: true, Options: []entities.SelectedOption{{OptionIndex: 0, Quantity: 3}}},
		{ServiceID: "svc-oil", BaseSelected: true, Options: []entities.SelectedOption{{OptionIndex: 7, Quantity: 2}}},
	}, 10)

	if !almostEqual(b.Subtotal, 45) {
		t.Fatalf("expected only the valid base price 45, got %v", b.Subtotal)
	}
	if len(b.Lines) != 2 {
		t.Fatalf("stale selections still produce lines, got %d", len(b.Lines))
	}
	if b.Lines[0].TotalPrice != 0 {
		t.Fatalf("stale service line must total 0, got %v", b.Lines[0].TotalPrice)
	}
	if b.Lines[1].Options[0].Total != 0 {
		t.Fatalf("stale option must total 0, got %v", b.Lines[1].Options[0].Total)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	sel := []entities.SelectedService{
		{ServiceID: "svc-brakes", BaseSelected: true, Options: []entities.SelectedOption{{OptionIndex: 1, Quantity: 4}}},
		{ServiceID: "svc-oil", BaseSelected: false, Options: []entities.SelectedOption{{OptionIndex: 0, Quantity: 1}}},
	}
	cat := testCatalog()
	a := Calculate(cat, sel, 42.5)
	b := Calculate(cat, sel, 42.5)
	if a.Subtotal != b.Subtotal || a.TravelCost != b.TravelCost || a.Taxes != b.Taxes || a.Total != b.Total {
		t.Fatalf("pricing must be idempotent: %+v vs %+v", a, b)
	}
}

func TestTravelCost_MonotonicAndCapped(t *testing.T) {
	prev := -1.0
	for _, d := range []float64{0, 1, 10, 50, 90.16, 90.17, 100, 500} {
		c := TravelCost(d)
		if c < prev {
			t.Fatalf("travel cost decreased at d=%v: %v < %v", d, c, prev)
		}
		if c > TravelCostCap {
			t.Fatalf("travel cost exceeds cap at d=%v: %v", d, c)
		}
		prev = c
	}
	if got := TravelCost(1000); got != TravelCostCap {
		t.Fatalf("expected cap %v, got %v", TravelCostCap, got)
	}
	if got := TravelCost(-5); got != 0 {
		t.Fatalf("negative distance must cost 0, got %v", got)
	}
	if got := TravelCost(math.NaN()); got != 0 {
		t.Fatalf("NaN distance must cost 0, got %v", got)
	}
}

func TestWithinServiceRadius_Boundary(t *testing.T) {
	if !WithinServiceRadius(100.00) {
		t.Fatalf("100.00 km must be admissible")
	}
	if WithinServiceRadius(100.01) {
		t.Fatalf("100.01 km must be rejected")
	}
}

func TestRoundMoney(t *testing.T) {
	if got := RoundMoney(22.537375); got != 22.54 {
		t.Fatalf("expected 22.54, got %v", got)
	}
	if got := RoundMoney(30.5); got != 30.5 {
		t.Fatalf("expected 30.5, got %v", got)
	}
}
