package mail

import (
	"strings"
	"testing"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

func TestConfirmationBody(t *testing.T) {
	q := entities.Quote{
		ID:              "EST-1",
		CustomerName:    "Jean Tremblay",
		CustomerAddress: "123 Rue Principale, Laval",
		Services: []entities.QuoteLine{
			{
				ServiceName:  "Changement d'huile",
				BaseSelected: true,
				BasePrice:    80,
				Options: []entities.QuoteLineOption{
					{Name: "Filtre premium", Price: 20, Quantity: 2, Total: 40},
				},
			},
		},
		DistanceKm:    25,
		Subtotal:      120,
		TravelCost:    15.25,
		Taxes:         20.253687,
		Total:         155.503687,
		PreferredDate: time.Date(2026, time.September, 10, 11, 0, 0, 0, time.UTC),
		TimeSlot:      "11:00-14:00",
	}

	body := confirmationBody(q)

	for _, want := range []string{
		"Bonjour Jean Tremblay",
		"Changement d'huile : 80.00$",
		"Filtre premium x2 : 40.00$",
		"Sous-total : 120.00$",
		"Frais de déplacement (25.0 km) : 15.25$",
		"Taxes (TPS + TVQ) : 20.25$",
		"Total : 155.50$ CAD",
		"2026-09-10 (11:00-14:00)",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
