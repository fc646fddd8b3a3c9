package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanique_mobile/internal/domain/entities"
	mock_interfaces "mecanique_mobile/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var quoteTestNow = time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)

type stubResolver struct {
	km float64
}

func (s stubResolver) ResolveKm(_ context.Context, _ string) float64 { return s.km }

func testCatalog(t *testing.T, ctrl *gomock.Controller) ICatalogUseCase {
	t.Helper()
	repo := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
	repo.EXPECT().ListActive(gomock.Any()).Return([]entities.ServiceCatalogEntry{
		{
			ServiceID: "oil-change",
			Name:      "Changement d'huile",
			BasePrice: 80,
			Options: []entities.ServiceOption{
				{Name: "Filtre premium", Price: 20},
			},
			Active: true,
		},
	}, nil)

	cat := NewCatalogUseCase(repo)
	if _, err := cat.Reload(context.Background()); err != nil {
		t.Fatalf("catalog reload: %v", err)
	}
	return cat
}

func validSubmitInput() SubmitQuoteInput {
	return SubmitQuoteInput{
		CustomerName:    "Jean Tremblay",
		CustomerEmail:   "jean@example.com",
		CustomerPhone:   "514-555-0101",
		CustomerAddress: "123 Rue Principale, Laval",
		VehicleInfo:     "Honda Civic 2019",
		Services: []entities.SelectedService{
			{ServiceID: "oil-change", BaseSelected: true, Options: []entities.SelectedOption{{OptionIndex: 0, Quantity: 1}}},
		},
		PreferredDate: quoteTestNow.Add(120 * time.Hour),
		TimeSlotKey:   "11:00-14:00",
		AcceptedTerms: true,
	}
}

func newQuoteUC(repo *mock_interfaces.MockIQuoteRepository, cat ICatalogUseCase, km float64,
	cal *mock_interfaces.MockICalendarGateway, mail *mock_interfaces.MockIQuoteMailer) *QuoteUseCase {
	var uc *QuoteUseCase
	if cal != nil && mail != nil {
		uc = NewQuoteUseCase(repo, cat, stubResolver{km: km}, cal, mail, time.UTC)
	} else if cal != nil {
		uc = NewQuoteUseCase(repo, cat, stubResolver{km: km}, cal, nil, time.UTC)
	} else if mail != nil {
		uc = NewQuoteUseCase(repo, cat, stubResolver{km: km}, nil, mail, time.UTC)
	} else {
		uc = NewQuoteUseCase(repo, cat, stubResolver{km: km}, nil, nil, time.UTC)
	}
	uc.now = func() time.Time { return quoteTestNow }
	return uc
}

func TestQuoteUseCase_SubmitQuoteValidation(t *testing.T) {
	uc := newQuoteUC(nil, nil, 10, nil, nil)

	t.Run("no services", func(t *testing.T) {
		in := validSubmitInput()
		in.Services = nil
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrNoServicesSelected) {
			t.Fatalf("expected ErrNoServicesSelected, got %v", err)
		}
	})

	t.Run("missing contact field", func(t *testing.T) {
		in := validSubmitInput()
		in.CustomerPhone = "   "
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrMissingContactFields) {
			t.Fatalf("expected ErrMissingContactFields, got %v", err)
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		in := validSubmitInput()
		in.PreferredDate = time.Time{}
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrMissingSchedule) {
			t.Fatalf("expected ErrMissingSchedule, got %v", err)
		}
	})

	t.Run("unknown time slot", func(t *testing.T) {
		in := validSubmitInput()
		in.TimeSlotKey = "09:00-12:00"
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrInvalidTimeSlot) {
			t.Fatalf("expected ErrInvalidTimeSlot, got %v", err)
		}
	})

	t.Run("terms not accepted", func(t *testing.T) {
		in := validSubmitInput()
		in.AcceptedTerms = false
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrTermsNotAccepted) {
			t.Fatalf("expected ErrTermsNotAccepted, got %v", err)
		}
	})

	t.Run("slot inside lead time", func(t *testing.T) {
		in := validSubmitInput()
		in.PreferredDate = quoteTestNow.Add(24 * time.Hour)
		if _, err := uc.SubmitQuote(context.Background(), in); !errors.Is(err, ErrLeadTimeViolated) {
			t.Fatalf("expected ErrLeadTimeViolated, got %v", err)
		}
	})

	t.Run("slot exactly at lead time boundary is admissible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUC(repo, testCatalog(t, ctrl), 10, nil, nil)

		// 11:00 slot on Sep 4 starts exactly 72h after 09:00 Sep 1... shift
		// now so the boundary lands on the slot start.
		uc.now = func() time.Time {
			return time.Date(2026, time.September, 1, 11, 0, 0, 0, time.UTC)
		}
		in := validSubmitInput()
		in.PreferredDate = time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		if _, err := uc.SubmitQuote(context.Background(), in); err != nil {
			t.Fatalf("boundary slot must be admissible, got %v", err)
		}
	})
}

func TestQuoteUseCase_SubmitQuoteOutsideRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No repo expectations: rejection happens before persistence.
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newQuoteUC(repo, testCatalog(t, ctrl), 150, nil, nil)

	_, err := uc.SubmitQuote(context.Background(), validSubmitInput())
	if !errors.Is(err, ErrOutsideServiceRadius) {
		t.Fatalf("expected ErrOutsideServiceRadius, got %v", err)
	}
}

func TestQuoteUseCase_SubmitQuoteSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	cal := mock_interfaces.NewMockICalendarGateway(ctrl)
	mail := mock_interfaces.NewMockIQuoteMailer(ctrl)
	uc := newQuoteUC(repo, testCatalog(t, ctrl), 25, cal, mail)

	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			if q.ID == "" || q.Status != entities.QuoteStatusPending {
				t.Errorf("unexpected quote: %+v", q)
			}
			// base 80 + option 20, travel 25*0.61=15.25, taxed at 14.975%.
			if q.Subtotal != 100 {
				t.Errorf("expected subtotal 100, got %v", q.Subtotal)
			}
			if q.TravelCost != 15.25 {
				t.Errorf("expected travel 15.25, got %v", q.TravelCost)
			}
			if q.TimeSlot != "11:00-14:00" {
				t.Errorf("expected slot key, got %q", q.TimeSlot)
			}
			return q, nil
		},
	)
	cal.EXPECT().CreateAppointment(gomock.Any(), gomock.AssignableToTypeOf(entities.Appointment{})).DoAndReturn(
		func(_ context.Context, a entities.Appointment) error {
			if a.DurationMinutes != 180 {
				t.Errorf("expected 180 minute appointment, got %d", a.DurationMinutes)
			}
			if a.AttendeeEmail != "jean@example.com" {
				t.Errorf("unexpected attendee: %q", a.AttendeeEmail)
			}
			return nil
		},
	)
	mail.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).Return(nil)

	res, err := uc.SubmitQuote(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", res.Warnings)
	}
	if res.Quote.DistanceKm != 25 {
		t.Fatalf("expected distance 25, got %v", res.Quote.DistanceKm)
	}
}

func TestQuoteUseCase_SubmitQuotePersistFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	cal := mock_interfaces.NewMockICalendarGateway(ctrl)
	mail := mock_interfaces.NewMockIQuoteMailer(ctrl)
	uc := newQuoteUC(repo, testCatalog(t, ctrl), 25, cal, mail)

	// No calendar or mailer expectations: side effects only run after a
	// successful persist.
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))

	_, err := uc.SubmitQuote(context.Background(), validSubmitInput())
	if err == nil || err.Error() != "dynamo down" {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestQuoteUseCase_SubmitQuoteSideEffectFailuresAreWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	cal := mock_interfaces.NewMockICalendarGateway(ctrl)
	mail := mock_interfaces.NewMockIQuoteMailer(ctrl)
	uc := newQuoteUC(repo, testCatalog(t, ctrl), 25, cal, mail)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
	)
	cal.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).Return(errors.New("calendar api 500"))
	mail.EXPECT().SendQuoteConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("ses throttled"))

	res, err := uc.SubmitQuote(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("side effect failures must not fail the submission: %v", err)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}
	if res.Warnings[0] != WarnCalendarSyncFailed || res.Warnings[1] != WarnEmailSendFailed {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
}

func TestQuoteUseCase_SubmitQuoteSkipsUnconfiguredSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newQuoteUC(repo, testCatalog(t, ctrl), 25, nil, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
	)

	res, err := uc.SubmitQuote(context.Background(), validSubmitInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("missing collaborators are not warnings, got %v", res.Warnings)
	}
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := newQuoteUC(nil, nil, 0, nil, nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUC(repo, nil, 0, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EST-missing").Return(entities.Quote{}, nil)

		if _, err := uc.GetByID(context.Background(), "EST-missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := newQuoteUC(repo, nil, 0, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "EST-1").Return(entities.Quote{ID: "EST-1"}, nil)

		q, err := uc.GetByID(context.Background(), " EST-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID != "EST-1" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_ListByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	uc := newQuoteUC(repo, nil, 0, nil, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{
		{ID: "EST-1", CustomerEmail: "Jean@Example.com"},
		{ID: "EST-2", CustomerEmail: "marie@example.com"},
	}, nil)

	out, err := uc.ListByEmail(context.Background(), "jean@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "EST-1" {
		t.Fatalf("expected only EST-1, got %+v", out)
	}
}

func TestQuoteUseCase_StatusFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuoteUseCase, ctx context.Context, id string) (entities.Quote, error)
		status entities.QuoteStatus
	}{
		{name: "confirm", call: (*QuoteUseCase).ConfirmByID, status: entities.QuoteStatusConfirmed},
		{name: "cancel", call: (*QuoteUseCase).CancelByID, status: entities.QuoteStatusCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := newQuoteUC(nil, nil, 0, nil, nil)
			if _, err := tc.call(uc, context.Background(), ""); !errors.Is(err, ErrInvalidQuoteID) {
				t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := newQuoteUC(repo, nil, 0, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "EST-x", tc.status).Return(entities.Quote{}, nil)

			if _, err := tc.call(uc, context.Background(), "EST-x"); !errors.Is(err, ErrQuoteNotFound) {
				t.Fatalf("expected ErrQuoteNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
			uc := newQuoteUC(repo, nil, 0, nil, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "EST-1", tc.status).
				Return(entities.Quote{ID: "EST-1", Status: tc.status}, nil)

			q, err := tc.call(uc, context.Background(), "EST-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q.Status != tc.status {
				t.Fatalf("expected status %s, got %s", tc.status, q.Status)
			}
		})
	}
}
