package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"mecanique_mobile/internal/availability"
	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/domain/pricing"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrNoServicesSelected   = errors.New("no services selected")
	ErrMissingContactFields = errors.New("missing customer contact fields")
	ErrMissingSchedule      = errors.New("missing preferred date or time slot")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrTermsNotAccepted     = errors.New("terms not accepted")
	ErrOutsideServiceRadius = errors.New("address outside service radius")
	ErrLeadTimeViolated     = errors.New("appointment inside minimum lead time")
)

// Submission warning codes, returned when a post-persist side effect fails.
const (
	WarnCalendarSyncFailed = "calendar_sync_failed"
	WarnEmailSendFailed    = "email_send_failed"
)

// DistanceResolver is the distance engine as the orchestrator sees it:
// always a number, never an error.
type DistanceResolver interface {
	ResolveKm(ctx context.Context, address string) float64
}

// SubmitQuoteInput is a full quote submission from the customer form.
type SubmitQuoteInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	VehicleInfo     string
	VehicleVIN      string
	Services        []entities.SelectedService
	PreferredDate   time.Time
	TimeSlotKey     string
	AcceptedTerms   bool
}

// SubmitQuoteResult carries the persisted quote plus non-fatal warnings
// from the best-effort side effects.
type SubmitQuoteResult struct {
	Quote    entities.Quote
	Warnings []string
}

// IQuoteUseCase exposes the quote submission orchestrator and the staff
// operations on persisted quotes.

type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, in SubmitQuoteInput) (SubmitQuoteResult, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Quote, error)
	ConfirmByID(ctx context.Context, id string) (entities.Quote, error)
	CancelByID(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	catalog  ICatalogUseCase
	resolver DistanceResolver
	calendar interfaces.ICalendarGateway // nil when not configured
	mailer   interfaces.IQuoteMailer    // nil when not configured
	loc      *time.Location
	now      func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	catalog ICatalogUseCase,
	resolver DistanceResolver,
	calendar interfaces.ICalendarGateway,
	mailer interfaces.IQuoteMailer,
	loc *time.Location,
) *QuoteUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &QuoteUseCase{
		repo:     repo,
		catalog:  catalog,
		resolver: resolver,
		calendar: calendar,
		mailer:   mailer,
		loc:      loc,
		now:      time.Now,
	}
}

// SubmitQuote validates the submission, prices it, persists the quote and
// then fires the calendar booking and confirmation email as independent
// best-effort side effects. The submission succeeds once the quote record
// is persisted; side-effect failures come back as warnings, never as
// submission failures, and never roll the quote back.
func (u *QuoteUseCase) SubmitQuote(ctx context.Context, in SubmitQuoteInput) (SubmitQuoteResult, error) {
	window, slotStart, err := u.validate(in)
	if err != nil {
		return SubmitQuoteResult{}, err
	}

	distanceKm := u.resolver.ResolveKm(ctx, in.CustomerAddress)
	if !pricing.WithinServiceRadius(distanceKm) {
		log.Printf("[quote][usecase] submission rejected, outside radius distance_km=%.2f", distanceKm)
		return SubmitQuoteResult{}, ErrOutsideServiceRadius
	}

	breakdown := pricing.Calculate(u.catalog.Snapshot(), in.Services, distanceKm)

	now := u.now().UTC()
	q := entities.Quote{
		ID:              "EST-" + uuid.NewString(),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		VehicleInfo:     strings.TrimSpace(in.VehicleInfo),
		VehicleVIN:      strings.TrimSpace(in.VehicleVIN),
		Services:        breakdown.Lines,
		DistanceKm:      distanceKm,
		Subtotal:        breakdown.Subtotal,
		TravelCost:      breakdown.TravelCost,
		Taxes:           breakdown.Taxes,
		Total:           breakdown.Total,
		PreferredDate:   slotStart,
		TimeSlot:        window.Key(),
		Status:          entities.QuoteStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] persist failed quote_id=%s err=%v", q.ID, err)
		return SubmitQuoteResult{}, err
	}
	log.Printf("[quote][usecase] quote persisted quote_id=%s total=%.2f distance_km=%.2f", created.ID, pricing.RoundMoney(created.Total), created.DistanceKm)

	res := SubmitQuoteResult{Quote: created}
	res.Warnings = append(res.Warnings, u.bookAppointment(ctx, created, slotStart)...)
	res.Warnings = append(res.Warnings, u.sendConfirmation(ctx, created)...)
	return res, nil
}

func (u *QuoteUseCase) validate(in SubmitQuoteInput) (entities.SlotWindow, time.Time, error) {
	if len(in.Services) == 0 {
		return entities.SlotWindow{}, time.Time{}, ErrNoServicesSelected
	}
	for _, f := range []string{in.CustomerName, in.CustomerEmail, in.CustomerPhone, in.CustomerAddress, in.VehicleInfo} {
		if strings.TrimSpace(f) == "" {
			return entities.SlotWindow{}, time.Time{}, ErrMissingContactFields
		}
	}
	if in.PreferredDate.IsZero() || strings.TrimSpace(in.TimeSlotKey) == "" {
		return entities.SlotWindow{}, time.Time{}, ErrMissingSchedule
	}
	window, ok := entities.SlotWindowByKey(strings.TrimSpace(in.TimeSlotKey))
	if !ok {
		return entities.SlotWindow{}, time.Time{}, ErrInvalidTimeSlot
	}
	if !in.AcceptedTerms {
		return entities.SlotWindow{}, time.Time{}, ErrTermsNotAccepted
	}

	slotStart := window.StartOn(in.PreferredDate.In(u.loc), u.loc)
	// Inclusive boundary: a slot starting exactly at now+72h is admissible.
	if slotStart.Before(u.now().Add(availability.MinimumLeadTime)) {
		return entities.SlotWindow{}, time.Time{}, ErrLeadTimeViolated
	}
	return window, slotStart, nil
}

func (u *QuoteUseCase) bookAppointment(ctx context.Context, q entities.Quote, slotStart time.Time) []string {
	if u.calendar == nil {
		log.Printf("[quote][usecase] calendar not configured, skipping booking quote_id=%s", q.ID)
		return nil
	}

	appt := entities.Appointment{
		Title:           fmt.Sprintf("Estimation - %s", q.CustomerName),
		Description:     appointmentDescription(q),
		Location:        q.CustomerAddress,
		Start:           slotStart,
		DurationMinutes: availability.AppointmentDurationMinutes,
		AttendeeName:    q.CustomerName,
		AttendeeEmail:   q.CustomerEmail,
	}
	if err := u.calendar.CreateAppointment(ctx, appt); err != nil {
		log.Printf("[quote][usecase] calendar booking failed quote_id=%s err=%v", q.ID, err)
		return []string{WarnCalendarSyncFailed}
	}
	log.Printf("[quote][usecase] calendar booking created quote_id=%s start=%s", q.ID, slotStart.Format(time.RFC3339))
	return nil
}

func (u *QuoteUseCase) sendConfirmation(ctx context.Context, q entities.Quote) []string {
	if u.mailer == nil {
		log.Printf("[quote][usecase] mailer not configured, skipping email quote_id=%s", q.ID)
		return nil
	}
	if err := u.mailer.SendQuoteConfirmation(ctx, q); err != nil {
		log.Printf("[quote][usecase] confirmation email failed quote_id=%s err=%v", q.ID, err)
		return []string{WarnEmailSendFailed}
	}
	log.Printf("[quote][usecase] confirmation email sent quote_id=%s to=%s", q.ID, q.CustomerEmail)
	return nil
}

// appointmentDescription summarizes the booked work for the calendar event.
func appointmentDescription(q entities.Quote) string {
	var b strings.Builder
	b.WriteString("Services: ")
	for i, line := range q.Services {
		if i > 0 {
			b.WriteString(", ")
		}
		parts := make([]string, 0, 1+len(line.Options))
		if line.BaseSelected {
			parts = append(parts, fmt.Sprintf("%s (base)", line.ServiceName))
		}
		for _, opt := range line.Options {
			parts = append(parts, fmt.Sprintf("%s x%d", opt.Name, opt.Quantity))
		}
		b.WriteString(strings.Join(parts, " + "))
	}
	b.WriteString(fmt.Sprintf("\n\nVehicle: %s", q.VehicleInfo))
	if q.VehicleVIN != "" {
		b.WriteString(fmt.Sprintf("\nVIN: %s", q.VehicleVIN))
	}
	b.WriteString(fmt.Sprintf("\n\nEstimated total: %.2f$ CAD", pricing.RoundMoney(q.Total)))
	return b.String()
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// ListByEmail returns the customer's quotes, matched case-insensitively.
// Retrieval is unfiltered with client-side narrowing, same as invoices.
func (u *QuoteUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Quote, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" {
		return all, nil
	}
	out := make([]entities.Quote, 0, len(all))
	for _, q := range all {
		if strings.ToLower(q.CustomerEmail) == email {
			out = append(out, q)
		}
	}
	return out, nil
}

func (u *QuoteUseCase) ConfirmByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusConfirmed)
}

func (u *QuoteUseCase) CancelByID(ctx context.Context, id string) (entities.Quote, error) {
	return u.updateStatusByID(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}
