package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceInput  = errors.New("invalid invoice input")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

// IInvoiceUseCase exposes invoice record keeping for the workshop staff.
//
// Search deliberately pulls the full list and narrows it client-side: the
// portal's lookup surface is substring matching over email, phone and
// invoice numbers, which the persistence collaborator does not index.

type IInvoiceUseCase interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	Search(ctx context.Context, query string) ([]entities.Invoice, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
	now  func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

func (u *InvoiceUseCase) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.CustomerName = strings.TrimSpace(inv.CustomerName)
	inv.CustomerEmail = strings.TrimSpace(inv.CustomerEmail)
	if inv.CustomerName == "" || inv.CustomerEmail == "" {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}
	if inv.Total < 0 {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}

	now := u.now().UTC()
	inv.ID = uuid.NewString()
	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		// Human-facing number derived from the record id.
		inv.InvoiceNumber = "INV-" + strings.ToUpper(inv.ID[:8])
	}
	if inv.Status == "" {
		inv.Status = entities.InvoiceStatusPending
	}
	if !validInvoiceStatus(inv.Status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}
	inv.CreatedAt = now
	inv.UpdatedAt = now

	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

// Search matches the query as a case-insensitive substring of the customer
// email, phone, invoice number or invoice id. An empty query matches
// nothing.
func (u *InvoiceUseCase) Search(ctx context.Context, query string) ([]entities.Invoice, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []entities.Invoice{}, nil
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if strings.Contains(strings.ToLower(inv.CustomerEmail), query) ||
			strings.Contains(inv.CustomerPhone, query) ||
			strings.Contains(strings.ToLower(inv.InvoiceNumber), query) ||
			strings.Contains(strings.ToLower(inv.ID), query) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (u *InvoiceUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Invoice, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return []entities.Invoice{}, nil
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		if strings.ToLower(inv.CustomerEmail) == email {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (u *InvoiceUseCase) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if !validInvoiceStatus(status) {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func validInvoiceStatus(s entities.InvoiceStatus) bool {
	switch s {
	case entities.InvoiceStatusPending, entities.InvoiceStatusPaid,
		entities.InvoiceStatusCancelled, entities.InvoiceStatusRefunded:
		return true
	}
	return false
}
