package interfaces

import (
	"context"

	"mecanique_mobile/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// List is deliberately unfiltered; search narrows the result client-side
// (by email, phone and invoice number/id substrings).

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}
