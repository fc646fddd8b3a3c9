package interfaces

import (
	"context"

	"mecanique_mobile/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The quote engine must be able to:
//   - create a quote once per submission (hard failure when this fails)
//   - fetch and list quotes for the workshop staff
//   - apply status transitions (confirm/cancel) driven from outside
//
// Update methods return a zero-ID quote when the record does not exist.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
