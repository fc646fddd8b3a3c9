package interfaces

import (
	"context"

	"mecanique_mobile/internal/domain/entities"
)

// IQuoteMailer sends the templated quote-confirmation email. Best-effort:
// failures degrade to a warning after the quote record is persisted.

type IQuoteMailer interface {
	SendQuoteConfirmation(ctx context.Context, q entities.Quote) error
}
