package mail

import (
	"context"
	"fmt"
	"strings"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/domain/pricing"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESMailer sends quote confirmation emails through AWS SESv2.

type SESMailer struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
}

var _ interfaces.IQuoteMailer = (*SESMailer)(nil)

func NewSESMailer(client *sesv2.Client, fromEmail, fromName string) *SESMailer {
	if fromName == "" {
		fromName = "JJ Mécanique"
	}
	return &SESMailer{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SESMailer) SendQuoteConfirmation(ctx context.Context, q entities.Quote) error {
	subject := fmt.Sprintf("Votre estimation %s", q.ID)
	body := confirmationBody(q)

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{q.CustomerEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(body),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("mail: ses send: %w", err)
	}
	return nil
}

// confirmationBody renders the plain-text pricing breakdown the customer
// receives after submitting.
func confirmationBody(q entities.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bonjour %s,\n\n", q.CustomerName)
	b.WriteString("Merci pour votre demande d'estimation. Voici le détail :\n\n")

	for _, line := range q.Services {
		fmt.Fprintf(&b, "- %s", line.ServiceName)
		if line.BaseSelected {
			fmt.Fprintf(&b, " : %.2f$", pricing.RoundMoney(line.BasePrice))
		}
		b.WriteString("\n")
		for _, opt := range line.Options {
			fmt.Fprintf(&b, "    %s x%d : %.2f$\n", opt.Name, opt.Quantity, pricing.RoundMoney(opt.Total))
		}
	}

	fmt.Fprintf(&b, "\nSous-total : %.2f$\n", pricing.RoundMoney(q.Subtotal))
	fmt.Fprintf(&b, "Frais de déplacement (%.1f km) : %.2f$\n", q.DistanceKm, pricing.RoundMoney(q.TravelCost))
	fmt.Fprintf(&b, "Taxes (TPS + TVQ) : %.2f$\n", pricing.RoundMoney(q.Taxes))
	fmt.Fprintf(&b, "Total : %.2f$ CAD\n\n", pricing.RoundMoney(q.Total))

	fmt.Fprintf(&b, "Rendez-vous demandé : %s (%s)\n", q.PreferredDate.Format(entities.DateLayout), q.TimeSlot)
	fmt.Fprintf(&b, "Adresse : %s\n\n", q.CustomerAddress)
	b.WriteString("Nous confirmerons votre rendez-vous sous peu.\n\nJJ Mécanique\n")
	return b.String()
}
