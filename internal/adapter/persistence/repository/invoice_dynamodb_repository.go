package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInvoicesTableName = "invoices"

type invoiceItem struct {
	ID             string  `dynamodbav:"id"`
	InvoiceNumber  string  `dynamodbav:"invoice_number"`
	QuoteID        string  `dynamodbav:"quote_id,omitempty"`
	CustomerName   string  `dynamodbav:"customer_name"`
	CustomerEmail  string  `dynamodbav:"customer_email"`
	CustomerPhone  string  `dynamodbav:"customer_phone,omitempty"`
	ServiceAddress string  `dynamodbav:"service_address,omitempty"`
	Services       string  `dynamodbav:"services,omitempty"`
	DistanceKm     float64 `dynamodbav:"distance_km"`
	Subtotal       float64 `dynamodbav:"subtotal"`
	TravelCost     float64 `dynamodbav:"travel_cost"`
	Taxes          float64 `dynamodbav:"taxes"`
	Total          float64 `dynamodbav:"total"`
	Status         string  `dynamodbav:"status"`
	PaymentMethod  string  `dynamodbav:"payment_method,omitempty"`
	ServiceDate    string  `dynamodbav:"service_date,omitempty"`
	Notes          string  `dynamodbav:"notes,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// No GSIs: the staff lookup surface is substring search, which runs
// client-side over a full scan.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it, err := toInvoiceItem(inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var (
		invoices []entities.Invoice
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) (invoiceItem, error) {
	lines := ""
	if len(inv.Services) > 0 {
		raw, err := json.Marshal(inv.Services)
		if err != nil {
			return invoiceItem{}, err
		}
		lines = string(raw)
	}

	serviceDate := ""
	if !inv.ServiceDate.IsZero() {
		serviceDate = inv.ServiceDate.UTC().Format(time.RFC3339Nano)
	}

	return invoiceItem{
		ID:             inv.ID,
		InvoiceNumber:  inv.InvoiceNumber,
		QuoteID:        inv.QuoteID,
		CustomerName:   inv.CustomerName,
		CustomerEmail:  inv.CustomerEmail,
		CustomerPhone:  inv.CustomerPhone,
		ServiceAddress: inv.ServiceAddress,
		Services:       lines,
		DistanceKm:     inv.DistanceKm,
		Subtotal:       inv.Subtotal,
		TravelCost:     inv.TravelCost,
		Taxes:          inv.Taxes,
		Total:          inv.Total,
		Status:         string(inv.Status),
		PaymentMethod:  inv.PaymentMethod,
		ServiceDate:    serviceDate,
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	var lines []entities.QuoteLine
	if it.Services != "" {
		_ = json.Unmarshal([]byte(it.Services), &lines)
	}
	serviceDate, _ := time.Parse(time.RFC3339Nano, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Invoice{
		ID:             it.ID,
		InvoiceNumber:  it.InvoiceNumber,
		QuoteID:        it.QuoteID,
		CustomerName:   it.CustomerName,
		CustomerEmail:  it.CustomerEmail,
		CustomerPhone:  it.CustomerPhone,
		ServiceAddress: it.ServiceAddress,
		Services:       lines,
		DistanceKm:     it.DistanceKm,
		Subtotal:       it.Subtotal,
		TravelCost:     it.TravelCost,
		Taxes:          it.Taxes,
		Total:          it.Total,
		Status:         entities.InvoiceStatus(it.Status),
		PaymentMethod:  it.PaymentMethod,
		ServiceDate:    serviceDate,
		Notes:          it.Notes,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
