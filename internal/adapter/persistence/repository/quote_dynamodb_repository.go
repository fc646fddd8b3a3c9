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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	ID              string  `dynamodbav:"id"`
	CustomerName    string  `dynamodbav:"customer_name"`
	CustomerEmail   string  `dynamodbav:"customer_email"`
	CustomerPhone   string  `dynamodbav:"customer_phone"`
	CustomerAddress string  `dynamodbav:"customer_address"`
	VehicleInfo     string  `dynamodbav:"vehicle_info"`
	VehicleVIN      string  `dynamodbav:"vehicle_vin,omitempty"`
	Services        string  `dynamodbav:"services"`
	DistanceKm      float64 `dynamodbav:"distance_km"`
	Subtotal        float64 `dynamodbav:"subtotal"`
	TravelCost      float64 `dynamodbav:"travel_cost"`
	Taxes           float64 `dynamodbav:"taxes"`
	Total           float64 `dynamodbav:"total"`
	PreferredDate   string  `dynamodbav:"preferred_date"`
	TimeSlot        string  `dynamodbav:"time_slot"`
	Status          string  `dynamodbav:"status"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Quote lines are frozen at submission time, so they are stored as one JSON
// document instead of a DynamoDB list; nothing ever queries into them.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it, err := toQuoteItem(q)
	if err != nil {
		return entities.Quote{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// List scans the full table. The quote volume of a single workshop stays
// well inside one scan page for a long time; pagination is handled anyway.
func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var (
		quotes   []entities.Quote
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
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
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
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) (quoteItem, error) {
	lines, err := json.Marshal(q.Services)
	if err != nil {
		return quoteItem{}, err
	}
	return quoteItem{
		ID:              q.ID,
		CustomerName:    q.CustomerName,
		CustomerEmail:   q.CustomerEmail,
		CustomerPhone:   q.CustomerPhone,
		CustomerAddress: q.CustomerAddress,
		VehicleInfo:     q.VehicleInfo,
		VehicleVIN:      q.VehicleVIN,
		Services:        string(lines),
		DistanceKm:      q.DistanceKm,
		Subtotal:        q.Subtotal,
		TravelCost:      q.TravelCost,
		Taxes:           q.Taxes,
		Total:           q.Total,
		PreferredDate:   q.PreferredDate.UTC().Format(time.RFC3339Nano),
		TimeSlot:        q.TimeSlot,
		Status:          string(q.Status),
		CreatedAt:       q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuoteItem(it quoteItem) entities.Quote {
	var lines []entities.QuoteLine
	_ = json.Unmarshal([]byte(it.Services), &lines)
	preferredAt, _ := time.Parse(time.RFC3339Nano, it.PreferredDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerEmail:   it.CustomerEmail,
		CustomerPhone:   it.CustomerPhone,
		CustomerAddress: it.CustomerAddress,
		VehicleInfo:     it.VehicleInfo,
		VehicleVIN:      it.VehicleVIN,
		Services:        lines,
		DistanceKm:      it.DistanceKm,
		Subtotal:        it.Subtotal,
		TravelCost:      it.TravelCost,
		Taxes:           it.Taxes,
		Total:           it.Total,
		PreferredDate:   preferredAt,
		TimeSlot:        it.TimeSlot,
		Status:          entities.QuoteStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
