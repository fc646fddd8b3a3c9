package repository

import (
	"context"
	"encoding/json"
	"sort"

	"mecanique_mobile/internal/domain/entities"
	"mecanique_mobile/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceCatalogItem struct {
	ServiceID   string  `dynamodbav:"service_id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	BasePrice   float64 `dynamodbav:"base_price"`
	Options     string  `dynamodbav:"options,omitempty"`
	Active      bool    `dynamodbav:"active"`
	SortOrder   int     `dynamodbav:"sort_order"`
}

// ServiceCatalogDynamoRepository reads the service catalog from DynamoDB.
//
// Table requirements:
//   - PK: service_id (string)
//
// Options are stored as a JSON array because their order is meaningful:
// selections address options by position within a snapshot.

type ServiceCatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceCatalogRepository = (*ServiceCatalogDynamoRepository)(nil)

func NewServiceCatalogDynamoRepository(ddb *dynamodb.Client) *ServiceCatalogDynamoRepository {
	return &ServiceCatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

// ListActive returns the active offerings ordered by sort_order so every
// snapshot presents services in the same order.
func (r *ServiceCatalogDynamoRepository) ListActive(ctx context.Context) ([]entities.ServiceCatalogEntry, error) {
	var (
		items    []serviceCatalogItem
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#active = :active"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":active": &types.AttributeValueMemberBOOL{Value: true},
			},
			ExpressionAttributeNames: map[string]string{
				"#active": "active",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it serviceCatalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })

	entries := make([]entities.ServiceCatalogEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, fromServiceCatalogItem(it))
	}
	return entries, nil
}

func fromServiceCatalogItem(it serviceCatalogItem) entities.ServiceCatalogEntry {
	var options []entities.ServiceOption
	if it.Options != "" {
		_ = json.Unmarshal([]byte(it.Options), &options)
	}
	return entities.ServiceCatalogEntry{
		ServiceID:   it.ServiceID,
		Name:        it.Name,
		Description: it.Description,
		BasePrice:   it.BasePrice,
		Options:     options,
		Active:      it.Active,
	}
}
