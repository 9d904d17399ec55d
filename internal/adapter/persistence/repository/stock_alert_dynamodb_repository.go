package repository

import (
	"context"
	"time"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStockAlertsTableName = "stock_alerts"
	stockAlertsProductIDIndex   = "product_id-index"
)

type stockAlertItem struct {
	ID               string `dynamodbav:"id"`
	ProductID        string `dynamodbav:"product_id"`
	NivelVerdeMin    int    `dynamodbav:"nivel_verde_min"`
	NivelVerdeMax    int    `dynamodbav:"nivel_verde_max"`
	NivelAmareloMin  int    `dynamodbav:"nivel_amarelo_min"`
	NivelAmareloMax  int    `dynamodbav:"nivel_amarelo_max"`
	NivelVermelhoMax int    `dynamodbav:"nivel_vermelho_max"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// StockAlertDynamoRepository persists StockAlert entities in DynamoDB
// (stock_alerts table, PK: id, GSI product_id-index).

type StockAlertDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockAlertRepository = (*StockAlertDynamoRepository)(nil)

func NewStockAlertDynamoRepository(ddb *dynamodb.Client) *StockAlertDynamoRepository {
	return &StockAlertDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_ALERTS_TABLE", defaultStockAlertsTableName),
	}
}

func (r *StockAlertDynamoRepository) GetByProductID(ctx context.Context, productID string) (entities.StockAlert, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stockAlertsProductIDIndex),
		KeyConditionExpression: aws.String("#product_id = :product_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":product_id": &types.AttributeValueMemberS{Value: productID},
		},
		ExpressionAttributeNames: map[string]string{
			"#product_id": "product_id",
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.StockAlert{}, err
	}
	if len(out.Items) == 0 {
		return entities.StockAlert{}, nil
	}

	var it stockAlertItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.StockAlert{}, err
	}
	return fromStockAlertItem(it), nil
}

func (r *StockAlertDynamoRepository) Upsert(ctx context.Context, a entities.StockAlert) (entities.StockAlert, error) {
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	av, err := attributevalue.MarshalMap(stockAlertItem{
		ID:               a.ID,
		ProductID:        a.ProductID,
		NivelVerdeMin:    a.NivelVerdeMin,
		NivelVerdeMax:    a.NivelVerdeMax,
		NivelAmareloMin:  a.NivelAmareloMin,
		NivelAmareloMax:  a.NivelAmareloMax,
		NivelVermelhoMax: a.NivelVermelhoMax,
		CreatedAt:        formatTime(a.CreatedAt),
		UpdatedAt:        formatTime(a.UpdatedAt),
	})
	if err != nil {
		return entities.StockAlert{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StockAlert{}, err
	}
	return a, nil
}

func fromStockAlertItem(it stockAlertItem) entities.StockAlert {
	return entities.StockAlert{
		ID:               it.ID,
		ProductID:        it.ProductID,
		NivelVerdeMin:    it.NivelVerdeMin,
		NivelVerdeMax:    it.NivelVerdeMax,
		NivelAmareloMin:  it.NivelAmareloMin,
		NivelAmareloMax:  it.NivelAmareloMax,
		NivelVermelhoMax: it.NivelVermelhoMax,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
