package repository

import (
	"context"
	"sort"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultStockMovementsTableName = "stock_movements"
	stockMovementsProductIDIndex   = "product_id-index"
)

type stockMovementItem struct {
	ID         string `dynamodbav:"id"`
	ProductID  string `dynamodbav:"product_id"`
	Tipo       string `dynamodbav:"tipo"`
	Quantidade int    `dynamodbav:"quantidade"`
	CreatedBy  string `dynamodbav:"created_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// StockMovementDynamoRepository persists StockMovement entities in
// DynamoDB (stock_movements table, PK: id, GSI product_id-index).

type StockMovementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockMovementRepository = (*StockMovementDynamoRepository)(nil)

func NewStockMovementDynamoRepository(ddb *dynamodb.Client) *StockMovementDynamoRepository {
	return &StockMovementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_MOVEMENTS_TABLE", defaultStockMovementsTableName),
	}
}

func (r *StockMovementDynamoRepository) Record(ctx context.Context, m entities.StockMovement) (entities.StockMovement, error) {
	av, err := attributevalue.MarshalMap(stockMovementItem{
		ID:         m.ID,
		ProductID:  m.ProductID,
		Tipo:       m.Tipo,
		Quantidade: m.Quantidade,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.StockMovement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StockMovement{}, err
	}
	return m, nil
}

// List returns movements oldest first. With a productID it queries the
// index; without one it scans the whole table.
func (r *StockMovementDynamoRepository) List(ctx context.Context, productID string) ([]entities.StockMovement, error) {
	var raws []map[string]types.AttributeValue

	if productID != "" {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(stockMovementsProductIDIndex),
			KeyConditionExpression: aws.String("#product_id = :product_id"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":product_id": &types.AttributeValueMemberS{Value: productID},
			},
			ExpressionAttributeNames: map[string]string{
				"#product_id": "product_id",
			},
		})
		if err != nil {
			return nil, err
		}
		raws = out.Items
	} else {
		p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
		for p.HasMorePages() {
			page, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			raws = append(raws, page.Items...)
		}
	}

	movements := make([]entities.StockMovement, 0, len(raws))
	for _, raw := range raws {
		var it stockMovementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		movements = append(movements, entities.StockMovement{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Tipo:       it.Tipo,
			Quantidade: it.Quantidade,
			CreatedBy:  it.CreatedBy,
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}

	sort.Slice(movements, func(i, j int) bool {
		return movements[i].CreatedAt.Before(movements[j].CreatedAt)
	})
	return movements, nil
}
