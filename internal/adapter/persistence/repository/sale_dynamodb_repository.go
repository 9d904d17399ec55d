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
	defaultSalesTableName     = "sales"
	defaultSaleItemsTableName = "sale_items"
	saleItemsSaleIDIndex      = "sale_id-index"
)

type saleItem struct {
	ID        string  `dynamodbav:"id"`
	Codigo    string  `dynamodbav:"codigo"`
	Total     float64 `dynamodbav:"total"`
	CreatedBy string  `dynamodbav:"created_by,omitempty"`
	DataVenda string  `dynamodbav:"data_venda"`
}

type saleLineItem struct {
	ID            string  `dynamodbav:"id"`
	SaleID        string  `dynamodbav:"sale_id"`
	ProductID     string  `dynamodbav:"product_id"`
	Quantidade    int     `dynamodbav:"quantidade"`
	ValorUnitario float64 `dynamodbav:"valor_unitario"`
	Subtotal      float64 `dynamodbav:"subtotal"`
	Nome          string  `dynamodbav:"nome,omitempty"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - sales: PK id (string)
//   - sale_items: PK id (string), GSI sale_id-index (PK: sale_id)
//
// Line items carry the product name and unit price frozen at sale time,
// so later catalog edits never rewrite history.

type SaleDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("SALES_TABLE", defaultSalesTableName),
		itemsTableName: getenvDefault("SALE_ITEMS_TABLE", defaultSaleItemsTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale, items []entities.SaleItem) (entities.Sale, error) {
	av, err := attributevalue.MarshalMap(saleItem{
		ID:        s.ID,
		Codigo:    s.Codigo,
		Total:     s.Total,
		CreatedBy: s.CreatedBy,
		DataVenda: formatTime(s.DataVenda),
	})
	if err != nil {
		return entities.Sale{}, err
	}

	writes := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}
	for _, it := range items {
		itemAV, err := attributevalue.MarshalMap(saleLineItem{
			ID:            it.ID,
			SaleID:        s.ID,
			ProductID:     it.ProductID,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Subtotal:      it.Subtotal,
			Nome:          it.Nome,
		})
		if err != nil {
			return entities.Sale{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTableName),
				Item:      itemAV,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Sale{}, err
	}
	s.Items = items
	return s, nil
}

func (r *SaleDynamoRepository) ListWithItems(ctx context.Context) ([]entities.Sale, error) {
	sales := make([]entities.Sale, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it saleItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			sales = append(sales, entities.Sale{
				ID:        it.ID,
				Codigo:    it.Codigo,
				Total:     it.Total,
				CreatedBy: it.CreatedBy,
				DataVenda: parseTime(it.DataVenda),
			})
		}
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].DataVenda.After(sales[j].DataVenda)
	})

	for i := range sales {
		items, err := r.queryItems(ctx, sales[i].ID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}
	return sales, nil
}

func (r *SaleDynamoRepository) queryItems(ctx context.Context, saleID string) ([]entities.SaleItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(saleItemsSaleIDIndex),
		KeyConditionExpression: aws.String("#sale_id = :sale_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sale_id": &types.AttributeValueMemberS{Value: saleID},
		},
		ExpressionAttributeNames: map[string]string{
			"#sale_id": "sale_id",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.SaleItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it saleLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.SaleItem{
			ID:            it.ID,
			SaleID:        it.SaleID,
			ProductID:     it.ProductID,
			Quantidade:    it.Quantidade,
			ValorUnitario: it.ValorUnitario,
			Subtotal:      it.Subtotal,
			Nome:          it.Nome,
		})
	}
	return items, nil
}
