package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProductsTableName = "products"
	batchGetChunkSize        = 100
)

type productItem struct {
	ID            string  `dynamodbav:"id"`
	Codigo        string  `dynamodbav:"codigo"`
	Nome          string  `dynamodbav:"nome"`
	Cor           string  `dynamodbav:"cor,omitempty"`
	CodigoBarras  string  `dynamodbav:"codigo_barras,omitempty"`
	EstoqueAtual  int     `dynamodbav:"estoque_atual"`
	EstoqueBaixo  bool    `dynamodbav:"estoque_baixo"`
	ValorUnitario float64 `dynamodbav:"valor_unitario"`
	ValorVenda    float64 `dynamodbav:"valor_venda"`
	Markup        float64 `dynamodbav:"markup"`
	Fornecedor    string  `dynamodbav:"fornecedor,omitempty"`
	FotoURL       string  `dynamodbav:"foto_url,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB
// (products table, PK: id).

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	av, err := attributevalue.MarshalMap(toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := make([]entities.Product, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
	}

	sort.Slice(products, func(i, j int) bool { return products[i].Nome < products[j].Nome })
	return products, nil
}

// BatchGetByIDs fetches products in chunks of 100, the BatchGetItem
// request limit. Missing ids are silently skipped.
func (r *ProductDynamoRepository) BatchGetByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	products := make([]entities.Product, 0, len(ids))

	for start := 0; start < len(ids); start += batchGetChunkSize {
		end := start + batchGetChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.tableName: {Keys: keys},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Responses[r.tableName] {
			var it productItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			products = append(products, fromProductItem(it))
		}
	}
	return products, nil
}

// AdjustStock applies a signed delta to estoque_atual atomically and
// returns the updated product. Unknown ids yield a zero-ID product.
func (r *ProductDynamoRepository) AdjustStock(ctx context.Context, id string, delta int) (entities.Product, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("ADD #estoque :delta"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", delta)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#estoque": "estoque_atual",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) SetLowStockFlag(ctx context.Context, id string, low bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #estoque_baixo = :low"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":low": &types.AttributeValueMemberBOOL{Value: low},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#estoque_baixo": "estoque_baixo",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
	}
	return err
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:            p.ID,
		Codigo:        p.Codigo,
		Nome:          p.Nome,
		Cor:           p.Cor,
		CodigoBarras:  p.CodigoBarras,
		EstoqueAtual:  p.EstoqueAtual,
		EstoqueBaixo:  p.EstoqueBaixo,
		ValorUnitario: p.ValorUnitario,
		ValorVenda:    p.ValorVenda,
		Markup:        p.Markup,
		Fornecedor:    p.Fornecedor,
		FotoURL:       p.FotoURL,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProductItem(it productItem) entities.Product {
	return entities.Product{
		ID:            it.ID,
		Codigo:        it.Codigo,
		Nome:          it.Nome,
		Cor:           it.Cor,
		CodigoBarras:  it.CodigoBarras,
		EstoqueAtual:  it.EstoqueAtual,
		EstoqueBaixo:  it.EstoqueBaixo,
		ValorUnitario: it.ValorUnitario,
		ValorVenda:    it.ValorVenda,
		Markup:        it.Markup,
		Fornecedor:    it.Fornecedor,
		FotoURL:       it.FotoURL,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
