package repository

import (
	"context"
	"errors"
	"sort"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName     = "orders"
	defaultOrderItemsTableName = "order_items"
	orderItemsOrderIDIndex     = "order_id-index"
)

type orderItem struct {
	ID                  string `dynamodbav:"id"`
	Codigo              string `dynamodbav:"codigo"`
	Status              string `dynamodbav:"status"`
	DataCriacao         string `dynamodbav:"data_criacao"`
	PrazoEntregaDias    *int   `dynamodbav:"prazo_entrega_dias,omitempty"`
	DataPrevistaEntrega string `dynamodbav:"data_prevista_entrega,omitempty"`
	Fornecedor          string `dynamodbav:"fornecedor,omitempty"`
	ContatoFornecedor   string `dynamodbav:"contato_fornecedor,omitempty"`
	CreatedBy           string `dynamodbav:"created_by,omitempty"`
}

type orderLineItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	ProductID  string `dynamodbav:"product_id"`
	Quantidade int    `dynamodbav:"quantidade"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - orders: PK id (string)
//   - order_items: PK id (string), GSI order_id-index (PK: order_id)
//
// Creation, item replacement and deletion span both tables and use
// TransactWriteItems so callers never observe an order with a partial
// item set.

type OrderDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	itemsTableName string
	products       *ProductDynamoRepository
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, products *ProductDynamoRepository) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		itemsTableName: getenvDefault("ORDER_ITEMS_TABLE", defaultOrderItemsTableName),
		products:       products,
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order, items []entities.OrderItem) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		itemAV, err := attributevalue.MarshalMap(orderLineItem{
			ID:         it.ID,
			OrderID:    o.ID,
			ProductID:  it.ProductID,
			Quantidade: it.Quantidade,
		})
		if err != nil {
			return entities.Order{}, err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTableName),
				Item:      itemAV,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return entities.Order{}, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	o := fromOrderItem(it)

	items, err := r.queryItems(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	o.Items = items
	if err := r.attachProductSnapshots(ctx, []*entities.Order{&o}); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

// ListWithItems materializes every order: items via the order_id index,
// product snapshots batch-fetched, sorted by creation time descending.
func (r *OrderDynamoRepository) ListWithItems(ctx context.Context) ([]entities.Order, error) {
	orders := make([]entities.Order, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].DataCriacao.After(orders[j].DataCriacao)
	})

	refs := make([]*entities.Order, 0, len(orders))
	for i := range orders {
		items, err := r.queryItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
		refs = append(refs, &orders[i])
	}
	if err := r.attachProductSnapshots(ctx, refs); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderDynamoRepository) ListCodes(ctx context.Context) ([]string, error) {
	codes := make([]string, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("codigo"),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it struct {
				Codigo string `dynamodbav:"codigo"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			codes = append(codes, it.Codigo)
		}
	}
	return codes, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// ReplaceItems deletes the order's current item rows and writes the new
// set in a single transaction.
func (r *OrderDynamoRepository) ReplaceItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	existing, err := r.queryItems(ctx, orderID)
	if err != nil {
		return err
	}

	writes := make([]types.TransactWriteItem, 0, len(existing)+len(items))
	for _, it := range existing {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: it.ID},
				},
			},
		})
	}
	for _, it := range items {
		av, err := attributevalue.MarshalMap(orderLineItem{
			ID:         it.ID,
			OrderID:    orderID,
			ProductID:  it.ProductID,
			Quantidade: it.Quantidade,
		})
		if err != nil {
			return err
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.itemsTableName),
				Item:      av,
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return err
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) error {
	items, err := r.queryItems(ctx, id)
	if err != nil {
		return err
	}

	writes := make([]types.TransactWriteItem, 0, len(items)+1)
	for _, it := range items {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.itemsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: it.ID},
				},
			},
		})
	}
	writes = append(writes, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
		},
	})

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	return err
}

func (r *OrderDynamoRepository) queryItems(ctx context.Context, orderID string) ([]entities.OrderItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(orderItemsOrderIDIndex),
		KeyConditionExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderLineItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, entities.OrderItem{
			ID:         it.ID,
			OrderID:    it.OrderID,
			ProductID:  it.ProductID,
			Quantidade: it.Quantidade,
		})
	}
	return items, nil
}

// attachProductSnapshots resolves codigo/nome/cor for every line item.
// Missing products leave the snapshot fields empty; the list must still
// render.
func (r *OrderDynamoRepository) attachProductSnapshots(ctx context.Context, orders []*entities.Order) error {
	ids := make([]string, 0)
	seen := map[string]bool{}
	for _, o := range orders {
		for _, it := range o.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				ids = append(ids, it.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	products, err := r.products.BatchGetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, o := range orders {
		for i := range o.Items {
			if p, ok := byID[o.Items[i].ProductID]; ok {
				o.Items[i].Codigo = p.Codigo
				o.Items[i].Nome = p.Nome
				o.Items[i].Cor = p.Cor
			}
		}
	}
	return nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                o.ID,
		Codigo:            o.Codigo,
		Status:            string(o.Status),
		DataCriacao:       formatTime(o.DataCriacao),
		PrazoEntregaDias:  o.PrazoEntregaDias,
		Fornecedor:        o.Fornecedor,
		ContatoFornecedor: o.ContatoFornecedor,
		CreatedBy:         o.CreatedBy,
	}
	if o.DataPrevistaEntrega != nil {
		it.DataPrevistaEntrega = formatTime(*o.DataPrevistaEntrega)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                it.ID,
		Codigo:            it.Codigo,
		Status:            entities.OrderStatus(it.Status),
		DataCriacao:       parseTime(it.DataCriacao),
		PrazoEntregaDias:  it.PrazoEntregaDias,
		Fornecedor:        it.Fornecedor,
		ContatoFornecedor: it.ContatoFornecedor,
		CreatedBy:         it.CreatedBy,
	}
	if it.DataPrevistaEntrega != "" {
		t := parseTime(it.DataPrevistaEntrega)
		o.DataPrevistaEntrega = &t
	}
	return o
}
