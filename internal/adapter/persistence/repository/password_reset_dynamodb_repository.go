package repository

import (
	"context"

	"sobujigangas/internal/domain/entities"
	"sobujigangas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPasswordResetsTableName = "password_reset_codes"
	passwordResetsEmailIndex       = "email-index"
)

type passwordResetItem struct {
	ID        string `dynamodbav:"id"`
	Email     string `dynamodbav:"email"`
	Code      string `dynamodbav:"code"`
	ExpiresAt string `dynamodbav:"expires_at"`
	Used      bool   `dynamodbav:"used"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PasswordResetDynamoRepository persists the single-use recovery codes
// (password_reset_codes table, PK: id, GSI email-index).

type PasswordResetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPasswordResetRepository = (*PasswordResetDynamoRepository)(nil)

func NewPasswordResetDynamoRepository(ddb *dynamodb.Client) *PasswordResetDynamoRepository {
	return &PasswordResetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PASSWORD_RESETS_TABLE", defaultPasswordResetsTableName),
	}
}

func (r *PasswordResetDynamoRepository) Create(ctx context.Context, c entities.PasswordResetCode) (entities.PasswordResetCode, error) {
	av, err := attributevalue.MarshalMap(passwordResetItem{
		ID:        c.ID,
		Email:     c.Email,
		Code:      c.Code,
		ExpiresAt: formatTime(c.ExpiresAt),
		Used:      c.Used,
		CreatedAt: formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.PasswordResetCode{}, err
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
		return entities.PasswordResetCode{}, err
	}
	return c, nil
}

// FindActive returns the unused code matching email+code, or a zero-ID
// value. Expiry is the caller's concern; only the used flag filters
// here.
func (r *PasswordResetDynamoRepository) FindActive(ctx context.Context, email, code string) (entities.PasswordResetCode, error) {
	items, err := r.queryByEmail(ctx, email)
	if err != nil {
		return entities.PasswordResetCode{}, err
	}
	for _, it := range items {
		if !it.Used && it.Code == code {
			return fromPasswordResetItem(it), nil
		}
	}
	return entities.PasswordResetCode{}, nil
}

// InvalidateActive burns every unused code for the address, so only the
// most recently issued code can ever validate.
func (r *PasswordResetDynamoRepository) InvalidateActive(ctx context.Context, email string) error {
	items, err := r.queryByEmail(ctx, email)
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.Used {
			continue
		}
		if err := r.MarkUsed(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *PasswordResetDynamoRepository) MarkUsed(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #used = :used"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":used": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#used": "used",
		},
	})
	return err
}

func (r *PasswordResetDynamoRepository) queryByEmail(ctx context.Context, email string) ([]passwordResetItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(passwordResetsEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]passwordResetItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it passwordResetItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func fromPasswordResetItem(it passwordResetItem) entities.PasswordResetCode {
	return entities.PasswordResetCode{
		ID:        it.ID,
		Email:     it.Email,
		Code:      it.Code,
		ExpiresAt: parseTime(it.ExpiresAt),
		Used:      it.Used,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
