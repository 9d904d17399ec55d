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
	defaultProfilesTableName = "profiles"
	profilesEmailIndex       = "email-index"
)

type profileItem struct {
	ID              string          `dynamodbav:"id"`
	Nome            string          `dynamodbav:"nome"`
	Email           string          `dynamodbav:"email"`
	TipoAcesso      string          `dynamodbav:"tipo_acesso"`
	Permissoes      map[string]bool `dynamodbav:"permissoes,omitempty"`
	SenhaTemporaria bool            `dynamodbav:"senha_temporaria"`
	PasswordHash    string          `dynamodbav:"password_hash,omitempty"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// ProfileDynamoRepository persists Profile entities in DynamoDB
// (profiles table, PK: id, GSI email-index).

type ProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb *dynamodb.Client) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROFILES_TABLE", defaultProfilesTableName),
	}
}

func (r *ProfileDynamoRepository) Create(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
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
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) Update(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	av, err := attributevalue.MarshalMap(toProfileItem(p))
	if err != nil {
		return entities.Profile{}, err
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
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}
	return p, nil
}

func (r *ProfileDynamoRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Item) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Profile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(profilesEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Profile{}, err
	}
	if len(out.Items) == 0 {
		return entities.Profile{}, nil
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func (r *ProfileDynamoRepository) List(ctx context.Context) ([]entities.Profile, error) {
	profiles := make([]entities.Profile, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it profileItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			profiles = append(profiles, fromProfileItem(it))
		}
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Nome < profiles[j].Nome })
	return profiles, nil
}

func (r *ProfileDynamoRepository) UpdatePassword(ctx context.Context, id, passwordHash string, temporary bool) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #password_hash = :hash, #senha_temporaria = :temporary"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hash":      &types.AttributeValueMemberS{Value: passwordHash},
			":temporary": &types.AttributeValueMemberBOOL{Value: temporary},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#password_hash":    "password_hash",
			"#senha_temporaria": "senha_temporaria",
		},
	})
	return err
}

func (r *ProfileDynamoRepository) SetPermissions(ctx context.Context, id string, permissoes map[string]bool) (entities.Profile, error) {
	permsAV, err := attributevalue.Marshal(permissoes)
	if err != nil {
		return entities.Profile{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #permissoes = :permissoes"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":permissoes": permsAV,
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#permissoes": "permissoes",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, err
	}

	var it profileItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Profile{}, err
	}
	return fromProfileItem(it), nil
}

func toProfileItem(p entities.Profile) profileItem {
	return profileItem{
		ID:              p.ID,
		Nome:            p.Nome,
		Email:           p.Email,
		TipoAcesso:      string(p.TipoAcesso),
		Permissoes:      p.Permissoes,
		SenhaTemporaria: p.SenhaTemporaria,
		PasswordHash:    p.PasswordHash,
		CreatedAt:       formatTime(p.CreatedAt),
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func fromProfileItem(it profileItem) entities.Profile {
	return entities.Profile{
		ID:              it.ID,
		Nome:            it.Nome,
		Email:           it.Email,
		TipoAcesso:      entities.AppRole(it.TipoAcesso),
		Permissoes:      it.Permissoes,
		SenhaTemporaria: it.SenhaTemporaria,
		PasswordHash:    it.PasswordHash,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
