package repository

import (
	"context"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAccountsTableName = "accounts"

type accountItem struct {
	ID             string `dynamodbav:"id"`
	Email          string `dynamodbav:"email"`
	DisplayName    string `dynamodbav:"display_name"`
	CredentialHash string `dynamodbav:"credential_hash"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// AccountDynamoRepository persists CustomerAccount entities in DynamoDB.
//
// Table requirements:
//   - PK: email (string); the normalized email is the natural key.

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.CustomerAccount) (entities.CustomerAccount, error) {
	av, err := attributevalue.MarshalMap(accountItem{
		ID:             a.ID,
		Email:          a.Email,
		DisplayName:    a.DisplayName,
		CredentialHash: a.CredentialHash,
		CreatedAt:      a.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.CustomerAccount{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#email)"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
	})
	if err != nil {
		return entities.CustomerAccount{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.CustomerAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CustomerAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.CustomerAccount{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CustomerAccount{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.CustomerAccount{
		ID:             it.ID,
		Email:          it.Email,
		DisplayName:    it.DisplayName,
		CredentialHash: it.CredentialHash,
		CreatedAt:      createdAt,
	}, nil
}
