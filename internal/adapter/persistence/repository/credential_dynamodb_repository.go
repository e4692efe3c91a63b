package repository

import (
	"context"
	"time"

	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/domain/entities"
	"github.com/fathomstudio/killbill-basecommerce-plugin/internal/usecase/interfaces"
	"github.com/fathomstudio/killbill-basecommerce-plugin/pkg/secrets"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCredentialsTableName = "credentials"

type credentialItem struct {
	TenantID    string `dynamodbav:"tenant_id"`
	Username    string `dynamodbav:"username"`
	Password    string `dynamodbav:"password"`
	APIKey      string `dynamodbav:"api_key"`
	SandboxMode bool   `dynamodbav:"sandbox_mode"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CredentialDynamoRepository persists TenantCredentials in DynamoDB.
// Password and api_key attributes are stored encrypted.
//
// Table requirements:
//   - PK: tenant_id (string)

type CredentialDynamoRepository struct {
	ddb       *dynamodb.Client
	cipher    *secrets.Cipher
	tableName string
}

var _ interfaces.ICredentialStore = (*CredentialDynamoRepository)(nil)

func NewCredentialDynamoRepository(ddb *dynamodb.Client, cipher *secrets.Cipher) *CredentialDynamoRepository {
	return &CredentialDynamoRepository{
		ddb:       ddb,
		cipher:    cipher,
		tableName: getenvDefault("CREDENTIALS_TABLE", defaultCredentialsTableName),
	}
}

// Upsert writes the credentials unconditionally; re-uploading a tenant
// configuration replaces the previous record.
func (r *CredentialDynamoRepository) Upsert(ctx context.Context, c entities.TenantCredentials) (entities.TenantCredentials, error) {
	it, err := r.toCredentialItem(c)
	if err != nil {
		return entities.TenantCredentials{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TenantCredentials{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TenantCredentials{}, err
	}
	return c, nil
}

func (r *CredentialDynamoRepository) GetByTenantID(ctx context.Context, tenantID string) (entities.TenantCredentials, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TenantCredentials{}, err
	}
	if len(out.Item) == 0 {
		return entities.TenantCredentials{}, nil
	}

	var it credentialItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TenantCredentials{}, err
	}
	return r.fromCredentialItem(it)
}

func (r *CredentialDynamoRepository) toCredentialItem(c entities.TenantCredentials) (credentialItem, error) {
	password, err := r.cipher.Encrypt(c.Password)
	if err != nil {
		return credentialItem{}, err
	}
	apiKey, err := r.cipher.Encrypt(c.APIKey)
	if err != nil {
		return credentialItem{}, err
	}
	return credentialItem{
		TenantID:    c.TenantID,
		Username:    c.Username,
		Password:    password,
		APIKey:      apiKey,
		SandboxMode: c.SandboxMode,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

func (r *CredentialDynamoRepository) fromCredentialItem(it credentialItem) (entities.TenantCredentials, error) {
	password, err := r.cipher.Decrypt(it.Password)
	if err != nil {
		return entities.TenantCredentials{}, err
	}
	apiKey, err := r.cipher.Decrypt(it.APIKey)
	if err != nil {
		return entities.TenantCredentials{}, err
	}
	return entities.TenantCredentials{
		TenantID:    it.TenantID,
		Username:    it.Username,
		Password:    password,
		APIKey:      apiKey,
		SandboxMode: it.SandboxMode,
	}, nil
}
