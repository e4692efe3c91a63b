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

const defaultPaymentMethodsTableName = "payment_methods"

type paymentMethodItem struct {
	PaymentMethodID string `dynamodbav:"payment_method_id"`
	GatewayToken    string `dynamodbav:"gateway_token"`
	Type            string `dynamodbav:"type"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// PaymentMethodDynamoRepository persists stored payment methods in DynamoDB.
// The gateway_token attribute is stored encrypted.
//
// Table requirements:
//   - PK: payment_method_id (string)

type PaymentMethodDynamoRepository struct {
	ddb       *dynamodb.Client
	cipher    *secrets.Cipher
	tableName string
}

var _ interfaces.IPaymentMethodStore = (*PaymentMethodDynamoRepository)(nil)

func NewPaymentMethodDynamoRepository(ddb *dynamodb.Client, cipher *secrets.Cipher) *PaymentMethodDynamoRepository {
	return &PaymentMethodDynamoRepository{
		ddb:       ddb,
		cipher:    cipher,
		tableName: getenvDefault("PAYMENT_METHODS_TABLE", defaultPaymentMethodsTableName),
	}
}

// Upsert writes the payment method unconditionally; re-registering the same
// id replaces the stored token.
func (r *PaymentMethodDynamoRepository) Upsert(ctx context.Context, m entities.StoredPaymentMethod) (entities.StoredPaymentMethod, error) {
	token, err := r.cipher.Encrypt(m.GatewayToken)
	if err != nil {
		return entities.StoredPaymentMethod{}, err
	}
	av, err := attributevalue.MarshalMap(paymentMethodItem{
		PaymentMethodID: m.PaymentMethodID,
		GatewayToken:    token,
		Type:            string(m.Type),
		UpdatedAt:       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.StoredPaymentMethod{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StoredPaymentMethod{}, err
	}
	return m, nil
}

func (r *PaymentMethodDynamoRepository) GetByID(ctx context.Context, paymentMethodID string) (entities.StoredPaymentMethod, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"payment_method_id": &types.AttributeValueMemberS{Value: paymentMethodID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoredPaymentMethod{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoredPaymentMethod{}, nil
	}

	var it paymentMethodItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StoredPaymentMethod{}, err
	}
	token, err := r.cipher.Decrypt(it.GatewayToken)
	if err != nil {
		return entities.StoredPaymentMethod{}, err
	}
	return entities.StoredPaymentMethod{
		PaymentMethodID: it.PaymentMethodID,
		GatewayToken:    token,
		Type:            entities.PaymentMethodType(it.Type),
	}, nil
}
