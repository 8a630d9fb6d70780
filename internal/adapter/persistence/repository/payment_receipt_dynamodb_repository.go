package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultReceiptsTableName = "payment_receipts"
	// ReceiptsJobIDIndex is the GSI receipts are listed by.
	ReceiptsJobIDIndex = "job_id-index"
)

type paymentReceiptItem struct {
	ID                 string `dynamodbav:"id"`
	JobID              string `dynamodbav:"job_id"`
	InvoiceNumber      string `dynamodbav:"invoice_number"`
	Amount             string `dynamodbav:"amount"`
	Date               string `dynamodbav:"date"`
	Status             string `dynamodbav:"status"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// DynamoDBAPI is the subset of the DynamoDB client the receipt store needs.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// PaymentReceiptDynamoRepository persists PaymentReceipt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id, string)
type PaymentReceiptDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentReceiptRepository = (*PaymentReceiptDynamoRepository)(nil)

func NewPaymentReceiptDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentReceiptDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PAYMENTS_TABLE", defaultReceiptsTableName)
	}
	return &PaymentReceiptDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentReceiptDynamoRepository) Create(ctx context.Context, p entities.PaymentReceipt) (entities.PaymentReceipt, error) {
	av, err := attributevalue.MarshalMap(toPaymentReceiptItem(p))
	if err != nil {
		return entities.PaymentReceipt{}, err
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
		return entities.PaymentReceipt{}, err
	}
	return p, nil
}

func (r *PaymentReceiptDynamoRepository) ListByJobID(ctx context.Context, jobID int64) ([]entities.PaymentReceipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ReceiptsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: strconv.FormatInt(jobID, 10)},
		},
	})
	if err != nil {
		return nil, err
	}

	list := make([]entities.PaymentReceipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentReceiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		list = append(list, fromPaymentReceiptItem(it))
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func toPaymentReceiptItem(p entities.PaymentReceipt) paymentReceiptItem {
	return paymentReceiptItem{
		ID:                 p.ID,
		JobID:              strconv.FormatInt(p.JobID, 10),
		InvoiceNumber:      p.InvoiceNumber,
		Amount:             p.Amount.String(),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentReceiptItem(it paymentReceiptItem) entities.PaymentReceipt {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	jobID, _ := strconv.ParseInt(it.JobID, 10, 64)
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.PaymentReceipt{
		ID:                 it.ID,
		JobID:              jobID,
		InvoiceNumber:      it.InvoiceNumber,
		Amount:             amount,
		Date:               dt,
		Status:             entities.PaymentReceiptStatus(it.Status),
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
