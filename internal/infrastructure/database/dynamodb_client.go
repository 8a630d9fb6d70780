package database

import (
	"context"
	"errors"
	"fmt"

	"jobledger/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const localCredential = "local"

// ReceiptStoreSettings selects the account and endpoint of the receipt table.
type ReceiptStoreSettings struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

func receiptStoreSettings(cfg config.Config) ReceiptStoreSettings {
	return ReceiptStoreSettings{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}
}

// ConnectDynamoDB creates the client behind PAYMENTS_STORE=dynamodb.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	s := receiptStoreSettings(cfg)
	awsCfg, err := LoadReceiptStoreConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, WithReceiptStoreEndpoint(s.Endpoint)), nil
}

// LoadReceiptStoreConfig resolves region and credentials. Static keys are used
// when given or when a custom endpoint (DynamoDB Local) is set; otherwise the
// SDK default chain applies.
func LoadReceiptStoreConfig(ctx context.Context, s ReceiptStoreSettings) (aws.Config, error) {
	if s.Region == "" {
		return aws.Config{}, errors.New("AWS_REGION is required for the dynamodb receipt store")
	}
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(s.Region)}

	if s.AccessKeyID != "" || s.Endpoint != "" {
		key, secret := s.AccessKeyID, s.SecretAccessKey
		if key == "" {
			key, secret = localCredential, localCredential
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// WithReceiptStoreEndpoint points the client at endpoint. Empty keeps the
// regional AWS endpoint.
func WithReceiptStoreEndpoint(endpoint string) func(*dynamodb.Options) {
	return func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}
}

// TableDescriber is the part of the DynamoDB client used by CheckReceiptTable.
type TableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// CheckReceiptTable fails when table is missing or lacks the index receipts
// are listed by, so a misconfigured store is caught at startup instead of on
// the first payment.
func CheckReceiptTable(ctx context.Context, ddb TableDescriber, table, index string) error {
	out, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
	if err != nil {
		return fmt.Errorf("describe table %s: %w", table, err)
	}
	if out.Table == nil {
		return fmt.Errorf("table %s not found", table)
	}
	for _, gsi := range out.Table.GlobalSecondaryIndexes {
		if aws.ToString(gsi.IndexName) == index {
			return nil
		}
	}
	return fmt.Errorf("table %s has no index %s", table, index)
}
