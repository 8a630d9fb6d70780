package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"

	PaymentsStoreSQL      = "sql"
	PaymentsStoreDynamoDB = "dynamodb"
)

// Config holds application configuration.
type Config struct {
	HTTPPort string
	LogLevel string
	GinMode  string

	DBType        string
	DBDSN         string
	DBMaxOpenConn int
	DBMaxIdleConn int

	BusinessTimezone      string
	InvoiceDueDays        int
	IdentifierMaxAttempts int

	PaymentsStore          string
	PaymentsTable          string
	AWSRegion              string
	AWSAccessKeyID         string
	AWSSecretAccessKey     string
	DynamoDBEndpoint       string
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

// Load reads configuration from the environment. A .env file is expected to
// have been loaded by the caller.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("DB_TYPE", DBTypeSQLite)
	v.SetDefault("DB_DSN", "file:jobledger.db")
	v.SetDefault("DB_MAX_OPEN_CONN", 10)
	v.SetDefault("DB_MAX_IDLE_CONN", 5)
	v.SetDefault("BUSINESS_TIMEZONE", "UTC")
	v.SetDefault("INVOICE_DUE_DAYS", 30)
	v.SetDefault("IDENTIFIER_MAX_ATTEMPTS", 5)
	v.SetDefault("PAYMENTS_STORE", PaymentsStoreSQL)
	v.SetDefault("PAYMENTS_TABLE", "payment_receipts")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)

	cfg := Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		GinMode:                v.GetString("GIN_MODE"),
		DBType:                 strings.ToLower(strings.TrimSpace(v.GetString("DB_TYPE"))),
		DBDSN:                  v.GetString("DB_DSN"),
		DBMaxOpenConn:          v.GetInt("DB_MAX_OPEN_CONN"),
		DBMaxIdleConn:          v.GetInt("DB_MAX_IDLE_CONN"),
		BusinessTimezone:       v.GetString("BUSINESS_TIMEZONE"),
		InvoiceDueDays:         v.GetInt("INVOICE_DUE_DAYS"),
		IdentifierMaxAttempts:  v.GetInt("IDENTIFIER_MAX_ATTEMPTS"),
		PaymentsStore:          strings.ToLower(strings.TrimSpace(v.GetString("PAYMENTS_STORE"))),
		PaymentsTable:          v.GetString("PAYMENTS_TABLE"),
		AWSRegion:              v.GetString("AWS_REGION"),
		AWSAccessKeyID:         v.GetString("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:     v.GetString("AWS_SECRET_ACCESS_KEY"),
		DynamoDBEndpoint:       v.GetString("DYNAMODB_ENDPOINT"),
		MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     v.GetBool("PAYMENT_GATEWAY_MOCK"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBType {
	case DBTypeSQLite, DBTypePostgres:
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", c.DBType)
	}
	if strings.TrimSpace(c.DBDSN) == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	switch c.PaymentsStore {
	case PaymentsStoreSQL, PaymentsStoreDynamoDB:
	default:
		return fmt.Errorf("unsupported PAYMENTS_STORE %q", c.PaymentsStore)
	}
	if c.AWSAccessKeyID != "" && c.AWSSecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required when AWS_ACCESS_KEY_ID is set")
	}
	if _, err := time.LoadLocation(c.BusinessTimezone); err != nil {
		return fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", c.BusinessTimezone, err)
	}
	if c.InvoiceDueDays <= 0 {
		return fmt.Errorf("INVOICE_DUE_DAYS must be positive, got %d", c.InvoiceDueDays)
	}
	if c.IdentifierMaxAttempts <= 0 {
		return fmt.Errorf("IDENTIFIER_MAX_ATTEMPTS must be positive, got %d", c.IdentifierMaxAttempts)
	}
	return nil
}

// Location returns the business timezone. Validate has already checked it.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
