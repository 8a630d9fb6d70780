package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobledger/internal/clock"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidProviderPayload   = errors.New("invalid payment provider payload")
	ErrPaymentGatewayBadRequest = errors.New("payment gateway bad request")
)

// IPaymentUseCase collects the amount of an invoice through the payment
// provider and closes the invoice once the provider approves.
type IPaymentUseCase interface {
	CollectPayment(ctx context.Context, jobID int64, providerPayload json.RawMessage) (entities.PaymentReceipt, error)
	ListReceipts(ctx context.Context, jobID int64) ([]entities.PaymentReceipt, error)
}

type PaymentUseCase struct {
	receipts interfaces.IPaymentReceiptRepository
	jobRepo  interfaces.IJobRepository
	jobs     IJobUseCase
	gateway  interfaces.IPaymentGateway
	clock    clock.Clock
	logger   *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	receipts interfaces.IPaymentReceiptRepository,
	jobRepo interfaces.IJobRepository,
	jobs IJobUseCase,
	gateway interfaces.IPaymentGateway,
	clk clock.Clock,
	logger *zap.Logger,
) *PaymentUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentUseCase{receipts: receipts, jobRepo: jobRepo, jobs: jobs, gateway: gateway, clock: clk, logger: logger}
}

func (u *PaymentUseCase) CollectPayment(ctx context.Context, jobID int64, providerPayload json.RawMessage) (entities.PaymentReceipt, error) {
	log := u.logger.With(zap.Int64("job_id", jobID))
	log.Info("[payment][usecase] collect start", zap.Int("payload_len", len(providerPayload)))

	if jobID <= 0 {
		return entities.PaymentReceipt{}, validation("Invalid job id.")
	}
	if len(strings.TrimSpace(string(providerPayload))) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		log.Info("[payment][usecase] invalid payload", zap.Error(err))
		return entities.PaymentReceipt{}, &Error{Kind: KindValidation, Message: "Payment payload must be a JSON object.", Err: ErrInvalidProviderPayload}
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.PaymentReceipt{}, internal(errors.New("payment gateway not configured"))
	}

	job, err := u.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		log.Error("[payment][usecase] failed loading job", zap.Error(err))
		return entities.PaymentReceipt{}, internal(err)
	}
	if job.ID == 0 {
		return entities.PaymentReceipt{}, notFound("Job %d not found.", jobID)
	}
	if !workflow.IsInvoiced(job.Status) || job.InvoiceNumber == nil {
		return entities.PaymentReceipt{}, stateError("%s", workflow.TransitionMessage(job.Status, entities.JobStatusPaid))
	}
	invoiceNumber := *job.InvoiceNumber

	// The job total is the source of truth for the charged amount.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = invoiceNumber
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", invoiceNumber)
	}
	reqMap["transaction_amount"] = job.TotalAmount.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.PaymentReceipt{}, internal(err)
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
		if isGatewayBadRequest(err) {
			return entities.PaymentReceipt{}, &Error{Kind: KindValidation, Message: "The payment provider rejected the request.", Err: ErrPaymentGatewayBadRequest}
		}
		return entities.PaymentReceipt{}, internal(err)
	}
	log.Info("[payment][usecase] payment gateway answered",
		zap.String("provider_payment_id", providerID), zap.String("provider_status", providerStatus))

	receipt := entities.PaymentReceipt{
		ID:                 providerID,
		JobID:              jobID,
		InvoiceNumber:      invoiceNumber,
		Amount:             job.TotalAmount,
		Date:               u.clock.Now(),
		Status:             entities.PaymentReceiptApproved,
		ProviderPayloadRaw: providerResp,
	}
	if !strings.EqualFold(providerStatus, "approved") {
		receipt.Status = entities.PaymentReceiptRejected
	}
	saved, err := u.receipts.Create(ctx, receipt)
	if err != nil {
		log.Error("[payment][usecase] receipt create failed", zap.String("receipt_id", receipt.ID), zap.Error(err))
		return entities.PaymentReceipt{}, internal(err)
	}
	if saved.Status != entities.PaymentReceiptApproved {
		return saved, stateError("Payment was not approved by the provider (status '%s').", providerStatus)
	}

	if _, err := u.jobs.RecordPayment(ctx, jobID, nil); err != nil {
		log.Error("[payment][usecase] approved payment could not close the invoice",
			zap.String("receipt_id", saved.ID), zap.Error(err))
		return saved, err
	}
	log.Info("[payment][usecase] collect success", zap.String("receipt_id", saved.ID))
	return saved, nil
}

func (u *PaymentUseCase) ListReceipts(ctx context.Context, jobID int64) ([]entities.PaymentReceipt, error) {
	if jobID <= 0 {
		return nil, validation("Invalid job id.")
	}
	list, err := u.receipts.ListByJobID(ctx, jobID)
	if err != nil {
		u.logger.Error("[payment][usecase] list receipts failed", zap.Int64("job_id", jobID), zap.Error(err))
		return nil, internal(err)
	}
	return list, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}
