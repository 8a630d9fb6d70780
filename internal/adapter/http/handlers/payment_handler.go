package handlers

import (
	"net/http"

	request "jobledger/internal/adapter/http/dto/request"
	response "jobledger/internal/adapter/http/dto/response"
	"jobledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler collects invoice payments through the payment provider.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	logger  *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{usecase: uc, logger: logger}
}

// CollectPayment godoc
// @Summary      Charge an invoice through the payment provider
// @Description  The body is the provider payload, optionally wrapped in {"provider_payload": ...}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      int                             true   "Job ID"
// @Param        body  body      request.CollectPaymentRequest   false  "Provider payload"
// @Success      200   {object}  response.Result{data=response.PaymentReceiptResponse}
// @Failure      409   {object}  pkg.HTTPError
// @Router       /jobs/{id}/payments/collect [post]
func (h *PaymentHandler) CollectPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	payload, err := request.ResolveProviderPayload(raw)
	if err != nil {
		h.logger.Info("[payment][handler] invalid payload", zap.Int64("job_id", id), zap.Error(err))
		abortWith(c, errInvalidPayload)
		return
	}

	receipt, err := h.usecase.CollectPayment(c.Request.Context(), id, payload)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	h.logger.Info("[payment][handler] collect success",
		zap.Int64("job_id", id),
		zap.String("receipt_id", receipt.ID),
		zap.String("status", string(receipt.Status)),
	)
	c.JSON(http.StatusOK, response.OK(response.FromPaymentReceipt(receipt)))
}

// ListReceipts godoc
// @Summary      List payment receipts of a job, newest first
// @Tags         payments
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Result{data=[]response.PaymentReceiptResponse}
// @Router       /jobs/{id}/payments [get]
func (h *PaymentHandler) ListReceipts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	receipts, err := h.usecase.ListReceipts(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromPaymentReceipts(receipts)))
}
