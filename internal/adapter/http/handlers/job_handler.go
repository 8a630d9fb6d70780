package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	request "jobledger/internal/adapter/http/dto/request"
	response "jobledger/internal/adapter/http/dto/response"
	"jobledger/internal/domain/entities"
	"jobledger/internal/domain/workflow"
	"jobledger/internal/usecase"
	"jobledger/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler exposes the job lifecycle: estimates, transitions, invoicing and
// payment recording.
type JobHandler struct {
	usecase usecase.IJobUseCase
	logger  *zap.Logger
}

func NewJobHandler(uc usecase.IJobUseCase, logger *zap.Logger) *JobHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobHandler{usecase: uc, logger: logger}
}

// CreateEstimate godoc
// @Summary      Create an estimate
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateEstimateRequest  true  "Estimate"
// @Success      201   {object}  response.Result{data=response.JobResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /jobs [post]
func (h *JobHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.CreateEstimate(c.Request.Context(), payload.CustomerID, request.ToLineItems(payload.LineItems), payload.Notes)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromJob(job)))
}

// UpdateEstimate godoc
// @Summary      Replace line items and/or notes of an estimate
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int                            true  "Job ID"
// @Param        body  body      request.UpdateEstimateRequest  true  "Changes"
// @Success      200   {object}  response.Result{data=response.JobResponse}
// @Failure      409   {object}  pkg.HTTPError
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	var payload request.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.UpdateEstimate(c.Request.Context(), id, payload.ResolveLineItems(), payload.Notes)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJob(job)))
}

// DeleteEstimate godoc
// @Summary      Delete an estimate that was not approved yet
// @Tags         jobs
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Result
// @Failure      409  {object}  pkg.HTTPError
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteEstimate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	if err := h.usecase.DeleteEstimate(c.Request.Context(), id); err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(nil))
}

// @Summary  Mark an estimate as sent
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  200  {object}  response.Result{data=response.JobResponse}
// @Router   /jobs/{id}/send [post]
func (h *JobHandler) MarkEstimateSent(c *gin.Context) {
	h.transition(c, "send", h.usecase.MarkEstimateSent)
}

// @Summary  Approve an estimate
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  200  {object}  response.Result{data=response.JobResponse}
// @Router   /jobs/{id}/approve [post]
func (h *JobHandler) ApproveEstimate(c *gin.Context) {
	h.transition(c, "approve", h.usecase.ApproveEstimate)
}

// @Summary  Start work on an approved job
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  200  {object}  response.Result{data=response.JobResponse}
// @Router   /jobs/{id}/start [post]
func (h *JobHandler) StartJob(c *gin.Context) {
	h.transition(c, "start", h.usecase.StartJob)
}

// @Summary  Complete a job in progress
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  200  {object}  response.Result{data=response.JobResponse}
// @Router   /jobs/{id}/complete [post]
func (h *JobHandler) CompleteJob(c *gin.Context) {
	h.transition(c, "complete", h.usecase.CompleteJob)
}

// @Summary  Invoice a completed job
// @Tags     jobs
// @Param    id  path  int  true  "Job ID"
// @Success  200  {object}  response.Result{data=response.JobResponse}
// @Router   /jobs/{id}/invoice [post]
func (h *JobHandler) CreateInvoice(c *gin.Context) {
	h.transition(c, "invoice", h.usecase.CreateInvoice)
}

// RecordPayment godoc
// @Summary      Record the payment of an invoice
// @Tags         jobs
// @Accept       json
// @Param        id    path      int                           true   "Job ID"
// @Param        body  body      request.RecordPaymentRequest  false  "Payment date"
// @Success      200   {object}  response.Result{data=response.JobResponse}
// @Router       /jobs/{id}/payment [post]
func (h *JobHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	var payload request.RecordPaymentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
	}
	paymentDate, err := payload.ResolvePaymentDate()
	if err != nil {
		abortWith(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Payment date must be formatted as YYYY-MM-DD.", http.StatusBadRequest))
		return
	}

	job, err := h.usecase.RecordPayment(c.Request.Context(), id, paymentDate)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJob(job)))
}

// UpdateStatus godoc
// @Summary      Move a job to a requested status
// @Description  Dispatches to the dedicated operation of the requested status.
// @Tags         jobs
// @Accept       json
// @Param        id    path      int                          true  "Job ID"
// @Param        body  body      request.UpdateStatusRequest  true  "Requested status"
// @Success      200   {object}  response.Result{data=response.JobResponse}
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	requested, err := entities.ParseJobStatus(payload.Status)
	if err != nil {
		abortWith(c, pkg.NewDomainError("VALIDATION_ERROR", "Unknown status '"+payload.Status+"'.", err, http.StatusBadRequest))
		return
	}

	job, err := h.usecase.UpdateJobStatus(c.Request.Context(), id, requested)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJob(job)))
}

// UpdateNotes godoc
// @Summary      Change the notes of a job
// @Tags         jobs
// @Accept       json
// @Param        id    path      int                         true  "Job ID"
// @Param        body  body      request.UpdateNotesRequest  true  "Notes"
// @Success      200   {object}  response.Result{data=response.JobResponse}
// @Router       /jobs/{id}/notes [patch]
func (h *JobHandler) UpdateNotes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	var payload request.UpdateNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	job, err := h.usecase.UpdateJobNotes(c.Request.Context(), id, payload.Notes)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJob(job)))
}

// GetJob godoc
// @Summary      Get a job with customer, line items and aging
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Result{data=response.JobResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}
	view, err := h.usecase.GetJob(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJobView(view)))
}

// ListJobs godoc
// @Summary      List jobs, newest first
// @Tags         jobs
// @Produce      json
// @Param        group        query     string  false  "all, estimates, active, invoiced or paid"
// @Param        customer_id  query     int     false  "Customer ID"
// @Param        overdue      query     bool    false  "Only overdue invoices"
// @Success      200          {object}  response.Result{data=[]response.JobResponse}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	group, err := workflow.ParseGroup(c.Query("group"))
	if err != nil {
		abortWith(c, pkg.NewDomainError("VALIDATION_ERROR", "Unknown status group '"+c.Query("group")+"'.", err, http.StatusBadRequest))
		return
	}
	filter := usecase.JobFilter{Group: group}
	if raw := strings.TrimSpace(c.Query("customer_id")); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || customerID <= 0 {
			abortWith(c, errInvalidCustomerID)
			return
		}
		filter.CustomerID = customerID
	}
	if raw := strings.TrimSpace(c.Query("overdue")); raw != "" {
		overdue, err := strconv.ParseBool(raw)
		if err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		filter.OverdueOnly = overdue
	}

	views, err := h.usecase.ListJobs(c.Request.Context(), filter)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJobViews(views)))
}

// Dashboard godoc
// @Summary      Lifecycle counts and receivable totals
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.Result{data=response.DashboardResponse}
// @Router       /dashboard [get]
func (h *JobHandler) Dashboard(c *gin.Context) {
	summary, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDashboard(summary)))
}

func (h *JobHandler) transition(
	c *gin.Context,
	action string,
	op func(ctx context.Context, id int64) (entities.Job, error),
) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidJobID)
		return
	}

	job, err := op(c.Request.Context(), id)
	if err != nil {
		h.logger.Debug("[job][handler] transition rejected",
			zap.String("action", action),
			zap.Int64("job_id", id),
			zap.Error(err),
		)
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromJob(job)))
}
