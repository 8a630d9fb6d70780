package routes

import (
	"jobledger/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathJobs      = "/jobs"
	PathWorkflow  = "/workflow"
	PathDashboard = "/dashboard"
)

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
	}
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler, paymentHandler *handlers.PaymentHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", h.CreateEstimate)
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
		jobs.PUT("/:id", h.UpdateEstimate)
		jobs.DELETE("/:id", h.DeleteEstimate)
		jobs.PATCH("/:id/notes", h.UpdateNotes)
		jobs.PATCH("/:id/status", h.UpdateStatus)

		jobs.POST("/:id/send", h.MarkEstimateSent)
		jobs.POST("/:id/approve", h.ApproveEstimate)
		jobs.POST("/:id/start", h.StartJob)
		jobs.POST("/:id/complete", h.CompleteJob)
		jobs.POST("/:id/invoice", h.CreateInvoice)
		jobs.POST("/:id/payment", h.RecordPayment)

		jobs.POST("/:id/payments/collect", paymentHandler.CollectPayment)
		jobs.GET("/:id/payments", paymentHandler.ListReceipts)
	}
}

func addWorkflowRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	rg.GET(PathWorkflow+"/statuses", handlers.ListStatuses)
	rg.GET(PathDashboard, h.Dashboard)
}
