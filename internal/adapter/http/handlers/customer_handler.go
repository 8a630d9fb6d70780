package handlers

import (
	"net/http"

	request "jobledger/internal/adapter/http/dto/request"
	response "jobledger/internal/adapter/http/dto/response"
	"jobledger/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateCustomerRequest  true  "Customer"
// @Success      201   {object}  response.Result{data=response.CustomerResponse}
// @Failure      400   {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.CreateCustomer(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromCustomer(created)))
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "Customer ID"
// @Success      200  {object}  response.Result{data=response.CustomerResponse}
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		abortWith(c, errInvalidCustomerID)
		return
	}
	customer, err := h.usecase.GetCustomer(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCustomer(customer)))
}

// ListCustomers godoc
// @Summary      List customers by name
// @Tags         customers
// @Produce      json
// @Success      200  {object}  response.Result{data=[]response.CustomerResponse}
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.usecase.ListCustomers(c.Request.Context())
	if err != nil {
		abortWith(c, mapUseCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromCustomers(list)))
}
