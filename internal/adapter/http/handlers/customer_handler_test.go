package handlers

import (
	"net/http"
	"testing"

	"jobledger/internal/adapter/http/handlers/mocks"
	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(h *CustomerHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/customers", h.CreateCustomer)
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/customers/:id", h.GetCustomer)
	return r
}

func TestCustomerHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create requires name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(NewCustomerHandler(uc))

		if w := doJSON(r, http.MethodPost, "/v1/customers", `{"email":"a@b.c"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(NewCustomerHandler(uc))

		uc.EXPECT().CreateCustomer(gomock.Any(), entities.Customer{Name: "Acme", Email: "ops@acme.test"}).
			Return(entities.Customer{ID: 1, Name: "Acme", Email: "ops@acme.test"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/customers", `{"name":"Acme","email":"ops@acme.test"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(NewCustomerHandler(uc))

		uc.EXPECT().GetCustomer(gomock.Any(), int64(8)).Return(entities.Customer{}, &usecase.Error{Kind: usecase.KindNotFound, Message: "Customer 8 not found."})

		if w := doJSON(r, http.MethodGet, "/v1/customers/8", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodGet, "/v1/customers/0", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newCustomerRouter(NewCustomerHandler(uc))

		uc.EXPECT().ListCustomers(gomock.Any()).Return([]entities.Customer{{ID: 1, Name: "Acme"}}, nil)

		if w := doJSON(r, http.MethodGet, "/v1/customers", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
