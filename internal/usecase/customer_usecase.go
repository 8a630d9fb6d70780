package usecase

import (
	"context"
	"strings"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type ICustomerUseCase interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetCustomer(ctx context.Context, id int64) (entities.Customer, error)
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, logger: logger}
}

func (u *CustomerUseCase) CreateCustomer(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.ID = 0
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" {
		return entities.Customer{}, validation("Customer name is required.")
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return entities.Customer{}, validation("Customer email is not valid.")
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.logger.Error("[customer][usecase] create failed", zap.Error(err))
		return entities.Customer{}, internal(err)
	}
	return created, nil
}

func (u *CustomerUseCase) GetCustomer(ctx context.Context, id int64) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, validation("Invalid customer id.")
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("[customer][usecase] get failed", zap.Int64("customer_id", id), zap.Error(err))
		return entities.Customer{}, internal(err)
	}
	if c.ID == 0 {
		return entities.Customer{}, notFound("Customer %d not found.", id)
	}
	return c, nil
}

func (u *CustomerUseCase) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error("[customer][usecase] list failed", zap.Error(err))
		return nil, internal(err)
	}
	return list, nil
}
