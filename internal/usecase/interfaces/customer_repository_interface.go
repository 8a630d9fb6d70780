package interfaces

import (
	"context"

	"jobledger/internal/domain/entities"
)

// ICustomerRepository abstracts persistence for Customer.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
}
