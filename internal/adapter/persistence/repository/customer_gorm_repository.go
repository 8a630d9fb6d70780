package repository

import (
	"context"
	"errors"
	"time"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerGormRepository)(nil)

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	row := customerRow{
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRow(row), nil
}

func (r *CustomerGormRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	var row customerRow
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerRow(row), nil
}

func (r *CustomerGormRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]entities.Customer, error) {
	out := make(map[int64]entities.Customer, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []customerRow
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = fromCustomerRow(row)
	}
	return out, nil
}

func (r *CustomerGormRepository) List(ctx context.Context) ([]entities.Customer, error) {
	var rows []customerRow
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	list := make([]entities.Customer, 0, len(rows))
	for _, row := range rows {
		list = append(list, fromCustomerRow(row))
	}
	return list, nil
}

func fromCustomerRow(row customerRow) entities.Customer {
	return entities.Customer{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Address:   row.Address,
		CreatedAt: row.CreatedAt.UTC(),
	}
}
