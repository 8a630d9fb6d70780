package request

import "jobledger/internal/domain/entities"

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r CreateCustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address}
}
