// Package customerrepo reads customer contact details owned by the accounts service.
package customerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255)"`
	Email string    `gorm:"type:varchar(255)"`
	Phone string    `gorm:"type:varchar(32)"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// GormCustomerDirectory implements ports.CustomerDirectory using GORM.
type GormCustomerDirectory struct {
	db *gorm.DB
}

func NewGormCustomerDirectory(db *gorm.DB) *GormCustomerDirectory {
	return &GormCustomerDirectory{db: db}
}

func (d *GormCustomerDirectory) GetContact(ctx context.Context, customerID kernel.UUID) (ports.Contact, error) {
	if err := customerID.Validate(); err != nil {
		return ports.Contact{}, err
	}

	var dto CustomerDTO
	if err := d.db.WithContext(ctx).First(&dto, "id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Contact{}, errs.NewObjectNotFoundError("customer", customerID.String())
		}
		return ports.Contact{}, err
	}

	return ports.Contact{Name: dto.Name, Email: dto.Email, Phone: dto.Phone}, nil
}
