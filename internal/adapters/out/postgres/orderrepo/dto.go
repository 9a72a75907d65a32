// Package orderrepo maps the order aggregate onto the orders and order_lines tables.
package orderrepo

import (
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipping"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Lines live in order_lines.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Address          AddressDTO      `gorm:"embedded;embeddedPrefix:shipping_"`
	ShippingLocation string          `gorm:"type:varchar(255)"`
	ShippingCarrier  string          `gorm:"type:varchar(32)"`
	ShippingCost     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Payment          PaymentDTO      `gorm:"embedded;embeddedPrefix:payment_"`
	Status           int             `gorm:"not null;index"`
	CreatedAt        time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt        time.Time       `gorm:"not null;autoUpdateTime:false"`
	Lines            []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Name        string `gorm:"type:varchar(255);not null"`
	Phone       string `gorm:"type:varchar(32);not null"`
	City        string `gorm:"type:varchar(255);not null"`
	Region      string `gorm:"type:varchar(255);not null"`
	AddressLine string `gorm:"type:varchar(512);not null"`
}

type PaymentDTO struct {
	Method        string     `gorm:"type:varchar(32);not null"`
	PayBillNumber string     `gorm:"type:varchar(64)"`
	AccountNumber string     `gorm:"type:varchar(64)"`
	ProofImage    string     `gorm:"type:varchar(512)"`
	PaidAt        *time.Time
	Status        int        `gorm:"not null"`
}

// LineDTO is a row of order_lines. Position keeps items ahead of packages.
type LineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"primaryKey"`
	RefKind   string          `gorm:"type:varchar(16);not null"`
	RefID     uuid.UUID       `gorm:"type:uuid;not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	address := o.ShippingAddress()
	payment := o.Payment()

	lines := make([]LineDTO, 0, len(o.Items())+len(o.Packages()))
	for i, l := range o.Lines() {
		lines = append(lines, LineDTO{
			OrderID:   orderID,
			Position:  i,
			RefKind:   string(l.Ref().Kind),
			RefID:     l.Ref().ID.Bytes(),
			Name:      l.Name(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: o.CustomerID().Bytes(),
		Address: AddressDTO{
			Name:        address.Name,
			Phone:       address.Phone,
			City:        address.City,
			Region:      address.Region,
			AddressLine: address.AddressLine,
		},
		ShippingLocation: o.ShippingLocation(),
		ShippingCarrier:  string(o.ShippingCarrier()),
		ShippingCost:     o.ShippingCost().Decimal(),
		Subtotal:         o.Subtotal().Decimal(),
		Total:            o.Total().Decimal(),
		Payment: PaymentDTO{
			Method:        string(payment.Method),
			PayBillNumber: payment.PayBillNumber,
			AccountNumber: payment.AccountNumber,
			ProofImage:    payment.ProofImage,
			PaidAt:        payment.PaidAt,
			Status:        int(payment.Status),
		},
		Status:    int(o.Status()),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Lines:     lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	lines := slices.Clone(dto.Lines)
	slices.SortFunc(lines, func(a, b LineDTO) int { return a.Position - b.Position })

	var items, packages []order.Line
	for _, l := range lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		if line.Ref().Kind == catalog.KindPackage {
			packages = append(packages, line)
		} else {
			items = append(items, line)
		}
	}

	var paidAt *time.Time
	if dto.Payment.PaidAt != nil {
		t := dto.Payment.PaidAt.UTC()
		paidAt = &t
	}

	return order.RestoreOrder(order.State{
		Params: order.Params{
			ID:         id,
			CustomerID: customerID,
			Items:      items,
			Packages:   packages,
			ShippingAddress: order.ShippingAddress{
				Name:        dto.Address.Name,
				Phone:       dto.Address.Phone,
				City:        dto.Address.City,
				Region:      dto.Address.Region,
				AddressLine: dto.Address.AddressLine,
			},
			ShippingLocation: dto.ShippingLocation,
			ShippingCarrier:  shipping.Carrier(dto.ShippingCarrier),
			ShippingCost:     shippingCost,
			Payment: order.Payment{
				Method:        order.PaymentMethod(dto.Payment.Method),
				PayBillNumber: dto.Payment.PayBillNumber,
				AccountNumber: dto.Payment.AccountNumber,
				ProofImage:    dto.Payment.ProofImage,
				PaidAt:        paidAt,
				Status:        order.PaymentStatus(dto.Payment.Status),
			},
		},
		Subtotal:  subtotal,
		Total:     total,
		Status:    order.Status(dto.Status),
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
	})
}

func lineToDomain(dto LineDTO) (order.Line, error) {
	refID, err := kernel.UUIDFromBytes(dto.RefID[:])
	if err != nil {
		return order.Line{}, err
	}
	ref, err := catalog.NewRef(catalog.Kind(dto.RefKind), refID)
	if err != nil {
		return order.Line{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}
	return order.NewLine(ref, dto.Name, dto.Quantity, unitPrice)
}
