package cartrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save inserts the cart row when missing and replaces all of its lines.
// Callers run it inside a unit of work so the replace is atomic.
//
// A customer has one stored cart. When another cart id already holds the
// customer's row, the lines are written under the stored id and the last
// writer wins.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit("Lines").Create(&dto).Error; err != nil {
		return err
	}

	var stored CartDTO
	if err := db.Select("id").Take(&stored, "customer_id = ?", dto.CustomerID).Error; err != nil {
		return err
	}
	for i := range dto.Lines {
		dto.Lines[i].CartID = stored.ID
	}

	if err := db.Where("cart_id = ?", stored.ID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
