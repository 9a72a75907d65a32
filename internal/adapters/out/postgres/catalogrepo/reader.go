package catalogrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogReader implements ports.CatalogReader using GORM.
type GormCatalogReader struct {
	db *gorm.DB
}

func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// FindEntries loads the entries that still exist, products first.
func (r *GormCatalogReader) FindEntries(ctx context.Context, refs []catalog.Ref) ([]catalog.Entry, error) {
	ids := map[catalog.Kind][]uuid.UUID{}
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
		ids[ref.Kind] = append(ids[ref.Kind], ref.ID.Bytes())
	}

	entries := make([]catalog.Entry, 0, len(refs))
	for _, kind := range []catalog.Kind{catalog.KindProduct, catalog.KindPackage} {
		if len(ids[kind]) == 0 {
			continue
		}

		var rows []row
		if err := r.db.WithContext(ctx).
			Table(tableOf(kind)).
			Select("id, name, price, free_shipping").
			Where("id IN ?", ids[kind]).
			Order("id").
			Scan(&rows).Error; err != nil {
			return nil, err
		}

		for _, rw := range rows {
			entry, err := toDomain(kind, rw)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (r *GormCatalogReader) GetEntry(ctx context.Context, ref catalog.Ref) (catalog.Entry, error) {
	if err := ref.Validate(); err != nil {
		return catalog.Entry{}, err
	}

	var rw row
	err := r.db.WithContext(ctx).
		Table(tableOf(ref.Kind)).
		Select("id, name, price, free_shipping").
		Where("id = ?", ref.ID.Bytes()).
		Take(&rw).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Entry{}, errs.NewObjectNotFoundError(string(ref.Kind), ref.ID.String())
		}
		return catalog.Entry{}, err
	}

	return toDomain(ref.Kind, rw)
}

func tableOf(kind catalog.Kind) string {
	if kind == catalog.KindPackage {
		return PackageDTO{}.TableName()
	}
	return ProductDTO{}.TableName()
}
