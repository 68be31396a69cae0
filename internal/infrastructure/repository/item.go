package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/totegamma/reviewstore/internal/domain"
	"github.com/totegamma/reviewstore/internal/infrastructure/database/models"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Create")
	defer span.End()

	model := models.Item{Name: item.Name, Price: item.Price}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		span.RecordError(err)
		return domain.Item{}, errors.Wrap(err, "ItemRepository.Create")
	}

	return toDomainItem(model), nil
}

func (r *ItemRepository) Get(ctx context.Context, id uint) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	var model models.Item
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID("reviews")).
		Preload("Reviews.Customer").
		First(&model, id).Error
	if err != nil {
		span.RecordError(err)
		return domain.Item{}, errors.Wrapf(err, "ItemRepository.Get: item %d", id)
	}

	return toDomainItem(model), nil
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.List")
	defer span.End()

	var rows []models.Item
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID("reviews")).
		Preload("Reviews.Customer").
		Order("id").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "ItemRepository.List")
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toDomainItem(row))
	}
	return items, nil
}

// Update writes the item's name and price.
func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&models.Item{ID: item.ID}).
		Updates(map[string]any{"name": item.Name, "price": item.Price})
	if err := checkAffected(result); err != nil {
		span.RecordError(err)
		return domain.Item{}, errors.Wrapf(err, "ItemRepository.Update: item %d", item.ID)
	}

	return r.Get(ctx, item.ID)
}

// Delete removes the item and every review referencing it in one transaction.
func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Item.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.Item{}, id))
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "ItemRepository.Delete: item %d", id)
	}
	return nil
}

// LinkCustomer persists a review without comment joining the item and the customer.
func (r *ItemRepository) LinkCustomer(ctx context.Context, itemID, customerID uint) (domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Item.Repository.LinkCustomer")
	defer span.End()

	review, err := insertReview(ctx, r.db, models.Review{CustomerID: customerID, ItemID: itemID})
	if err != nil {
		span.RecordError(err)
		return domain.Review{}, errors.Wrapf(err, "ItemRepository.LinkCustomer: item %d customer %d", itemID, customerID)
	}
	return review, nil
}
