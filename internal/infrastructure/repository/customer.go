package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/totegamma/reviewstore/internal/domain"
	"github.com/totegamma/reviewstore/internal/infrastructure/database/models"
)

var tracer = otel.Tracer("repository")

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Create")
	defer span.End()

	model := models.Customer{Name: customer.Name}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		span.RecordError(err)
		return domain.Customer{}, errors.Wrap(err, "CustomerRepository.Create")
	}

	return toDomainCustomer(model), nil
}

func (r *CustomerRepository) Get(ctx context.Context, id uint) (domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	var model models.Customer
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID("reviews")).
		Preload("Reviews.Item").
		First(&model, id).Error
	if err != nil {
		span.RecordError(err)
		return domain.Customer{}, errors.Wrapf(err, "CustomerRepository.Get: customer %d", id)
	}

	return toDomainCustomer(model), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.List")
	defer span.End()

	var rows []models.Customer
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID("reviews")).
		Preload("Reviews.Item").
		Order("id").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "CustomerRepository.List")
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, toDomainCustomer(row))
	}
	return customers, nil
}

// Update writes the customer's name. Reviews are left untouched.
func (r *CustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&models.Customer{ID: customer.ID}).
		Update("name", customer.Name)
	if err := checkAffected(result); err != nil {
		span.RecordError(err)
		return domain.Customer{}, errors.Wrapf(err, "CustomerRepository.Update: customer %d", customer.ID)
	}

	return r.Get(ctx, customer.ID)
}

// Delete removes the customer and every review referencing it in one transaction.
func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Customer.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return checkAffected(tx.Delete(&models.Customer{}, id))
	})
	if err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "CustomerRepository.Delete: customer %d", id)
	}
	return nil
}

// LinkItem persists a review without comment joining the customer and the item.
func (r *CustomerRepository) LinkItem(ctx context.Context, customerID, itemID uint) (domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Customer.Repository.LinkItem")
	defer span.End()

	review, err := insertReview(ctx, r.db, models.Review{CustomerID: customerID, ItemID: itemID})
	if err != nil {
		span.RecordError(err)
		return domain.Review{}, errors.Wrapf(err, "CustomerRepository.LinkItem: customer %d item %d", customerID, itemID)
	}
	return review, nil
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}

func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
