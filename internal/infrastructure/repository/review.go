package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/totegamma/reviewstore/internal/domain"
	"github.com/totegamma/reviewstore/internal/infrastructure/database/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Review.Repository.Create")
	defer span.End()

	created, err := insertReview(ctx, r.db, models.Review{
		Comment:    review.Comment,
		CustomerID: review.CustomerID,
		ItemID:     review.ItemID,
	})
	if err != nil {
		span.RecordError(err)
		return domain.Review{}, errors.Wrap(err, "ReviewRepository.Create")
	}
	return created, nil
}

func (r *ReviewRepository) Get(ctx context.Context, id uint) (domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Review.Repository.Get")
	defer span.End()
	span.SetAttributes(attribute.Int64("id", int64(id)))

	review, err := getReview(ctx, r.db, id)
	if err != nil {
		span.RecordError(err)
		return domain.Review{}, errors.Wrapf(err, "ReviewRepository.Get: review %d", id)
	}
	return review, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Review.Repository.List")
	defer span.End()

	var rows []models.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Item").
		Order("id").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "ReviewRepository.List")
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toDomainReview(row))
	}
	return reviews, nil
}

// Update writes the comment only. The customer and item of a review are fixed.
func (r *ReviewRepository) Update(ctx context.Context, review domain.Review) (domain.Review, error) {
	ctx, span := tracer.Start(ctx, "Review.Repository.Update")
	defer span.End()

	result := r.db.WithContext(ctx).
		Model(&models.Review{ID: review.ID}).
		Update("comment", review.Comment)
	if err := checkAffected(result); err != nil {
		span.RecordError(err)
		return domain.Review{}, errors.Wrapf(err, "ReviewRepository.Update: review %d", review.ID)
	}

	return r.Get(ctx, review.ID)
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "Review.Repository.Delete")
	defer span.End()

	if err := checkAffected(r.db.WithContext(ctx).Delete(&models.Review{}, id)); err != nil {
		span.RecordError(err)
		return errors.Wrapf(err, "ReviewRepository.Delete: review %d", id)
	}
	return nil
}

func insertReview(ctx context.Context, db *gorm.DB, model models.Review) (domain.Review, error) {
	if err := db.WithContext(ctx).Omit("Customer", "Item").Create(&model).Error; err != nil {
		return domain.Review{}, err
	}
	return getReview(ctx, db, model.ID)
}

func getReview(ctx context.Context, db *gorm.DB, id uint) (domain.Review, error) {
	var model models.Review
	err := db.WithContext(ctx).
		Preload("Customer").
		Preload("Item").
		First(&model, id).Error
	if err != nil {
		return domain.Review{}, err
	}
	return toDomainReview(model), nil
}
