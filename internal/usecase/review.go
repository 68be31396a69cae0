package usecase

import (
	"context"

	"github.com/totegamma/reviewstore/internal/domain"
)

type ReviewUsecase struct {
	repo   ReviewRepository
	signal Publisher
}

func NewReviewUsecase(repo ReviewRepository, signal Publisher) *ReviewUsecase {
	return &ReviewUsecase{repo: repo, signal: signal}
}

func (uc *ReviewUsecase) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	created, err := uc.repo.Create(ctx, review)
	if err != nil {
		return domain.Review{}, err
	}
	return created, publish(ctx, uc.signal, domain.EventReviewCreated, created.ID)
}

func (uc *ReviewUsecase) Get(ctx context.Context, id uint) (domain.Review, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *ReviewUsecase) List(ctx context.Context) ([]domain.Review, error) {
	return uc.repo.List(ctx)
}

// Update changes the comment of a review.
func (uc *ReviewUsecase) Update(ctx context.Context, review domain.Review) (domain.Review, error) {
	return uc.repo.Update(ctx, review)
}

func (uc *ReviewUsecase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return publish(ctx, uc.signal, domain.EventReviewDeleted, id)
}
