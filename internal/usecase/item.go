package usecase

import (
	"context"

	"github.com/totegamma/reviewstore/internal/domain"
)

type ItemUsecase struct {
	repo   ItemRepository
	signal Publisher
}

func NewItemUsecase(repo ItemRepository, signal Publisher) *ItemUsecase {
	return &ItemUsecase{repo: repo, signal: signal}
}

func (uc *ItemUsecase) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := uc.repo.Create(ctx, item)
	if err != nil {
		return domain.Item{}, err
	}
	return created, publish(ctx, uc.signal, domain.EventItemCreated, created.ID)
}

func (uc *ItemUsecase) Get(ctx context.Context, id uint) (domain.Item, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *ItemUsecase) List(ctx context.Context) ([]domain.Item, error) {
	return uc.repo.List(ctx)
}

func (uc *ItemUsecase) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	return uc.repo.Update(ctx, item)
}

func (uc *ItemUsecase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return publish(ctx, uc.signal, domain.EventItemDeleted, id)
}

// Customers lists the customers who reviewed the item.
func (uc *ItemUsecase) Customers(ctx context.Context, id uint) ([]domain.Customer, error) {
	item, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return item.Customers(), nil
}

func (uc *ItemUsecase) AddCustomer(ctx context.Context, itemID, customerID uint) (domain.Review, error) {
	review, err := uc.repo.LinkCustomer(ctx, itemID, customerID)
	if err != nil {
		return domain.Review{}, err
	}
	return review, publish(ctx, uc.signal, domain.EventReviewCreated, review.ID)
}
