package usecase

import (
	"context"

	"github.com/totegamma/reviewstore/internal/domain"
)

type CustomerUsecase struct {
	repo   CustomerRepository
	signal Publisher
}

func NewCustomerUsecase(repo CustomerRepository, signal Publisher) *CustomerUsecase {
	return &CustomerUsecase{repo: repo, signal: signal}
}

func (uc *CustomerUsecase) Create(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	created, err := uc.repo.Create(ctx, customer)
	if err != nil {
		return domain.Customer{}, err
	}
	return created, publish(ctx, uc.signal, domain.EventCustomerCreated, created.ID)
}

func (uc *CustomerUsecase) Get(ctx context.Context, id uint) (domain.Customer, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *CustomerUsecase) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.repo.List(ctx)
}

func (uc *CustomerUsecase) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	return uc.repo.Update(ctx, customer)
}

// Delete removes the customer together with its reviews.
func (uc *CustomerUsecase) Delete(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	return publish(ctx, uc.signal, domain.EventCustomerDeleted, id)
}

// Items lists the items the customer has reviewed.
func (uc *CustomerUsecase) Items(ctx context.Context, id uint) ([]domain.Item, error) {
	customer, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return customer.Items(), nil
}

// AddItem links the customer to the item with an empty review.
func (uc *CustomerUsecase) AddItem(ctx context.Context, customerID, itemID uint) (domain.Review, error) {
	review, err := uc.repo.LinkItem(ctx, customerID, itemID)
	if err != nil {
		return domain.Review{}, err
	}
	return review, publish(ctx, uc.signal, domain.EventReviewCreated, review.ID)
}
