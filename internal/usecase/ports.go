package usecase

import (
	"context"

	"github.com/totegamma/reviewstore/internal/domain"
)

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Get(ctx context.Context, id uint) (domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id uint) error
	LinkItem(ctx context.Context, customerID, itemID uint) (domain.Review, error)
}

// ItemRepository defines persistence for items.
type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Get(ctx context.Context, id uint) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id uint) error
	LinkCustomer(ctx context.Context, itemID, customerID uint) (domain.Review, error)
}

// ReviewRepository defines persistence for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	Get(ctx context.Context, id uint) (domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, review domain.Review) (domain.Review, error)
	Delete(ctx context.Context, id uint) error
}

// Publisher broadcasts change events. A nil Publisher disables events.
type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

func publish(ctx context.Context, p Publisher, eventType string, id uint) error {
	if p == nil {
		return nil
	}
	return p.Publish(ctx, domain.Event{Type: eventType, ID: id})
}
