package repository

import (
	"github.com/totegamma/reviewstore/internal/domain"
	"github.com/totegamma/reviewstore/internal/infrastructure/database/models"
)

// Mapped relations are shallow: a review reached from a customer carries its item
// but not the customer again, and vice versa.

func toDomainCustomer(m models.Customer) domain.Customer {
	customer := domain.Customer{
		ID:      m.ID,
		Name:    m.Name,
		Reviews: make([]domain.Review, 0, len(m.Reviews)),
	}
	for _, r := range m.Reviews {
		review := toDomainReview(r)
		review.Customer = nil
		customer.Reviews = append(customer.Reviews, review)
	}
	return customer
}

func toDomainItem(m models.Item) domain.Item {
	item := domain.Item{
		ID:      m.ID,
		Name:    m.Name,
		Price:   m.Price,
		Reviews: make([]domain.Review, 0, len(m.Reviews)),
	}
	for _, r := range m.Reviews {
		review := toDomainReview(r)
		review.Item = nil
		item.Reviews = append(item.Reviews, review)
	}
	return item
}

func toDomainReview(m models.Review) domain.Review {
	review := domain.Review{
		ID:         m.ID,
		Comment:    m.Comment,
		CustomerID: m.CustomerID,
		ItemID:     m.ItemID,
	}
	if m.Customer != nil {
		review.Customer = &domain.Customer{ID: m.Customer.ID, Name: m.Customer.Name}
	}
	if m.Item != nil {
		review.Item = &domain.Item{ID: m.Item.ID, Name: m.Item.Name, Price: m.Item.Price}
	}
	return review
}
