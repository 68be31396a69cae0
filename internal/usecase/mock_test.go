package usecase

import (
	"context"
	"errors"

	"github.com/totegamma/reviewstore/internal/domain"
)

var errStorage = errors.New("storage failure")

type mockPublisher struct {
	events []domain.Event
	err    error
}

func (m *mockPublisher) Publish(ctx context.Context, event domain.Event) error {
	m.events = append(m.events, event)
	return m.err
}

type mockCustomerRepo struct {
	customer domain.Customer
	deleted  uint
	linked   [2]uint
	err      error
}

func (m *mockCustomerRepo) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if m.err != nil {
		return domain.Customer{}, m.err
	}
	c.ID = 1
	m.customer = c
	return c, nil
}
func (m *mockCustomerRepo) Get(ctx context.Context, id uint) (domain.Customer, error) {
	return m.customer, m.err
}
func (m *mockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	return []domain.Customer{m.customer}, m.err
}
func (m *mockCustomerRepo) Update(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	m.customer = c
	return c, m.err
}
func (m *mockCustomerRepo) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = id
	return nil
}
func (m *mockCustomerRepo) LinkItem(ctx context.Context, customerID, itemID uint) (domain.Review, error) {
	m.linked = [2]uint{customerID, itemID}
	return domain.Review{ID: 9, CustomerID: customerID, ItemID: itemID}, m.err
}

type mockItemRepo struct {
	item    domain.Item
	deleted uint
	err     error
}

func (m *mockItemRepo) Create(ctx context.Context, i domain.Item) (domain.Item, error) {
	i.ID = 2
	m.item = i
	return i, m.err
}
func (m *mockItemRepo) Get(ctx context.Context, id uint) (domain.Item, error) {
	return m.item, m.err
}
func (m *mockItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	return []domain.Item{m.item}, m.err
}
func (m *mockItemRepo) Update(ctx context.Context, i domain.Item) (domain.Item, error) {
	return i, m.err
}
func (m *mockItemRepo) Delete(ctx context.Context, id uint) error {
	m.deleted = id
	return m.err
}
func (m *mockItemRepo) LinkCustomer(ctx context.Context, itemID, customerID uint) (domain.Review, error) {
	return domain.Review{ID: 5, CustomerID: customerID, ItemID: itemID}, m.err
}

type mockReviewRepo struct {
	review  domain.Review
	deleted uint
	err     error
}

func (m *mockReviewRepo) Create(ctx context.Context, r domain.Review) (domain.Review, error) {
	if m.err != nil {
		return domain.Review{}, m.err
	}
	r.ID = 3
	m.review = r
	return r, nil
}
func (m *mockReviewRepo) Get(ctx context.Context, id uint) (domain.Review, error) {
	return m.review, m.err
}
func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return []domain.Review{m.review}, m.err
}
func (m *mockReviewRepo) Update(ctx context.Context, r domain.Review) (domain.Review, error) {
	m.review.Comment = r.Comment
	return m.review, m.err
}
func (m *mockReviewRepo) Delete(ctx context.Context, id uint) error {
	m.deleted = id
	return m.err
}
