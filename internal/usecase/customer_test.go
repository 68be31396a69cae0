package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/totegamma/reviewstore/internal/domain"
)

func TestCustomerUsecaseCreatePublishes(t *testing.T) {
	repo := &mockCustomerRepo{}
	signal := &mockPublisher{}
	uc := NewCustomerUsecase(repo, signal)

	created, err := uc.Create(context.Background(), domain.Customer{Name: "Ana"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 1 || repo.customer.Name != "Ana" {
		t.Fatalf("expected stored customer Ana got %v", repo.customer)
	}
	if len(signal.events) != 1 || signal.events[0] != (domain.Event{Type: domain.EventCustomerCreated, ID: 1}) {
		t.Fatalf("unexpected events %v", signal.events)
	}
}

func TestCustomerUsecaseCreateFailureSkipsEvent(t *testing.T) {
	signal := &mockPublisher{}
	uc := NewCustomerUsecase(&mockCustomerRepo{err: errStorage}, signal)

	_, err := uc.Create(context.Background(), domain.Customer{Name: "Ana"})
	if !errors.Is(err, errStorage) {
		t.Fatalf("expected storage error got %v", err)
	}
	if len(signal.events) != 0 {
		t.Fatalf("expected no events got %v", signal.events)
	}
}

func TestCustomerUsecaseWithoutPublisher(t *testing.T) {
	repo := &mockCustomerRepo{}
	uc := NewCustomerUsecase(repo, nil)

	if err := uc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deleted != 4 {
		t.Fatalf("expected delete 4 got %d", repo.deleted)
	}
}

func TestCustomerUsecaseItems(t *testing.T) {
	mug := domain.Item{ID: 2, Name: "Mug"}
	repo := &mockCustomerRepo{customer: domain.Customer{
		ID:      1,
		Name:    "Ana",
		Reviews: []domain.Review{{ID: 3, CustomerID: 1, ItemID: 2, Item: &mug}},
	}}
	uc := NewCustomerUsecase(repo, nil)

	items, err := uc.Items(context.Background(), 1)
	if err != nil {
		t.Fatalf("items failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Mug" {
		t.Fatalf("expected [Mug] got %v", items)
	}
}

func TestCustomerUsecaseAddItem(t *testing.T) {
	repo := &mockCustomerRepo{}
	signal := &mockPublisher{}
	uc := NewCustomerUsecase(repo, signal)

	review, err := uc.AddItem(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if repo.linked != [2]uint{1, 2} {
		t.Fatalf("expected link 1 -> 2 got %v", repo.linked)
	}
	if review.Comment != "" {
		t.Fatalf("expected empty comment got %q", review.Comment)
	}
	if len(signal.events) != 1 || signal.events[0].Type != domain.EventReviewCreated {
		t.Fatalf("unexpected events %v", signal.events)
	}
}

func TestCustomerUsecasePublishFailure(t *testing.T) {
	repo := &mockCustomerRepo{}
	uc := NewCustomerUsecase(repo, &mockPublisher{err: errStorage})

	err := uc.Delete(context.Background(), 7)
	if !errors.Is(err, errStorage) {
		t.Fatalf("expected publish error got %v", err)
	}
	if repo.deleted != 7 {
		t.Fatalf("expected delete to be committed before publish")
	}
}
