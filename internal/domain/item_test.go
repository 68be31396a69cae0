package domain

import "testing"

func TestItemAddCustomer(t *testing.T) {
	mug := Item{ID: 2, Name: "Mug", Price: 9.99}
	ana := Customer{ID: 1, Name: "Ana"}

	review := mug.AddCustomer(ana)

	if review.CustomerID != 1 || review.ItemID != 2 {
		t.Fatalf("expected review linking 1 and 2 got %d and %d", review.CustomerID, review.ItemID)
	}

	customers := mug.Customers()
	if len(customers) != 1 || customers[0].Name != "Ana" {
		t.Fatalf("expected customers [Ana] got %v", customers)
	}
}

func TestItemToMapBreaksCycle(t *testing.T) {
	mug := Item{ID: 2, Name: "Mug", Price: 9.99}
	ana := Customer{ID: 1, Name: "Ana"}
	mug.Reviews = []Review{{ID: 3, CustomerID: 1, ItemID: 2, Customer: &ana, Item: &mug}}

	m := mug.ToMap()

	if m["price"] != 9.99 {
		t.Fatalf("expected price 9.99 got %v", m["price"])
	}
	reviews := m["reviews"].([]map[string]any)
	if _, found := reviews[0]["item"]; found {
		t.Fatalf("review must not carry its item back")
	}
	customer := reviews[0]["customer"].(map[string]any)
	if _, found := customer["reviews"]; found {
		t.Fatalf("nested customer must not carry reviews")
	}
}

func TestItemString(t *testing.T) {
	if s := (Item{ID: 2, Name: "Mug", Price: 9.99}).String(); s != "<Item 2, Mug, 9.99>" {
		t.Fatalf("unexpected string %s", s)
	}
}

func TestItemAddCustomerLinksBothSides(t *testing.T) {
	mug := Item{ID: 2, Name: "Mug", Price: 9.99}
	review := mug.AddCustomer(Customer{ID: 1, Name: "Ana"})

	m := review.ToMap()
	item, ok := m["item"].(map[string]any)
	if !ok {
		t.Fatalf("expected serialized item got %v", m["item"])
	}
	if item["id"] != uint(2) || item["price"] != 9.99 {
		t.Fatalf("unexpected item %v", item)
	}
	customer, ok := m["customer"].(map[string]any)
	if !ok || customer["name"] != "Ana" {
		t.Fatalf("expected serialized customer got %v", m["customer"])
	}
	if review.Item.Reviews != nil {
		t.Fatalf("linked item must not carry reviews")
	}
}
