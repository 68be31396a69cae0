package domain

import "fmt"

// Item is something a customer can review.
type Item struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Price   float64  `json:"price"`
	Reviews []Review `json:"reviews"`
}

func (i Item) String() string {
	return fmt.Sprintf("<Item %d, %s, %g>", i.ID, i.Name, i.Price)
}

// Customers returns the customers reachable through the item's reviews, in review order.
func (i Item) Customers() []Customer {
	customers := make([]Customer, 0, len(i.Reviews))
	for _, review := range i.Reviews {
		if review.Customer == nil {
			continue
		}
		customers = append(customers, *review.Customer)
	}
	return customers
}

// AddCustomer attaches a new review linking the item to customer.
// The review has no comment and is not persisted. Both sides of the review
// are shallow copies without reviews.
func (i *Item) AddCustomer(customer Customer) Review {
	review := Review{
		CustomerID: customer.ID,
		ItemID:     i.ID,
		Customer:   &Customer{ID: customer.ID, Name: customer.Name},
		Item:       &Item{ID: i.ID, Name: i.Name, Price: i.Price},
	}
	i.Reviews = append(i.Reviews, review)
	return review
}

// ToMap flattens the item. Its reviews are flattened without their item.
func (i Item) ToMap(omit ...string) map[string]any {
	skip := fieldSet(omit)

	m := map[string]any{}
	if !skip["id"] {
		m["id"] = i.ID
	}
	if !skip["name"] {
		m["name"] = i.Name
	}
	if !skip["price"] {
		m["price"] = i.Price
	}
	if !skip["reviews"] {
		reviews := make([]map[string]any, 0, len(i.Reviews))
		for _, review := range i.Reviews {
			reviews = append(reviews, review.ToMap("item"))
		}
		m["reviews"] = reviews
	}
	return m
}
