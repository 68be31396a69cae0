package domain

import "fmt"

// Customer is a person who reviews items.
type Customer struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Reviews []Review `json:"reviews"`
}

func (c Customer) String() string {
	return fmt.Sprintf("<Customer %d, %s>", c.ID, c.Name)
}

// Items returns the items reachable through the customer's reviews, in review order.
func (c Customer) Items() []Item {
	items := make([]Item, 0, len(c.Reviews))
	for _, review := range c.Reviews {
		if review.Item == nil {
			continue
		}
		items = append(items, *review.Item)
	}
	return items
}

// AddItem attaches a new review linking the customer to item.
// The review has no comment and is not persisted. Both sides of the review
// are shallow copies without reviews.
func (c *Customer) AddItem(item Item) Review {
	review := Review{
		CustomerID: c.ID,
		ItemID:     item.ID,
		Customer:   &Customer{ID: c.ID, Name: c.Name},
		Item:       &Item{ID: item.ID, Name: item.Name, Price: item.Price},
	}
	c.Reviews = append(c.Reviews, review)
	return review
}

// ToMap flattens the customer. Its reviews are flattened without their customer.
func (c Customer) ToMap(omit ...string) map[string]any {
	skip := fieldSet(omit)

	m := map[string]any{}
	if !skip["id"] {
		m["id"] = c.ID
	}
	if !skip["name"] {
		m["name"] = c.Name
	}
	if !skip["reviews"] {
		reviews := make([]map[string]any, 0, len(c.Reviews))
		for _, review := range c.Reviews {
			reviews = append(reviews, review.ToMap("customer"))
		}
		m["reviews"] = reviews
	}
	return m
}
