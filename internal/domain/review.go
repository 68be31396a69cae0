package domain

import "fmt"

// Review associates a Customer with an Item and carries the customer's comment.
// CustomerID and ItemID identify the association and are not changed after creation.
type Review struct {
	ID         uint      `json:"id"`
	Comment    string    `json:"comment"`
	CustomerID uint      `json:"customer_id"`
	ItemID     uint      `json:"item_id"`
	Customer   *Customer `json:"customer,omitempty"`
	Item       *Item     `json:"item,omitempty"`
}

func (r Review) String() string {
	return fmt.Sprintf("<Review %d, customer %d, item %d>", r.ID, r.CustomerID, r.ItemID)
}

// ToMap flattens the review. The customer and item are flattened without their reviews.
func (r Review) ToMap(omit ...string) map[string]any {
	skip := fieldSet(omit)

	m := map[string]any{}
	if !skip["id"] {
		m["id"] = r.ID
	}
	if !skip["comment"] {
		m["comment"] = r.Comment
	}
	if !skip["customer_id"] {
		m["customer_id"] = r.CustomerID
	}
	if !skip["item_id"] {
		m["item_id"] = r.ItemID
	}
	if !skip["customer"] {
		if r.Customer != nil {
			m["customer"] = r.Customer.ToMap("reviews")
		} else {
			m["customer"] = nil
		}
	}
	if !skip["item"] {
		if r.Item != nil {
			m["item"] = r.Item.ToMap("reviews")
		} else {
			m["item"] = nil
		}
	}
	return m
}

func fieldSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
