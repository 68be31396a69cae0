package domain

const (
	EventCustomerCreated = "customer.created"
	EventCustomerDeleted = "customer.deleted"
	EventItemCreated     = "item.created"
	EventItemDeleted     = "item.deleted"
	EventReviewCreated   = "review.created"
	EventReviewDeleted   = "review.deleted"
)

// Event notifies subscribers that a record changed.
type Event struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}
