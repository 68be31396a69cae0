package models

// Review is the association row between a customer and an item.
// Both foreign keys are required.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Comment    string    `json:"comment" gorm:"type:text"`
	CustomerID uint      `json:"customer_id" gorm:"not null;index"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID"`
	ItemID     uint      `json:"item_id" gorm:"not null;index"`
	Item       *Item     `json:"item,omitempty" gorm:"foreignKey:ItemID;references:ID"`
}

func (Review) TableName() string {
	return "reviews"
}
