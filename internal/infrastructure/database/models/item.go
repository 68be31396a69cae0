package models

type Item struct {
	ID      uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string   `json:"name" gorm:"type:text"`
	Price   float64  `json:"price" gorm:"type:double precision"`
	Reviews []Review `json:"reviews" gorm:"foreignKey:ItemID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Item) TableName() string {
	return "items"
}
