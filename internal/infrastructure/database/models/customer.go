package models

type Customer struct {
	ID      uint     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string   `json:"name" gorm:"type:text"`
	Reviews []Review `json:"reviews" gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (Customer) TableName() string {
	return "customers"
}
