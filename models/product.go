package models

import "encoding/json"

type Product struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	ImageURLs    StringList `gorm:"type:text" json:"imageUrls"`
	IsNewArrival bool       `json:"isNewArrival"`
	IsInStock    bool       `json:"isInStock"`
	IsVisible    bool       `json:"isVisible"`
	Reviews      ReviewList `gorm:"type:text" json:"reviews"`
}

// UnmarshalJSON applies the defaults the original API relied on: a product
// with no isVisible field is visible, and absent lists are empty, not nil.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := alias{IsVisible: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.ImageURLs == nil {
		aux.ImageURLs = StringList{}
	}
	if aux.Reviews == nil {
		aux.Reviews = ReviewList{}
	}
	*p = Product(aux)
	return nil
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"` // ISO date, stamped at submission
}
