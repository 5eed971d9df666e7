package items

import (
	"time"
)

// Item is a catalog record. Price is stored in the smallest currency unit.
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:256"`
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ItemResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ItemListResponse wraps the catalog listing.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

type CreateItemRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=256"`
	Price int    `json:"price" binding:"required,min=0"`
}

type UpdateItemRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=256"`
	Price *int    `json:"price" binding:"omitempty,min=0"`
}

func (i *Item) ToResponse() ItemResponse {
	return ItemResponse{
		ID:    i.ID,
		Name:  i.Name,
		Price: i.Price,
	}
}
