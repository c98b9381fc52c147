package entity

import "time"

type SavedItem struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ItemID      string    `json:"item_id"` // provider entity id
	ItemName    string    `json:"item_name"`
	ItemType    string    `json:"item_type"` // book, movie, tv_show, place
	ItemImage   string    `json:"item_image"`
	Description string    `json:"item_description"`
	Favorited   bool      `json:"favorited"`
	SavedAt     time.Time `json:"saved_at"`
}
