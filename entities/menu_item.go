package entities

type MenuItem struct {
	ID         uint    `gorm:"primary_key" json:"id"`
	Title      string  `json:"title"`
	Price      float64 `gorm:"type:decimal(10,2)" json:"price"`
	CategoryID uint    `json:"category_id"`
	Featured   bool    `json:"featured"`
	ImageURL   string  `json:"image_url,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamp
}
