package entities

type Category struct {
	ID    uint   `gorm:"primary_key" json:"id"`
	Title string `json:"title"`
	Slug  string `gorm:"uniqueIndex" json:"slug"`

	MenuItems []*MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}
