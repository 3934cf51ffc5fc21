package model

// Section is one orchestra naipe. The fixed list is seeded on boot and the
// mobile client uses it to populate the profile section picker.
type Section struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:60;uniqueIndex;not null" json:"name"`
	Category string `gorm:"size:20;not null" json:"category"`
}

func (Section) TableName() string {
	return "sections"
}
