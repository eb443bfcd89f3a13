package ds

// Hauler - independent transport unit, not related to docks or ships
type Hauler struct {
	ID       int    `gorm:"primaryKey;column:id" json:"id"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Capacity int    `gorm:"column:capacity;not null" json:"capacity"`
}

func (Hauler) TableName() string {
	return "haulers"
}
