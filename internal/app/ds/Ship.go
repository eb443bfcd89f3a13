package ds

// @Schema(description="Ship model representing a vessel optionally berthed at a dock")
type Ship struct {
	ID     int    `gorm:"primaryKey;column:id" json:"id"`
	Name   string `gorm:"column:name;not null" json:"name"`
	Type   string `gorm:"column:type;not null" json:"type"`
	DockID *int   `gorm:"column:dock_id;index" json:"dockId"`

	// Dock exists only so AutoMigrate emits the dock_id foreign key.
	Dock *Dock `gorm:"foreignKey:DockID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Ship) TableName() string {
	return "ships"
}

// Berthed reports whether the ship references a dock.
func (s Ship) Berthed() bool {
	return s.DockID != nil
}
