package model

// Section groups users and determines their role. Sections are referenced by
// users, never owned by them.
type Section struct {
	Base
	Name        string `json:"name" gorm:"size:50;not null"`
	Description string `json:"description" gorm:"size:255"`
	Role        Role   `json:"role" gorm:"size:20;not null"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}
