package model

// User represents an account of the administrative console.
// Password holds the bcrypt hash; generic read paths blank it before returning.
type User struct {
	Base
	Username      string  `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password      string  `json:"password" gorm:"size:100"`
	Forename      *string `json:"forename" gorm:"size:50"`
	Surname       *string `json:"surname" gorm:"size:50"`
	Phone         *string `json:"phone" gorm:"size:50"`
	RadioCallName *string `json:"radioCallName" gorm:"size:50"`
	SectionID     uint    `json:"section" gorm:"column:section"`
	IsActive      bool    `json:"isActive" gorm:"default:true"`
}
