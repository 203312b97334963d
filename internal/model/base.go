package model

import "time"

// Base carries the identity and audit columns shared by every persisted entity.
// ModifiedAt/ModifiedBy stay NULL until the first update.
type Base struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time  `json:"createdAt"`
	CreatedBy  string     `json:"createdBy" gorm:"size:50"`
	ModifiedAt *time.Time `json:"modifiedAt"`
	ModifiedBy *string    `json:"modifiedBy" gorm:"size:50"`
	IsDeleted  bool       `json:"isDeleted" gorm:"default:false;index"`
}
