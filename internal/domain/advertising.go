package domain

import "time"

type Advertising struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OwnerID     uint      `json:"ownerId" gorm:"not null"`
	Owner       User      `json:"-" gorm:"foreignKey:OwnerID"`
	Title       string    `json:"title" gorm:"size:100;uniqueIndex;not null"`
	Description string    `json:"description,omitempty" gorm:"size:300"`
	CreateDate  time.Time `json:"createDate" gorm:"autoCreateTime"`
}
