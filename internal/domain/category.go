package domain

import "time"

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Slug        string    `json:"slug" gorm:"size:120;not null;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	Image       string    `json:"image" gorm:"size:512"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}
