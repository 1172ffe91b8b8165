package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `json:"username" validate:"required"`
	Email     string    `gorm:"unique" json:"email" validate:"required,email"`
	Password  string    `json:"-" validate:"required,min=6"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
