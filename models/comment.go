package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `json:"post"` // Foreign key to Post
	Author    string    `json:"author" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
