package models

import "time"

type Post struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `json:"title" validate:"required"`
	Content       string    `json:"content" validate:"required"`
	FeaturedImage string    `json:"featuredImage"`
	LikeCount     int       `json:"likeCount"`
	LikedBy       []uint    `json:"likedBy" gorm:"type:text;serializer:json"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	CategoryID    *uint     `json:"category_id"`                           // Foreign key to Category, nullable so a cascade delete can clear it
	Category      Category  `gorm:"foreignKey:CategoryID" json:"category"` // Belongs to one Category
}
