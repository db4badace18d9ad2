package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	HashedPassword string    `gorm:"size:255;not null" json:"-"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	IsSeller       bool      `gorm:"not null;default:false" json:"is_seller"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}
