package model

import "time"

// Repository is a catalog entry: a code repository with its onboarding guide.
type Repository struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	URL         string    `json:"url" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:255"`
	Guide       string    `json:"guide" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	FavoritedBy []User `json:"-" gorm:"many2many:repository_user"`
}
