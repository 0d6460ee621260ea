package domain

import "time"

type Review struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	PlaceID   int64     `gorm:"column:place_id;index:idx_reviews_place_user,unique" json:"place_id"`
	UserID    int64     `gorm:"column:user_id;index:idx_reviews_place_user,unique" json:"user_id"`
	Rating    int       `gorm:"column:rating" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }

type Favorite struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;index:idx_favorites_user_place,unique" json:"user_id"`
	PlaceID   int64     `gorm:"column:place_id;index:idx_favorites_user_place,unique" json:"place_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
