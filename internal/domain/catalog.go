package domain

import "time"

// Category groups places (restaurants, doctors, workshops, ...)
type Category struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Slug      string    `gorm:"column:slug;uniqueIndex" json:"slug"`
	Icon      string    `gorm:"column:icon" json:"icon,omitempty"`
	SortOrder int       `gorm:"column:sort_order;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string { return "categories" }

// Area is a district of Suez used to filter places geographically
type Area struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name" json:"name"`
	Slug      string    `gorm:"column:slug;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Area) TableName() string { return "areas" }

// Event is a city event announced on the home page
type Event struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	Location    string     `gorm:"column:location" json:"location"`
	Image       string     `gorm:"column:image" json:"image,omitempty"`
	StartsAt    time.Time  `gorm:"column:starts_at;index" json:"starts_at"`
	EndsAt      *time.Time `gorm:"column:ends_at" json:"ends_at,omitempty"`
	CreatedBy   int64      `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Event) TableName() string { return "events" }

// Article is an editorial piece (city guides, news)
type Article struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Slug        string     `gorm:"column:slug;uniqueIndex" json:"slug"`
	Body        string     `gorm:"column:body" json:"body"`
	CoverImage  string     `gorm:"column:cover_image" json:"cover_image,omitempty"`
	Published   bool       `gorm:"column:published;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedBy   int64      `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string { return "articles" }
