package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PlaceType distinguishes a business listing from an individual professional
type PlaceType string

const (
	PlaceTypeBusiness     PlaceType = "business"
	PlaceTypeProfessional PlaceType = "professional"
)

// PlaceStatus is the moderation state of a listing
type PlaceStatus string

const (
	StatusPending  PlaceStatus = "pending"
	StatusActive   PlaceStatus = "active"
	StatusInactive PlaceStatus = "inactive"
)

// ValidStatus reports whether s is one of the known moderation states
func ValidStatus(s PlaceStatus) bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// StringList is stored as a JSON array column (image URLs)
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// SocialLinks maps platform name -> profile URL, stored as a JSON object column
type SocialLinks map[string]string

func (s SocialLinks) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *SocialLinks) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return errors.New("unsupported type for SocialLinks")
}

// Place is a directory listing. status is the only state machine on the
// entity: pending -> active <-> inactive, with pending re-enterable.
// created_by is set once at submission and never reassigned.
type Place struct {
	ID            int64       `gorm:"column:id;primaryKey" json:"id"`
	Name          string      `gorm:"column:name" json:"name"`
	Slug          string      `gorm:"column:slug;uniqueIndex" json:"slug"`
	Description   string      `gorm:"column:description" json:"description"`
	Address       string      `gorm:"column:address" json:"address"`
	Images        StringList  `gorm:"column:images;type:jsonb" json:"images"`
	Type          PlaceType   `gorm:"column:type" json:"type"`
	CategoryID    int64       `gorm:"column:category_id;index" json:"category_id"`
	AreaID        *int64      `gorm:"column:area_id;index" json:"area_id,omitempty"`
	Phone         string      `gorm:"column:phone" json:"phone"`
	Whatsapp      string      `gorm:"column:whatsapp" json:"whatsapp"`
	Website       string      `gorm:"column:website" json:"website"`
	SocialLinks   SocialLinks `gorm:"column:social_links;type:jsonb" json:"social_links,omitempty"`
	GoogleMapsURL string      `gorm:"column:google_maps_url" json:"google_maps_url"`
	OpensAt       *string     `gorm:"column:opens_at" json:"opens_at,omitempty"`
	ClosesAt      *string     `gorm:"column:closes_at" json:"closes_at,omitempty"`
	CreatedBy     int64       `gorm:"column:created_by;index" json:"created_by"`
	Status        PlaceStatus `gorm:"column:status;index;default:pending" json:"status"`
	CreatedAt     time.Time   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"column:updated_at" json:"updated_at"`
}

func (Place) TableName() string { return "places" }
