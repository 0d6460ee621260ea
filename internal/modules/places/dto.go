package places

// SubmitPlaceRequest is sent by an authenticated user to list a place.
// The status field is accepted for forward compatibility but the workflow
// always forces the created place into pending.
type SubmitPlaceRequest struct {
	Name          string            `json:"name" validate:"omitempty,max=200"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Address       string            `json:"address"`
	Images        []string          `json:"images"`
	Type          string            `json:"type" binding:"omitempty,oneof=business professional"`
	CategoryID    int64             `json:"category_id"`
	AreaID        *int64            `json:"area_id,omitempty"`
	Phone         string            `json:"phone" validate:"omitempty,max=32"`
	Whatsapp      string            `json:"whatsapp" validate:"omitempty,max=32"`
	Website       string            `json:"website" validate:"omitempty,url"`
	SocialLinks   map[string]string `json:"social_links,omitempty"`
	GoogleMapsURL string            `json:"google_maps_url" validate:"omitempty,url"`
	OpensAt       *string           `json:"opens_at,omitempty"`
	ClosesAt      *string           `json:"closes_at,omitempty"`
	Status        string            `json:"status,omitempty"`
}

// UpdatePlaceRequest carries owner-editable content fields. Neither the
// slug nor the status nor created_by can be changed through it.
type UpdatePlaceRequest struct {
	Name          *string            `json:"name,omitempty"`
	Description   *string            `json:"description,omitempty"`
	Address       *string            `json:"address,omitempty"`
	Images        *[]string          `json:"images,omitempty"`
	Type          *string            `json:"type,omitempty" binding:"omitempty,oneof=business professional"`
	CategoryID    *int64             `json:"category_id,omitempty"`
	AreaID        *int64             `json:"area_id,omitempty"`
	Phone         *string            `json:"phone,omitempty"`
	Whatsapp      *string            `json:"whatsapp,omitempty"`
	Website       *string            `json:"website,omitempty"`
	SocialLinks   *map[string]string `json:"social_links,omitempty"`
	GoogleMapsURL *string            `json:"google_maps_url,omitempty"`
	OpensAt       *string            `json:"opens_at,omitempty"`
	ClosesAt      *string            `json:"closes_at,omitempty"`
}
