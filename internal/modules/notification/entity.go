package notification

import "time"

// Type tags a notification for the inbox UI
type Type string

const (
	TypeSystem        Type = "system"         // acknowledgments, support replies
	TypePlaceApproval Type = "place_approval" // moderation queue / approval events
	TypeAlert         Type = "alert"          // deactivations, warnings
)

// InboxLimit caps how many rows the inbox view ever loads
const InboxLimit = 50

// Notification is a per-recipient message. It belongs to exactly one user,
// is never reassigned, and is only ever mutated to flip is_read.
type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;index:idx_notifications_user_created" json:"user_id"`
	Type      Type      `gorm:"column:type" json:"type"`
	Title     string    `gorm:"column:title" json:"title"`
	Message   string    `gorm:"column:message" json:"message"`
	Link      *string   `gorm:"column:link" json:"link,omitempty"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_notifications_user_created" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
