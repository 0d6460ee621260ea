package domain

import "time"

type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketAnswered TicketStatus = "answered"
	TicketClosed   TicketStatus = "closed"
)

// Ticket is a support request opened by a user from the help screen.
// Ref is the public identifier shown to the user; the numeric id stays internal.
type Ticket struct {
	ID        int64        `gorm:"column:id;primaryKey" json:"id"`
	Ref       string       `gorm:"column:ref;uniqueIndex" json:"ref"`
	UserID    int64        `gorm:"column:user_id;index" json:"user_id"`
	Subject   string       `gorm:"column:subject" json:"subject"`
	Message   string       `gorm:"column:message" json:"message"`
	Reply     *string      `gorm:"column:reply" json:"reply,omitempty"`
	RepliedBy *int64       `gorm:"column:replied_by" json:"replied_by,omitempty"`
	Status    TicketStatus `gorm:"column:status;default:open" json:"status"`
	CreatedAt time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time    `gorm:"column:updated_at" json:"updated_at"`
}

func (Ticket) TableName() string { return "tickets" }
