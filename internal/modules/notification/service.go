package notification

import (
	"context"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Insert writes one notification row. This is the sink the moderation
// workflow and the other emitters write through.
func (s *Service) Insert(ctx context.Context, userID int64, title, message string, t Type, link string) error {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if link != "" {
		n.Link = &link
	}
	return s.repo.Create(ctx, n)
}

// ListRecent returns up to InboxLimit notifications, newest first,
// together with the unread count for the badge.
func (s *Service) ListRecent(ctx context.Context, userID int64, limit int) ([]Notification, int64, error) {
	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkRead(ctx context.Context, id, userID int64) error {
	return s.repo.MarkAsRead(ctx, id, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
