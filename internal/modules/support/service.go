package support

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

var (
	ErrEmptyReply    = errors.New("reply is required")
	ErrTicketClosed  = errors.New("ticket is closed")
	ErrNotTicketUser = errors.New("not your ticket")
)

// NotificationSender notifies the ticket opener about replies, best-effort
type NotificationSender interface {
	Insert(ctx context.Context, userID int64, title, message string, t notification.Type, link string) error
}

type Service struct {
	ticketRepo *repository.TicketRepository
	notifs     NotificationSender
}

func NewService(ticketRepo *repository.TicketRepository, notifs NotificationSender) *Service {
	return &Service{ticketRepo: ticketRepo, notifs: notifs}
}

// Open creates a ticket with a public uuid reference
func (s *Service) Open(ctx context.Context, userID int64, subject, message string) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Ref:     uuid.New().String(),
		UserID:  userID,
		Subject: subject,
		Message: message,
		Status:  domain.TicketOpen,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	return s.ticketRepo.GetByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context, status domain.TicketStatus, page, limit int) ([]domain.Ticket, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.ticketRepo.GetAll(ctx, status, limit, (page-1)*limit)
}

// Reply answers a ticket and notifies the opener
func (s *Service) Reply(ctx context.Context, ticketID, adminID int64, reply string) (*domain.Ticket, error) {
	if strings.TrimSpace(reply) == "" {
		return nil, ErrEmptyReply
	}

	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketClosed {
		return nil, ErrTicketClosed
	}

	ticket.Reply = &reply
	ticket.RepliedBy = &adminID
	ticket.Status = domain.TicketAnswered

	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		err := s.notifs.Insert(ctx, ticket.UserID,
			"رد على تذكرتك",
			fmt.Sprintf("تم الرد على تذكرة الدعم \"%s\"", ticket.Subject),
			notification.TypeSystem,
			"/support",
		)
		if err != nil {
			log.Printf("notify_failed user_id=%d type=%s error=%v", ticket.UserID, notification.TypeSystem, err)
		}
	}

	return ticket, nil
}

// Close marks a ticket closed; the opener or any staff member may close it
func (s *Service) Close(ctx context.Context, ticketID, actorID int64, isStaff bool) (*domain.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !isStaff && ticket.UserID != actorID {
		return nil, ErrNotTicketUser
	}

	ticket.Status = domain.TicketClosed
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
