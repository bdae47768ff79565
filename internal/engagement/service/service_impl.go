package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/polenmarket/polen/internal/clock"
	"github.com/polenmarket/polen/internal/engagement/domain"
	"go.uber.org/zap"
)

type Service struct {
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

func New(log *zap.Logger, repo domain.Repository, genID *snowflake.Node, clk clock.Clock) domain.Service {
	return &Service{
		log:   log.Named("engagement.service"),
		repo:  repo,
		genID: genID,
		clock: clk,
	}
}

func (s *Service) RecordVisit(ctx context.Context) error {
	today := s.clock.Now().Format(domain.DateLayout)
	if err := s.repo.IncrementVisit(ctx, today); err != nil {
		s.log.Error("record visit", zap.String("fecha", today), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) SubmitMessage(ctx context.Context, req domain.MessageRequest) (*domain.MessageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}
	body := strings.TrimSpace(req.Message)
	if body == "" {
		return nil, domain.ErrInvalidMessage
	}

	msg := &domain.ContactMessage{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Email:     email,
		Message:   body,
		Read:      false,
		CreatedAt: s.clock.Now().UTC(),
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		if phone != "" {
			msg.Phone = &phone
		}
	}

	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		s.log.Error("submit message", zap.Error(err))
		return nil, err
	}

	resp := toMessageResponse(msg)
	return &resp, nil
}

func (s *Service) ListMessages(ctx context.Context) ([]domain.MessageResponse, error) {
	items, err := s.repo.ListMessages(ctx)
	if err != nil {
		s.log.Error("list messages", zap.Error(err))
		return nil, err
	}

	resp := make([]domain.MessageResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMessageResponse(&item))
	}
	return resp, nil
}

func (s *Service) MarkMessageRead(ctx context.Context, id string) error {
	messageID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	if err := s.repo.MarkMessageRead(ctx, messageID.Int64()); err != nil {
		if err != domain.ErrNotFound {
			s.log.Error("mark message read", zap.Error(err))
		}
		return err
	}
	return nil
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.repo.CountUnreadMessages(ctx)
	if err != nil {
		s.log.Error("count unread messages", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *Service) ListStatistics(ctx context.Context, limit int) ([]domain.StatisticResponse, error) {
	if limit <= 0 {
		limit = domain.DefaultStatisticsLimit
	}

	items, err := s.repo.ListStatistics(ctx, limit)
	if err != nil {
		s.log.Error("list statistics", zap.Error(err))
		return nil, err
	}

	resp := make([]domain.StatisticResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.StatisticResponse{
			Date:     item.Date,
			Visits:   item.Visits,
			Messages: item.Messages,
		})
	}
	return resp, nil
}

func toMessageResponse(m *domain.ContactMessage) domain.MessageResponse {
	return domain.MessageResponse{
		ID:        snowflake.ID(m.ID).String(),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}

func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(addr.Address)), nil
}
