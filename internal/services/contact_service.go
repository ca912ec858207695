package services

import (
	"context"
	"errors"

	"portfolio_backend/internal/apperrors"
	"portfolio_backend/internal/logger"
	"portfolio_backend/internal/models"
	"portfolio_backend/internal/repositories"
	"portfolio_backend/internal/services/dto"
)

type ContactService struct {
	repo       repositories.MessageRepository
	mailer     *Mailer
	notifyAddr string
}

func NewContactService(repo repositories.MessageRepository, mailer *Mailer, notifyAddr string) *ContactService {
	return &ContactService{repo: repo, mailer: mailer, notifyAddr: notifyAddr}
}

// Submit persists the message first; the owner notification is
// best-effort so a flaky SMTP server never loses a submission.
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) (*models.Message, error) {
	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := s.repo.Create(message); err != nil {
		return nil, apperrors.PersistError(err)
	}

	if s.notifyAddr != "" {
		if err := s.mailer.SendContactNotification(s.notifyAddr, message); err != nil {
			logger.CtxWithError(ctx, "failed to send contact notification", err, "messageId", message.ID)
		}
	}
	return message, nil
}

func (s *ContactService) GetAll() ([]models.Message, error) {
	messages, err := s.repo.FindAll()
	if err != nil {
		return nil, apperrors.PersistError(err)
	}
	return messages, nil
}

func (s *ContactService) GetByID(id string) (*models.Message, error) {
	message, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.NotFound("message")
		}
		return nil, apperrors.PersistError(err)
	}
	return message, nil
}

func (s *ContactService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return apperrors.PersistError(err)
	}
	return nil
}
