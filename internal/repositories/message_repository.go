package repositories

import (
	"errors"

	"portfolio_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id string) (*models.Message, error)
	FindAll() ([]models.Message, error)
	FindRecent(limit int) ([]models.Message, error)
	Delete(id string) error
	Count() (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) FindAll() ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) FindRecent(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Message{}, "id = ?", id).Error
}

func (r *MessageRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
