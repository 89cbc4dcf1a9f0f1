package postgres

import (
	"context"

	"github.com/lessonup/lessonup-api/internal/domain"
	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *messageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetRequestIDsForUser(ctx context.Context, username string) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&domain.Message{}).
		Distinct("request_id").
		Where("sender = ? OR recipient = ?", username, username).
		Order("request_id ASC").
		Pluck("request_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *messageRepository) GetByRequestIDForUser(ctx context.Context, requestID uint, username string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.WithContext(ctx).
		Where("request_id = ? AND (sender = ? OR recipient = ?)", requestID, username, username).
		Order("message_id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Message{}, "message_id = ?", id)
	return res.RowsAffected, res.Error
}
