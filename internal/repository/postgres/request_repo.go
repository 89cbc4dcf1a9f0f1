package postgres

import (
	"context"

	"github.com/lessonup/lessonup-api/internal/domain"
	"gorm.io/gorm"
)

type helpRequestRepository struct {
	db *gorm.DB
}

func NewHelpRequestRepository(db *gorm.DB) *helpRequestRepository {
	return &helpRequestRepository{db: db}
}

func (r *helpRequestRepository) Create(ctx context.Context, request *domain.HelpRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *helpRequestRepository) GetAll(ctx context.Context) ([]*domain.HelpRequest, error) {
	var requests []*domain.HelpRequest
	err := r.db.WithContext(ctx).Order("request_id ASC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *helpRequestRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.HelpRequest{}, "request_id = ?", id)
	return res.RowsAffected, res.Error
}
