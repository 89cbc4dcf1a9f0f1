package repository

import (
	"context"

	"github.com/lessonup/lessonup-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByIDAndUsername(ctx context.Context, id uint, username string) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type HelpRequestRepository interface {
	Create(ctx context.Context, request *domain.HelpRequest) error
	GetAll(ctx context.Context) ([]*domain.HelpRequest, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetRequestIDsForUser(ctx context.Context, username string) ([]uint, error)
	GetByRequestIDForUser(ctx context.Context, requestID uint, username string) ([]*domain.Message, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type Repositories struct {
	User        UserRepository
	Session     SessionRepository
	HelpRequest HelpRequestRepository
	Message     MessageRepository
}
