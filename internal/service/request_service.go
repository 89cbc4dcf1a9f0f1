package service

import (
	"context"
	"errors"

	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/repository"
)

var (
	ErrIdentityMismatch = errors.New("payload identity does not match a stored user")
	ErrRequestNotFound  = errors.New("help request not found")
)

type RequestService struct {
	requestRepo repository.HelpRequestRepository
	userRepo    repository.UserRepository
}

func NewRequestService(requestRepo repository.HelpRequestRepository, userRepo repository.UserRepository) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

type CreateRequestInput struct {
	UserID     uint
	Username   string
	UserLang   string
	Subject    string
	StudyLevel string
	DueDate    string
	Request    string
	DatePosted string
	TimePosted string
}

// Create posts a new help request. The (userId, username) pair in the
// payload is re-checked against the users table first, so a tampered
// payload cannot post on behalf of somebody else.
func (s *RequestService) Create(ctx context.Context, input CreateRequestInput) (uint, error) {
	ok, err := s.userRepo.ExistsByIDAndUsername(ctx, input.UserID, input.Username)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrIdentityMismatch
	}

	request := &domain.HelpRequest{
		UserID:     input.UserID,
		Username:   input.Username,
		UserLang:   input.UserLang,
		Subject:    input.Subject,
		StudyLevel: input.StudyLevel,
		DueDate:    input.DueDate,
		Request:    input.Request,
		DatePosted: input.DatePosted,
		TimePosted: input.TimePosted,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return 0, err
	}

	return request.ID, nil
}

// ListAll returns every help request on the board, in posting order. The
// board is public to all authenticated users regardless of owner.
func (s *RequestService) ListAll(ctx context.Context) ([]*domain.HelpRequest, error) {
	return s.requestRepo.GetAll(ctx)
}

// Delete removes a request by id. There is no ownership check at this
// layer; any authenticated user may delete any request.
func (s *RequestService) Delete(ctx context.Context, id uint) error {
	affected, err := s.requestRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
