package service

import (
	"github.com/lessonup/lessonup-api/internal/config"
	"github.com/lessonup/lessonup-api/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Request *RequestService
	Message *MessageService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session, cfg),
		Request: NewRequestService(repos.HelpRequest, repos.User),
		Message: NewMessageService(repos.Message),
	}
}
