package service

import (
	"context"
	"errors"

	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

type PostMessageInput struct {
	RequestID uint
	Language  string
	Sender    string
	Recipient string
	Message   string
	DateSent  string
	TimeSent  string
}

// Post stores a message against a help request. Neither the requestId nor
// the sender identity is cross-checked against other tables; that matches
// the existing contract with the client.
func (s *MessageService) Post(ctx context.Context, input PostMessageInput) (uint, error) {
	message := &domain.Message{
		RequestID: input.RequestID,
		Language:  input.Language,
		Sender:    input.Sender,
		Recipient: input.Recipient,
		Message:   input.Message,
		DateSent:  input.DateSent,
		TimeSent:  input.TimeSent,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return 0, err
	}

	return message.ID, nil
}

// ListConversations groups the user's messages by help request: one
// conversation per distinct requestId where the user is sender or
// recipient. The per-request fetches are independent reads and run
// concurrently; each result is slotted by index, so the output is always
// ordered by requestId no matter which fetch finishes last. If any fetch
// fails the whole call fails.
func (s *MessageService) ListConversations(ctx context.Context, username string) ([]domain.Conversation, error) {
	ids, err := s.messageRepo.GetRequestIDsForUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	conversations := make([]domain.Conversation, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			messages, err := s.messageRepo.GetByRequestIDForUser(gctx, id, username)
			if err != nil {
				return err
			}
			conversations[i] = messages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return conversations, nil
}

// ListMessages returns one conversation's messages, in the order they were
// sent, filtered to those where the user is sender or recipient.
func (s *MessageService) ListMessages(ctx context.Context, username string, requestID uint) ([]*domain.Message, error) {
	return s.messageRepo.GetByRequestIDForUser(ctx, requestID, username)
}

// Delete removes a message by id. No ownership check, same as request
// deletion.
func (s *MessageService) Delete(ctx context.Context, id uint) error {
	affected, err := s.messageRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
