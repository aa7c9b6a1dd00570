package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	listsrepo "sneakr-backend/internal/features/lists/repository"
	"sneakr-backend/internal/platform/mail"
)

var ErrEmptyCollection = errors.New("collection is empty")

const mailSubject = "Your sneaker collection"

type NotificationService interface {
	// SendCollectionEmail mails the caller's collection as a plain-text
	// list, one line per item.
	SendCollectionEmail(ctx context.Context, userID int64, recipient string) error
}

type notificationService struct {
	collection listsrepo.ListRepository
	sender     mail.Sender
}

func NewNotificationService(collection listsrepo.ListRepository, sender mail.Sender) NotificationService {
	return &notificationService{collection: collection, sender: sender}
}

func (s *notificationService) SendCollectionEmail(ctx context.Context, userID int64, recipient string) error {
	entries, err := s.collection.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}
	if len(entries) == 0 {
		return ErrEmptyCollection
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Name)
		b.WriteString(": ")
		b.WriteString(strconv.FormatFloat(e.MarketValue, 'f', -1, 64))
		b.WriteString("€\n")
	}

	if err := s.sender.Send(recipient, mailSubject, b.String()); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
