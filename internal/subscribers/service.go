package subscribers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-backend/pkg/db"
	"github.com/velora-labs/storefront-backend/pkg/db/models"
	pkgerrors "github.com/velora-labs/storefront-backend/pkg/errors"
)

// SubscriberDTO is the transport shape for one newsletter signup.
type SubscriberDTO struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// Service owns newsletter signups.
type Service struct {
	db *gorm.DB
}

// NewService constructs a subscribers service bound to the provided GORM DB.
func NewService(conn *gorm.DB) (*Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection is required")
	}
	return &Service{db: conn}, nil
}

// Subscribe records the email. Signing up twice answers conflict so the
// storefront can tell the visitor they are already on the list.
func (s *Service) Subscribe(ctx context.Context, email string) (*SubscriberDTO, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	subscriber := &models.Subscriber{Email: normalized}
	if err := s.db.WithContext(ctx).Create(subscriber).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already subscribed")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create subscriber")
	}
	return fromModel(subscriber), nil
}

// List returns every signup, newest first. Admin read.
func (s *Service) List(ctx context.Context) ([]SubscriberDTO, error) {
	var list []models.Subscriber
	if err := s.db.WithContext(ctx).Order("subscribed_at DESC").Find(&list).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list subscribers")
	}
	out := make([]SubscriberDTO, 0, len(list))
	for i := range list {
		out = append(out, *fromModel(&list[i]))
	}
	return out, nil
}

func fromModel(m *models.Subscriber) *SubscriberDTO {
	return &SubscriberDTO{
		ID:           m.ID,
		Email:        m.Email,
		SubscribedAt: m.SubscribedAt,
	}
}
