package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/session"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/repositories/users"
)

// DirectoryService manages the user directory, the per-user card vaults and
// the auth session.
//
// Contract:
//   - Register: validate, enforce email/phone uniqueness, persist, promote
//     the new user to the active session.
//   - Authenticate: admin aliases bypass the directory; otherwise exact
//     (email, password) match against stored users.
//   - Logout: unconditional and idempotent.
//   - ListAll: built-in admin first, then stored users in insertion order.
//   - DeleteUser: silent no-op for unknown ids, ErrProtectedAccount for the
//     built-in admin, tears down a matching active session.
//   - AddCard: first card in a vault becomes the default; refreshes the
//     session copy when the target is the active identity.
//   - ExportReport: deterministic text projection over ListAll.
type DirectoryService interface {
	Register(ctx context.Context, req RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, identifier, password string) (models.User, bool, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, bool, error)
	ListAll(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	AddCard(ctx context.Context, userID string, req CardRequest) (models.Card, error)
	ExportReport(ctx context.Context) (string, error)
	ExportFilename() string
}

type directoryService struct {
	users    users.Repository
	sessions session.Store
	log      logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewDirectoryService constructs a DirectoryService over the given
// repositories.
func NewDirectoryService(usersRepo users.Repository, sessions session.Store, log logging.Logger) DirectoryService {
	return &directoryService{
		users:    usersRepo,
		sessions: sessions,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *directoryService) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	if err := validateRegister(s.validate, req); err != nil {
		return models.User{}, err
	}

	stored, err := s.users.GetAll(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to load directory: %w", err)
	}

	cleanPhone := models.NormalizePhone(req.Phone)
	for _, u := range stored {
		if u.Email == req.Email {
			return models.User{}, ErrDuplicateEmail
		}
		if u.Phone == cleanPhone {
			return models.User{}, ErrDuplicatePhone
		}
	}

	now := s.now()
	user := models.User{
		ID:         models.NewUserID(req.FirstName, req.LastName, now),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      cleanPhone,
		Password:   req.Password,
		Address:    req.Address,
		CreatedAt:  now,
		IsAdmin:    false,
		SavedCards: []models.Card{},
	}

	if req.CardNumber != "" {
		user.SavedCards = append(user.SavedCards, models.Card{
			ID:         models.NewCardID(now),
			CardName:   cardNameOrDefault(req.CardName),
			CardNumber: req.CardNumber,
			CardExpiry: req.CardExpiry,
			CardCVC:    req.CardCVC,
			IsDefault:  true,
			AddedDate:  now,
		})
	}

	stored = append(stored, user)
	if err := s.users.SaveAll(ctx, stored); err != nil {
		return models.User{}, fmt.Errorf("failed to persist directory: %w", err)
	}

	if err := s.sessions.SetCurrent(ctx, user, false); err != nil {
		return models.User{}, fmt.Errorf("failed to open session: %w", err)
	}

	s.log.Info(ctx, "user registered", "id", user.ID, "email", user.Email)
	return user, nil
}

func (s *directoryService) Authenticate(ctx context.Context, identifier, password string) (models.User, bool, error) {
	if (identifier == models.AdminAlias || identifier == models.AdminEmail) && password == models.AdminPassword {
		admin := models.BuiltinAdmin(s.now())
		if err := s.sessions.SetCurrent(ctx, admin, true); err != nil {
			return models.User{}, false, fmt.Errorf("failed to open session: %w", err)
		}
		s.log.Info(ctx, "admin logged in")
		return admin, true, nil
	}

	stored, err := s.users.GetAll(ctx)
	if err != nil {
		return models.User{}, false, fmt.Errorf("failed to load directory: %w", err)
	}

	for _, u := range stored {
		if u.Email == identifier && u.Password == password {
			if err := s.sessions.SetCurrent(ctx, u, u.IsAdmin); err != nil {
				return models.User{}, false, fmt.Errorf("failed to open session: %w", err)
			}
			s.log.Info(ctx, "user logged in", "id", u.ID)
			return u, u.IsAdmin, nil
		}
	}

	return models.User{}, false, ErrInvalidCredentials
}

func (s *directoryService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *directoryService) CurrentUser(ctx context.Context) (*models.User, bool, error) {
	return s.sessions.Current(ctx)
}

func (s *directoryService) ListAll(ctx context.Context) ([]models.User, error) {
	stored, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load directory: %w", err)
	}

	all := make([]models.User, 0, len(stored)+1)
	all = append(all, models.BuiltinAdmin(s.now()))
	all = append(all, stored...)
	return all, nil
}

func (s *directoryService) DeleteUser(ctx context.Context, id string) error {
	if id == models.AdminID {
		return ErrProtectedAccount
	}

	stored, err := s.users.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load directory: %w", err)
	}

	idx := -1
	for i, u := range stored {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.log.Warn(ctx, "delete requested for unknown user", "id", id)
		return nil
	}

	stored = append(stored[:idx], stored[idx+1:]...)
	if err := s.users.SaveAll(ctx, stored); err != nil {
		return fmt.Errorf("failed to persist directory: %w", err)
	}

	current, _, err := s.sessions.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if current != nil && current.ID == id {
		if err := s.sessions.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}

	s.log.Info(ctx, "user deleted", "id", id)
	return nil
}

func (s *directoryService) AddCard(ctx context.Context, userID string, req CardRequest) (models.Card, error) {
	if err := validateCard(req); err != nil {
		return models.Card{}, err
	}

	stored, err := s.users.GetAll(ctx)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to load directory: %w", err)
	}

	idx := -1
	for i, u := range stored {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.Card{}, ErrUserNotFound
	}

	now := s.now()
	card := models.Card{
		ID:         models.NewCardID(now),
		CardName:   cardNameOrDefault(req.CardName),
		CardNumber: req.CardNumber,
		CardExpiry: req.CardExpiry,
		CardCVC:    req.CardCVC,
		IsDefault:  len(stored[idx].SavedCards) == 0,
		AddedDate:  now,
	}
	stored[idx].SavedCards = append(stored[idx].SavedCards, card)

	if err := s.users.SaveAll(ctx, stored); err != nil {
		return models.Card{}, fmt.Errorf("failed to persist directory: %w", err)
	}

	// Keep the session snapshot in step when the active user gained a card.
	current, isAdmin, err := s.sessions.Current(ctx)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to read session: %w", err)
	}
	if current != nil && current.ID == userID {
		if err := s.sessions.SetCurrent(ctx, stored[idx], isAdmin); err != nil {
			return models.Card{}, fmt.Errorf("failed to refresh session: %w", err)
		}
	}

	s.log.Info(ctx, "card added", "user", userID, "card", card.ID, "default", card.IsDefault)
	return card, nil
}

func cardNameOrDefault(name string) string {
	if strings.TrimSpace(name) == "" {
		return "My Card"
	}
	return name
}
