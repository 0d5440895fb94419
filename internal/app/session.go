package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"karilike/internal/adapters/observability"
	"karilike/internal/domain"
)

const (
	KeyUsers       = "kari_users"
	KeyCurrentUser = "kari_current_user"
)

// SessionService is the mock auth store over durable key-value storage.
//
// Plain-text passwords are kept on purpose: the store mirrors a client-side
// demo and must be replaced with salted hashing and server-side verification
// before real use.
type SessionService struct {
	kv    domain.KVStore
	delay time.Duration
	newID func() string

	// mu serializes read-modify-write on the users list and the current slot.
	mu      sync.Mutex
	current *domain.PublicUser
}

func NewSessionService(kv domain.KVStore, delay time.Duration) *SessionService {
	return &SessionService{kv: kv, delay: delay, newID: uuid.NewString}
}

// LoadCurrentUser reads the current-user slot. Absence and corrupt data both
// yield nil.
func (s *SessionService) LoadCurrentUser(ctx context.Context) (*domain.PublicUser, error) {
	raw, ok, err := s.kv.Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	var u *domain.PublicUser
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			log.Warn().Err(err).Str("key", KeyCurrentUser).Msg("corrupt current user, treating as logged out")
			u = nil
		} else if u != nil && u.ID == "" {
			log.Warn().Str("key", KeyCurrentUser).Msg("current user without id, treating as logged out")
			u = nil
		}
	}
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	return clonePublic(u), nil
}

// Current is the in-memory session user, or nil.
func (s *SessionService) Current() *domain.PublicUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePublic(s.current)
}

// Login succeeds iff a stored user has exactly this email and password.
// A failed login leaves storage untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.PublicUser, error) {
	if !sleepCtx(ctx, s.delay) {
		return domain.PublicUser{}, ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers(ctx)
	if err != nil {
		return domain.PublicUser{}, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			pu := u.Public()
			if err := s.storeCurrent(ctx, pu); err != nil {
				return domain.PublicUser{}, err
			}
			observability.ObserveAuth("login", "ok")
			log.Info().Str("user_id", pu.ID).Msg("login ok")
			return pu, nil
		}
	}
	observability.ObserveAuth("login", "invalid")
	return domain.PublicUser{}, domain.ErrInvalidCredentials
}

// Signup registers a new user and logs them in. The email must not match any
// existing entry exactly.
func (s *SessionService) Signup(ctx context.Context, req domain.SignupRequest) (domain.PublicUser, error) {
	if !sleepCtx(ctx, s.delay) {
		return domain.PublicUser{}, ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers(ctx)
	if err != nil {
		return domain.PublicUser{}, err
	}
	for _, u := range users {
		if u.Email == req.Email {
			observability.ObserveAuth("signup", "exists")
			return domain.PublicUser{}, domain.ErrAccountExists
		}
	}

	nu := domain.User{
		ID:         s.newID(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		IsVerified: req.IsVerified,
		Password:   req.Password,
	}
	users = append(users, nu)
	b, err := json.Marshal(users)
	if err != nil {
		return domain.PublicUser{}, err
	}
	if err := s.kv.Set(ctx, KeyUsers, string(b)); err != nil {
		return domain.PublicUser{}, fmt.Errorf("persist users: %w", err)
	}

	pu := nu.Public()
	if err := s.storeCurrent(ctx, pu); err != nil {
		return domain.PublicUser{}, err
	}
	observability.ObserveAuth("signup", "ok")
	log.Info().Str("user_id", pu.ID).Str("role", string(pu.Role)).Msg("signup ok")
	return pu, nil
}

// Logout clears the current-user slot only.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Remove(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.current = nil
	observability.ObserveAuth("logout", "ok")
	return nil
}

// readUsers treats a missing or malformed list as empty.
func (s *SessionService) readUsers(ctx context.Context) ([]domain.User, error) {
	raw, ok, err := s.kv.Get(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var users []domain.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Warn().Err(err).Str("key", KeyUsers).Msg("corrupt users list, treating as empty")
		return nil, nil
	}
	return users, nil
}

func (s *SessionService) storeCurrent(ctx context.Context, pu domain.PublicUser) error {
	b, err := json.Marshal(pu)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyCurrentUser, string(b)); err != nil {
		return fmt.Errorf("persist current user: %w", err)
	}
	s.current = &pu
	return nil
}

func clonePublic(u *domain.PublicUser) *domain.PublicUser {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// sleepCtx waits for d or returns false if ctx is done first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
