package auth

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	userrepo "github.com/aliskhannn/newsletter/internal/repository/user"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a valid bcrypt hash compared against whenever the username is
// unknown, so that lookups for existing and non-existing users take the same
// time. The hashed value never matches a submitted password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const hashCost = 10

type userRepository interface {
	GetCredentials(ctx context.Context, username string) (uuid.UUID, string, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// Service verifies admin credentials and manages password changes.
//
// bcrypt comparisons are CPU-bound, so they run under a semaphore sized to
// the number of available CPUs. A burst of login attempts then queues on the
// semaphore instead of saturating the scheduler and starving I/O-bound
// request handling.
type Service struct {
	repo userRepository
	sem  *semaphore.Weighted
}

// NewService creates a new auth service.
func NewService(repo userRepository) *Service {
	return &Service{
		repo: repo,
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

// Verify checks a username/password pair and returns the user id on success.
// It returns ErrInvalidCredentials both for an unknown username and for a
// wrong password; an unknown username still pays for one hash comparison.
func (s *Service) Verify(ctx context.Context, username, password string) (uuid.UUID, error) {
	expectedHash := dummyHash
	known := false

	userID, storedHash, err := s.repo.GetCredentials(ctx, username)
	switch {
	case err == nil:
		expectedHash = storedHash
		known = true
	case errors.Is(err, userrepo.ErrUserNotFound):
		// Fall through to the dummy comparison below.
	default:
		return uuid.Nil, fmt.Errorf("failed to get stored credentials: %w", err)
	}

	if err := s.compareHash(ctx, expectedHash, password); err != nil {
		return uuid.Nil, err
	}

	if !known {
		return uuid.Nil, ErrInvalidCredentials
	}

	return userID, nil
}

// ChangePassword hashes a new password with a fresh random salt and updates
// the stored hash.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), hashCost)
	s.sem.Release(1)

	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *Service) compareHash(ctx context.Context, expectedHash, password string) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire hashing slot: %w", err)
	}
	err := bcrypt.CompareHashAndPassword([]byte(expectedHash), []byte(password))
	s.sem.Release(1)

	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}

		return fmt.Errorf("failed to compare password hash: %w", err)
	}

	return nil
}
