package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

// Credentials is the fixed pair accepted by the login endpoints. When
// PasswordHash is set it takes precedence over the plaintext Password and
// is verified with bcrypt.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

// Service owns all mutable authentication state: the secret counter and
// the two bounded token registries. All state is instance-scoped and
// mutex-guarded; the zero value is not usable, construct via NewService.
type Service struct {
	mu        sync.Mutex
	creds     Credentials
	secretKey uint64
	sessions  *TokenRegistry
	tokens    *TokenRegistry
}

// NewService constructs a Service with two registries of the given capacity.
func NewService(creds Credentials, capacity int) *Service {
	return &Service{
		creds:    creds,
		sessions: NewTokenRegistry(capacity),
		tokens:   NewTokenRegistry(capacity),
	}
}

// verify checks the provided pair against the configured credentials.
// Both comparisons always run so timing does not reveal which field
// mismatched or where.
func (s *Service) verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1

	var passOK bool
	if s.creds.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	}

	return userOK && passOK
}

// deriveToken computes the deterministic token for the current secret key
// and advances the key. Caller must hold s.mu.
func (s *Service) deriveToken(username, password string) string {
	sum := sha256.Sum256([]byte(username + password + strconv.FormatUint(s.secretKey, 10)))
	s.secretKey++
	return hex.EncodeToString(sum[:])
}

// IssueSessionToken verifies credentials and registers a session token.
func (s *Service) IssueSessionToken(username, password string) (string, error) {
	if !s.verify(username, password) {
		return "", httpx.ErrUnauthorized
	}
	s.mu.Lock()
	token := s.deriveToken(username, password)
	s.mu.Unlock()
	s.sessions.Add(token)
	return token, nil
}

// IssueLoginToken verifies credentials and registers a login token.
func (s *Service) IssueLoginToken(username, password string) (string, error) {
	if !s.verify(username, password) {
		return "", httpx.ErrUnauthorized
	}
	s.mu.Lock()
	token := s.deriveToken(username, password)
	s.mu.Unlock()
	s.tokens.Add(token)
	return token, nil
}

// CheckSession reports whether token is a live session token.
func (s *Service) CheckSession(token string) bool {
	return token != "" && s.sessions.Contains(token)
}

// CheckToken reports whether token is a live login token.
func (s *Service) CheckToken(token string) bool {
	return token != "" && s.tokens.Contains(token)
}

// RevokeSession removes a session token; unknown tokens are unauthorized.
func (s *Service) RevokeSession(token string) error {
	if token == "" || !s.sessions.Remove(token) {
		return httpx.ErrUnauthorized
	}
	return nil
}

// RevokeToken removes a login token; unknown tokens are unauthorized.
func (s *Service) RevokeToken(token string) error {
	if token == "" || !s.tokens.Remove(token) {
		return httpx.ErrUnauthorized
	}
	return nil
}

// VerifyPasswordHash recomputes the sha512 hex digest of password and
// compares it to expected. Empty or non-ASCII input is unauthorized,
// never an internal error.
func VerifyPasswordHash(password, expected string) error {
	if password == "" || expected == "" {
		return httpx.ErrUnauthorized
	}
	for i := 0; i < len(password); i++ {
		if password[i] > 127 {
			return httpx.ErrUnauthorized
		}
	}
	sum := sha512.Sum512([]byte(password))
	digest := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(digest), []byte(expected)) != 1 {
		return httpx.ErrUnauthorized
	}
	return nil
}
