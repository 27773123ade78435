package service

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const captchaTTL = 5 * time.Minute

// CaptchaChallenge is handed to the contact form client.
type CaptchaChallenge struct {
	Token    string `json:"token"`
	Question string `json:"question"`
}

type captchaEntry struct {
	answer  string
	expires time.Time
}

// CaptchaStore issues arithmetic challenges for the contact form and
// verifies the answers. Entries expire after five minutes and are consumed
// on verification, so a token never validates twice.
type CaptchaStore struct {
	mu      sync.Mutex
	entries map[string]captchaEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewCaptchaStore creates a store with the default TTL.
func NewCaptchaStore() *CaptchaStore {
	return &CaptchaStore{
		entries: make(map[string]captchaEntry),
		ttl:     captchaTTL,
		now:     time.Now,
	}
}

// New issues a fresh challenge and sweeps out expired ones.
func (s *CaptchaStore) New() CaptchaChallenge {
	a, b := rand.Intn(10)+1, rand.Intn(10)+1
	token := uuid.NewString()

	s.mu.Lock()
	s.sweepLocked()
	s.entries[token] = captchaEntry{
		answer:  strconv.Itoa(a + b),
		expires: s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return CaptchaChallenge{
		Token:    token,
		Question: fmt.Sprintf("What is %d + %d?", a, b),
	}
}

// Verify consumes the token and reports whether the answer matches.
// Unknown, expired and already used tokens all fail.
func (s *CaptchaStore) Verify(token, answer string) bool {
	s.mu.Lock()
	entry, ok := s.entries[token]
	if ok {
		delete(s.entries, token)
	}
	s.mu.Unlock()

	if !ok || s.now().After(entry.expires) {
		return false
	}
	return strings.TrimSpace(answer) == entry.answer
}

// sweepLocked drops expired entries. Callers hold mu.
func (s *CaptchaStore) sweepLocked() {
	now := s.now()
	for token, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, token)
		}
	}
}
