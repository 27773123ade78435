package service

import (
	"fmt"
	"strconv"
	"testing"
	"time"
)

func solveChallenge(t *testing.T, challenge CaptchaChallenge) string {
	t.Helper()

	var a, b int
	if _, err := fmt.Sscanf(challenge.Question, "What is %d + %d?", &a, &b); err != nil {
		t.Fatalf("unexpected question format %q: %v", challenge.Question, err)
	}
	return strconv.Itoa(a + b)
}

func TestCaptchaVerifyConsumesToken(t *testing.T) {
	store := NewCaptchaStore()
	challenge := store.New()

	if challenge.Token == "" {
		t.Fatalf("expected a token")
	}

	answer := solveChallenge(t, challenge)
	if !store.Verify(challenge.Token, " "+answer+" ") {
		t.Fatalf("expected correct answer to verify")
	}
	if store.Verify(challenge.Token, answer) {
		t.Fatalf("expected token to be single use")
	}
}

func TestCaptchaRejectsWrongAnswer(t *testing.T) {
	store := NewCaptchaStore()
	challenge := store.New()

	if store.Verify(challenge.Token, "999") {
		t.Fatalf("expected wrong answer to fail")
	}
	if store.Verify(challenge.Token, solveChallenge(t, challenge)) {
		t.Fatalf("expected failed attempt to consume the token")
	}
	if store.Verify("no-such-token", "4") {
		t.Fatalf("expected unknown token to fail")
	}
}

func TestCaptchaExpires(t *testing.T) {
	store := NewCaptchaStore()
	base := time.Now()
	store.now = func() time.Time { return base }

	challenge := store.New()
	answer := solveChallenge(t, challenge)

	store.now = func() time.Time { return base.Add(captchaTTL + time.Second) }
	if store.Verify(challenge.Token, answer) {
		t.Fatalf("expected expired token to fail")
	}
}

func TestCaptchaSweepsExpiredEntries(t *testing.T) {
	store := NewCaptchaStore()
	base := time.Now()
	store.now = func() time.Time { return base }

	store.New()
	store.New()

	store.now = func() time.Time { return base.Add(captchaTTL + time.Second) }
	fresh := store.New()

	store.mu.Lock()
	remaining := len(store.entries)
	_, ok := store.entries[fresh.Token]
	store.mu.Unlock()

	if remaining != 1 || !ok {
		t.Fatalf("expected only the fresh entry to survive the sweep, got %d", remaining)
	}
}
