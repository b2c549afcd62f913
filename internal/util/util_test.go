package util

import (
	"testing"
	"time"
)

func TestHashToken(t *testing.T) {
	t.Parallel()

	// sha256("abc")
	const want = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := HashToken("abc"); got != want {
		t.Fatalf("HashToken(abc) = %s, want %s", got, want)
	}

	if HashToken("a") == HashToken("b") {
		t.Fatalf("distinct tokens must hash differently")
	}
}

func TestHashTokens_SkipsEmpty(t *testing.T) {
	t.Parallel()

	got := HashTokens("", "abc", "")
	if len(got) != 1 || got[0] != HashToken("abc") {
		t.Fatalf("HashTokens = %v, want single digest of abc", got)
	}
}

func TestRandomHex(t *testing.T) {
	t.Parallel()

	first, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex error: %v", err)
	}
	second, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex error: %v", err)
	}

	if len(first) != 64 {
		t.Fatalf("len(RandomHex(32)) = %d, want 64", len(first))
	}
	if first == second {
		t.Fatalf("two random values collided: %s", first)
	}
}

func TestHumanDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub-second", duration: 850 * time.Millisecond, expected: "850ms"},
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "rounds up into the next minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours drop seconds", duration: time.Hour + 30*time.Minute + 15*time.Second, expected: "1h30m"},
		{name: "negative", duration: -3 * time.Second, expected: "-3s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := HumanDuration(tt.duration); got != tt.expected {
				t.Fatalf("HumanDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
