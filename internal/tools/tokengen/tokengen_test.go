package tokengen

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"crowdfund/internal/adapter/auth"
	"crowdfund/internal/config/configs"
)

func TestRunRequiresOutput(t *testing.T) {
	if err := Run(nil, []string{"keys"}, bytes.NewReader([]byte{1})); err == nil {
		t.Fatal("expected error when output is nil")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := Run(&bytes.Buffer{}, []string{"bogus"}, nil); err == nil {
		t.Fatal("expected error for unknown command")
	}
	if err := Run(&bytes.Buffer{}, nil, nil); err == nil {
		t.Fatal("expected error without command")
	}
}

func generate(t *testing.T) (private, public string) {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := Run(buf, []string{"keys"}, bytes.NewReader(bytes.Repeat([]byte{1}, 64))); err != nil {
		t.Fatalf("keys: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	private = strings.TrimPrefix(lines[0], "export AUTH_PRIVATE_KEY=")
	public = strings.TrimPrefix(lines[1], "export AUTH_PUBLIC_KEY=")
	if private == lines[0] || public == lines[1] {
		t.Fatalf("unexpected output format: %q", buf.String())
	}
	return private, public
}

func TestKeysAndSignRoundTrip(t *testing.T) {
	private, public := generate(t)

	buf := &bytes.Buffer{}
	if err := Run(buf, []string{"sign", "-key", private, "-sub", "alice", "-ttl", "1h"}, nil); err != nil {
		t.Fatalf("sign: %v", err)
	}

	verifier, err := auth.NewVerifier(configs.Auth{Issuer: "crowdfund", Audience: "crowdfund-api", PublicKey: public})
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	who, err := verifier.Authenticate(context.Background(), strings.TrimSpace(buf.String()))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if who != "alice" {
		t.Fatalf("expected alice, got %q", who)
	}
}

func TestSignValidatesInput(t *testing.T) {
	private, _ := generate(t)
	cases := map[string][]string{
		"missing key":     {"sign", "-sub", "alice"},
		"bad key":         {"sign", "-key", "AAAA", "-sub", "alice"},
		"missing subject": {"sign", "-key", private},
		"negative ttl":    {"sign", "-key", private, "-sub", "alice", "-ttl", "-1h"},
		"unknown flag":    {"sign", "-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := Run(&bytes.Buffer{}, args, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
