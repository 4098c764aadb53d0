// Package tokengen implements the development tool that creates signing
// keys and bearer tokens accepted by the API.
package tokengen

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"crowdfund/internal/adapter/auth"
	"crowdfund/internal/core/domain"
)

const usage = `usage:
  tokengen keys
  tokengen sign -key <base64 private key> -sub <identity> [-iss crowdfund] [-aud crowdfund-api] [-ttl 24h]`

// Run executes the command in args and writes its result to out. reader
// supplies key material; nil means crypto/rand.
func Run(out io.Writer, args []string, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	if len(args) == 0 {
		return errors.New(usage)
	}
	switch args[0] {
	case "keys":
		return generateKeys(out, reader)
	case "sign":
		return sign(out, args[1:])
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func generateKeys(out io.Writer, reader io.Reader) error {
	if reader == nil {
		reader = rand.Reader
	}
	publicKey, privateKey, err := ed25519.GenerateKey(reader)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	if _, err = fmt.Fprintf(out, "export AUTH_PRIVATE_KEY=%s\n", base64.RawStdEncoding.EncodeToString(privateKey)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "export AUTH_PUBLIC_KEY=%s\n", base64.RawStdEncoding.EncodeToString(publicKey))
	return err
}

func sign(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		key      = fs.String("key", "", "base64 ed25519 private key")
		subject  = fs.String("sub", "", "identity the token is issued to")
		issuer   = fs.String("iss", "crowdfund", "token issuer")
		audience = fs.String("aud", "crowdfund-api", "token audience")
		ttl      = fs.Duration("ttl", 24*time.Hour, "token lifetime")
	)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}

	privateKey, err := auth.DecodePrivateKey(*key)
	if err != nil {
		return err
	}
	if *ttl <= 0 {
		return errors.New("ttl must be positive")
	}
	token, err := auth.NewSigner(*issuer, *audience, privateKey).Sign(domain.Identity(*subject), *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
