package totp

import (
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/happywht/gg-mange/services/logging"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

// Period is the RFC 6238 time-step in seconds. Codes rotate on every
// boundary of this window.
const Period = 30

var ErrInvalidSecret = errors.New("invalid TOTP secret")

// Passcode is one generated code together with the seconds remaining until
// it rotates.
type Passcode struct {
	Code     string
	TimeLeft int
}

// Engine derives time-based passcodes from shared secrets. It is a pure
// function of (secret, time): no stored counters, no synchronization.
type Engine struct {
	logger *logging.Service
}

func NewEngine(logger *logging.Service) *Engine {
	return &Engine{logger: logger}
}

// NormalizeSecret prepares a provisioned secret for decoding: secrets copied
// from QR payloads commonly arrive lowercase, whitespace-grouped, and without
// base32 padding.
func NormalizeSecret(secret string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(secret), ""))
	s = strings.TrimRight(s, "=")
	if n := len(s) % 8; n != 0 {
		s += strings.Repeat("=", 8-n)
	}
	return s
}

// TimeLeft reports the seconds until the current code rotates, in [1, Period].
// Exactly on a step boundary a fresh window has just opened, so the result
// is Period, never 0.
func TimeLeft(at time.Time) int {
	return Period - int(at.Unix()%Period)
}

// GenerateCode produces the 6-digit code for the secret at the given time,
// matching any standard RFC 6238 authenticator seeded identically.
func (e *Engine) GenerateCode(secret string, at time.Time) (string, error) {
	normalized := NormalizeSecret(secret)
	if normalized == "" {
		return "", fmt.Errorf("%w: empty secret", ErrInvalidSecret)
	}

	if _, err := base32.StdEncoding.DecodeString(normalized); err != nil {
		e.logger.Warn("TOTP secret failed base32 decoding", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}

	code, err := totp.GenerateCode(normalized, at)
	if err != nil {
		e.logger.Error("TOTP code generation failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrInvalidSecret, err)
	}

	return code, nil
}

// Passcode bundles the current code with its remaining validity window.
func (e *Engine) Passcode(secret string, at time.Time) (*Passcode, error) {
	code, err := e.GenerateCode(secret, at)
	if err != nil {
		return nil, err
	}

	return &Passcode{
		Code:     code,
		TimeLeft: TimeLeft(at),
	}, nil
}
