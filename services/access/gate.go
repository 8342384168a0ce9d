package access

import (
	"crypto/subtle"
	"errors"

	"github.com/happywht/gg-mange/config"
	"github.com/happywht/gg-mange/services/logging"
)

var ErrUnauthorized = errors.New("unauthorized: admin password mismatch")

// Gate authorizes the two sensitive operation classes: reads of per-account
// credentials, and admin-only mutations.
//
// The admin check is a single shared password with no per-admin identity,
// hashing, or rate limiting. That is a documented weakness of this tool,
// not a pattern to copy; the comparison is at least constant-time so the
// password length and prefix do not leak through response timing.
type Gate struct {
	adminSecret string
	logger      *logging.Service
}

func NewGate(cfg *config.Config, logger *logging.Service) *Gate {
	return &Gate{
		adminSecret: cfg.Admin.Password,
		logger:      logger,
	}
}

// AuthorizeAdmin fails closed: empty input, empty configured secret, and any
// mismatch all deny.
func (g *Gate) AuthorizeAdmin(supplied string) bool {
	if supplied == "" || g.adminSecret == "" {
		return false
	}

	allowed := subtle.ConstantTimeCompare([]byte(supplied), []byte(g.adminSecret)) == 1
	if !allowed {
		g.logger.Warn("admin authorization rejected")
	}
	return allowed
}

// AuthorizeSensitiveRead reports whether the caller may read an account's
// plaintext password or a generated passcode.
//
// It is unconditionally true: the upstream system never distinguished an
// authenticated user from an anonymous caller on these endpoints, relying
// on the page-level guard alone. Routing every sensitive read through this
// method keeps the gap in one place so a hardened deployment only has to
// change this decision.
func (g *Gate) AuthorizeSensitiveRead(accountID string) bool {
	return true
}
