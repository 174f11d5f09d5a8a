// Package auth gates the CLI behind a shared password and keeps the unlocked
// session in the system keyring until it times out.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/samber/mo"
	"github.com/trixio-cli/trixio/log"
	"github.com/zalando/go-keyring"
)

const (
	service = "trixio"
	user    = "session"
)

// ErrWrongPassword is returned by Unlock for a mismatched attempt.
var ErrWrongPassword = errors.New("wrong password")

// Gate checks attempts against the configured password. An empty password
// disables the gate.
type Gate struct {
	password string
	timeout  time.Duration
	now      func() time.Time
}

func NewGate(password string, timeout time.Duration) *Gate {
	return &Gate{
		password: password,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Disabled reports whether no password is configured.
func (g *Gate) Disabled() bool {
	return g.password == ""
}

// Unlock opens a session lasting the configured timeout.
func (g *Gate) Unlock(attempt string) error {
	if g.Disabled() {
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(attempt), []byte(g.password)) != 1 {
		log.Warn("rejected unlock attempt")
		return ErrWrongPassword
	}

	expiry := g.now().Add(g.timeout)
	if err := keyring.Set(service, user, expiry.Format(time.RFC3339)); err != nil {
		return err
	}

	log.Infof("session unlocked until %s", expiry.Format(time.RFC3339))
	return nil
}

// Expiry is the end of the stored session, if there is one.
func (g *Gate) Expiry() mo.Option[time.Time] {
	raw, err := keyring.Get(service, user)
	if err != nil {
		return mo.None[time.Time]()
	}

	expiry, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return mo.None[time.Time]()
	}

	return mo.Some(expiry)
}

// Unlocked reports whether a live session exists. A stale session is removed.
func (g *Gate) Unlocked() bool {
	if g.Disabled() {
		return true
	}

	expiry, ok := g.Expiry().Get()
	if !ok {
		return false
	}

	if g.now().Before(expiry) {
		return true
	}

	if err := g.Lock(); err != nil {
		log.Warn(err)
	}
	return false
}

// Lock ends the current session. Locking without a session is not an error.
func (g *Gate) Lock() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
