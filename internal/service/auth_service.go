package service

import (
	"log"
	"time"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// The original site checked a hardcoded credential pair in the browser and
// kept an "authenticated" flag in localStorage. Here the gate moved
// server-side: bcrypt comparison against configured credentials, and a
// signed session token whose expiry enforces the 24 hour re-login window.

// devFallbackPassword keeps the documented development login working when
// no hash is configured. Release mode refuses to start without a hash
// (see config.enforceReleaseSafety), so this never reaches production.
const devFallbackPassword = "reyansh@123"

// LoginResult carries the issued session token and its expiry.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login verifies the admin credential pair and issues a session token.
// Username and password failures are indistinguishable to the caller.
func Login(username, password string) (*LoginResult, error) {
	cfg := config.Get()

	if username != cfg.Admin.Username || !checkPassword(password, cfg.Admin.PasswordHash) {
		return nil, apperr.Unauthorized("invalid username or password")
	}

	hours := cfg.JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}

	token, expiresAt, err := utils.GenerateAdminToken(username, time.Duration(hours)*time.Hour)
	if err != nil {
		log.Printf("Token generation error: %v\n", err)
		return nil, apperr.New(apperr.CodeInternal, "login failed, please try again later")
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func checkPassword(password, hash string) bool {
	if hash == "" {
		if config.Get().Server.Mode == "release" {
			return false
		}
		return password == devFallbackPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckSession reports whether the presented token is a valid, unexpired
// admin session. Invalid and expired tokens both read as anonymous.
func CheckSession(tokenString string) bool {
	if tokenString == "" {
		return false
	}
	_, err := utils.ParseAdminToken(tokenString)
	return err == nil
}
