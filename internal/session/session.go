// Package session stores the last submitted resume in a signed cookie.
//
// The cookie value is an HS256 JWT whose payload carries the resume as
// zlib-compressed JSON. The signing key is derived from the configured
// secret with HKDF; without a secret a random key is generated, so sessions
// end when the process exits.
package session

import (
	"bytes"
	"compress/zlib"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/crypto/hkdf"
)

// CookieName is the name of the session cookie.
const CookieName = "resume_session"

// MaxCookieSize is the largest cookie value browsers reliably keep.
const MaxCookieSize = 4000

var (
	// ErrNoSession is returned when the request carries no valid session.
	ErrNoSession = errors.New("no session")
	// ErrTooLarge is returned when an encoded resume does not fit in a cookie.
	ErrTooLarge = errors.New("session data too large for a cookie")
)

// Claims are the JWT claims of a session cookie.
type Claims struct {
	Data string `json:"dat"`
	jwt.RegisteredClaims
}

// Store signs and verifies session cookies.
type Store struct {
	key    []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewStore creates a store from the session configuration.
func NewStore(cfg *config.SessionConfig) (*Store, error) {
	if cfg == nil {
		cfg = &config.SessionConfig{TTLHours: 24}
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte("resume-session-v1")), key); err != nil {
		return nil, fmt.Errorf("failed to derive session key: %w", err)
	}

	ttl := time.Duration(cfg.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Store{
		key:    key,
		ttl:    ttl,
		secure: cfg.CookieSecure,
		now:    time.Now,
	}, nil
}

// Encode signs a resume into a token.
func (s *Store) Encode(r *types.Resume) (string, error) {
	data, err := compress(r)
	if err != nil {
		return "", err
	}

	now := s.now()
	claims := &Claims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// Decode verifies a token and returns the resume it carries. Any invalid,
// tampered or expired token yields ErrNoSession.
func (s *Store) Decode(token string) (*types.Resume, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	r, err := decompress(claims.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSession, err)
	}
	return r, nil
}

// Save stores the resume in the response's session cookie.
func (s *Store) Save(w http.ResponseWriter, r *types.Resume) error {
	token, err := s.Encode(r)
	if err != nil {
		return err
	}
	if len(token) > MaxCookieSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(token))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Load returns the resume from the request's session cookie.
func (s *Store) Load(req *http.Request) (*types.Resume, error) {
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}
	return s.Decode(cookie.Value)
}

// Clear expires the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func compress(r *types.Resume) (string, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode session: %w", err)
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress session: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress session: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

func decompress(data string) (*types.Resume, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid session encoding: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("invalid session data: %w", err)
	}
	defer zr.Close()

	var r types.Resume
	if err := json.NewDecoder(io.LimitReader(zr, 1<<20)).Decode(&r); err != nil {
		return nil, fmt.Errorf("invalid session data: %w", err)
	}
	return &r, nil
}
