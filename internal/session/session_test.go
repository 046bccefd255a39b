package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/formdata"
	"github.com/jonathan/resume-builder/internal/sample"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, secret string) *Store {
	t.Helper()
	s, err := NewStore(&config.SessionConfig{Secret: secret, TTLHours: 1})
	require.NoError(t, err)
	return s
}

func sampleResume() *types.Resume {
	return formdata.Build(sample.Default(), types.TemplateModern)
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t, "0123456789abcdef-secret")
	want := sampleResume()

	rec := httptest.NewRecorder()
	require.NoError(t, s.Save(rec, want))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	got, err := s.Load(req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_SameSecretSharesSessions(t *testing.T) {
	a := newTestStore(t, "shared-secret-0123456789")
	b := newTestStore(t, "shared-secret-0123456789")

	token, err := a.Encode(sampleResume())
	require.NoError(t, err)

	_, err = b.Decode(token)
	assert.NoError(t, err)
}

func TestStore_RandomSecretPerStore(t *testing.T) {
	a := newTestStore(t, "")
	b := newTestStore(t, "")

	token, err := a.Encode(sampleResume())
	require.NoError(t, err)

	_, err = a.Decode(token)
	assert.NoError(t, err)
	_, err = b.Decode(token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_RejectsTamperedToken(t *testing.T) {
	s := newTestStore(t, "0123456789abcdef-secret")
	token, err := s.Encode(sampleResume())
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = s.Decode(tampered)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = s.Decode("not-a-token")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_RejectsExpiredToken(t *testing.T) {
	s := newTestStore(t, "0123456789abcdef-secret")
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }

	token, err := s.Encode(sampleResume())
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.Decode(token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_LoadWithoutCookie(t *testing.T) {
	s := newTestStore(t, "")
	_, err := s.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SaveTooLarge(t *testing.T) {
	s := newTestStore(t, "")
	noise := make([]byte, 8000)
	_, err := rand.Read(noise)
	require.NoError(t, err)

	r := &types.Resume{Name: hex.EncodeToString(noise)}
	rec := httptest.NewRecorder()
	err = s.Save(rec, r)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, rec.Result().Cookies())
}

func TestStore_Clear(t *testing.T) {
	s := newTestStore(t, "")
	rec := httptest.NewRecorder()
	s.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
