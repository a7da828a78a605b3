package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	f := flasher{key: []byte("0123456789abcdef")}

	set := httptest.NewRecorder()
	f.set(set, "Venue The Musical Hop was successfully listed!")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	assert.Equal(t, []string{"Venue The Musical Hop was successfully listed!"}, f.pop(rr, req))

	cleared := rr.Result().Cookies()
	if assert.Len(t, cleared, 1) {
		assert.Equal(t, flashCookie, cleared[0].Name)
		assert.Less(t, cleared[0].MaxAge, 0)
	}
}

func TestFlashRejectsForgedCookie(t *testing.T) {
	signer := flasher{key: []byte("0123456789abcdef")}
	other := flasher{key: []byte("another-key-entirely")}

	set := httptest.NewRecorder()
	other.set(set, "forged")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}

	assert.Nil(t, signer.pop(httptest.NewRecorder(), req))
}

func TestFlashWithoutCookie(t *testing.T) {
	f := flasher{key: []byte("0123456789abcdef")}
	rr := httptest.NewRecorder()

	assert.Nil(t, f.pop(rr, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Empty(t, rr.Result().Cookies())
}

func flashRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: token})
	return req
}

func TestFlashRejectsOtherSigningMethod(t *testing.T) {
	key := []byte("0123456789abcdef")
	f := flasher{key: key}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, flashClaims{Messages: []string{"forged"}}).SignedString(key)
	require.NoError(t, err)

	assert.Nil(t, f.pop(httptest.NewRecorder(), flashRequest(token)))
}

func TestFlashRejectsExpiredCookie(t *testing.T) {
	key := []byte("0123456789abcdef")
	f := flasher{key: key}

	claims := flashClaims{
		Messages: []string{"stale"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	assert.Nil(t, f.pop(httptest.NewRecorder(), flashRequest(token)))
}

func TestFlashRejectsGarbage(t *testing.T) {
	f := flasher{key: []byte("0123456789abcdef")}
	assert.Nil(t, f.pop(httptest.NewRecorder(), flashRequest("not-a-token")))
}
