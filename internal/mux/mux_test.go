package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/internal/config"
	"carti-server/internal/jwt"
	"carti-server/internal/util"
	"carti-server/pkg/game"
	"carti-server/pkg/room"
)

func setupJWT() {
	os.Setenv("CARTI_JWT_SECRET", "test-secret")
	if err := config.Load(); err != nil {
		panic(err)
	}

	jwt.LoadKeys()
}

// identity mints an anonymous identity with a signed token for it
func identity() (string, string) {
	id := util.RandomID()
	signed, _ := jwt.Sign(id)
	return id, signed
}

func newTestMux() *Mux {
	return NewMux("", room.NewMemoryStore(), game.Options{})
}

func Test_authRouter(t *testing.T) {
	setupJWT()
	m := newTestMux()

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, r.Context().Value(ctxIdentityKey).(string))
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	id, token := identity()

	// test using auth header
	var str string
	assertGet(t, ts, "/test", &str, 200, token)
	assert.Equal(t, id, str)

	// test using query parameter
	str = ""
	assertGet(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, id, str)

	// garbage token
	assertGet(t, ts, "/test", &errObj, 401, "not-a-token")
}

func Test_roomMiddleware(t *testing.T) {
	setupJWT()
	m := newTestMux()

	ts := httptest.NewServer(m)
	defer ts.Close()

	_, token := identity()

	var errObj errorResponse
	assertGet(t, ts, "/room/"+util.RandomID(), &errObj, 404, token)
	assert.Equal(t, "Not Found", errObj.Message)

	// a path that doesn't look like a UUID never reaches the handler
	assertGet(t, ts, "/room/bogus", nil, 404, token)
}
