package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/internal/jwt"
)

func Test_postSession(t *testing.T) {
	setupJWT()
	m := newTestMux()

	ts := httptest.NewServer(m)
	defer ts.Close()

	var resp sessionResponse
	assertPost(t, ts, "/session", postSessionRequest{Name: "Alice"}, &resp, 201)
	assert.Equal(t, "Alice", resp.Name)
	assert.NotEqual(t, "", resp.Identity)

	// the token round-trips back to the same identity
	id, err := jwt.ValidIdentity(resp.JWT)
	assert.NoError(t, err)
	assert.Equal(t, resp.Identity, id)

	// a missing name gets a generated one
	resp = sessionResponse{}
	assertPost(t, ts, "/session", postSessionRequest{}, &resp, 201)
	assert.NotEqual(t, "", resp.Name)

	var errObj errorResponse
	assertPost(t, ts, "/session", "{", &errObj, 400)
}
