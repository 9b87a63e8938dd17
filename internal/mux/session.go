package mux

import (
	"net/http"

	"carti-server/internal/jwt"
	"carti-server/internal/util"
)

type postSessionRequest struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	JWT      string `json:"jwt"`
}

// postSession issues an anonymous identity and a signed token for it.
// There are no accounts; a lost token is a lost identity.
func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		name := payload.Name
		if name == "" {
			name = util.GetRandomName()
		}

		identity := util.RandomID()
		signed, err := jwt.Sign(identity)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			Identity: identity,
			Name:     name,
			JWT:      signed,
		})
	}
}
