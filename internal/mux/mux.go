package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"carti-server/internal/jwt"
	"carti-server/pkg/game"
	"carti-server/pkg/room"
)

type ctxKey int

const (
	ctxIdentityKey ctxKey = iota
	ctxRoomKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	store    room.Store
	version  string
	options  game.Options
	recorder game.MatchRecorder

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, store room.Store, options game.Options) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		store:   store,
		version: version,
		options: options,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

		rr := r.PathPrefix("/room/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomUUID())
		rr.Methods(http.MethodPost).Path("/seat").Handler(this.postRoomUUIDSeat())
		rr.Methods(http.MethodPost).Path("/bot").Handler(this.postRoomUUIDBot())
		rr.Methods(http.MethodGet).Path("/matches").Handler(this.getRoomUUIDMatches())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomUUIDWS())
	}

	return this
}

// UseRecorder attaches a match recorder that finished matches are
// reported to
func (m *Mux) UseRecorder(r game.MatchRecorder) {
	m.recorder = r
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		identity, err := jwt.ValidIdentity(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := gmux.Vars(r)
		rm, err := m.store.Get(vars["uuid"])
		if err != nil {
			if err == room.ErrRoomNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxRoomKey, rm)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
