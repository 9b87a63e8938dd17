package mux

import (
	"net/http"

	"carti-server/internal/util"
	"carti-server/pkg/model"
	"carti-server/pkg/room"
)

type postRoomRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type roomWithSeatResponse struct {
	Room *room.Room `json:"room"`
	Seat int        `json:"seat"`
}

// postRoom creates a room and seats the creator at seat 0, making them
// the room's owner and the authority for timed transitions.
func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoomRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		identity := r.Context().Value(ctxIdentityKey).(string)

		name := payload.Name
		if name == "" {
			name = util.GetRandomName()
		}

		rm, err := m.store.Create(identity)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		seat, err := m.store.JoinSeat(rm.ID, room.Player{
			ID:      identity,
			Name:    name,
			Avatar:  payload.Avatar,
			Type:    room.Human,
			IsReady: true,
		})
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		rm, err = m.store.Get(rm.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomWithSeatResponse{Room: rm, Seat: seat})
	}
}

func (m *Mux) getRoomUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)
		writeJSON(w, http.StatusOK, rm)
	}
}

// postRoomUUIDSeat joins the caller into the first free seat. Re-joining
// with the same identity returns the seat already held.
func (m *Mux) postRoomUUIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postRoomRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		identity := r.Context().Value(ctxIdentityKey).(string)
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		name := payload.Name
		if name == "" {
			name = util.GetRandomName()
		}

		seat, err := m.store.JoinSeat(rm.ID, room.Player{
			ID:      identity,
			Name:    name,
			Avatar:  payload.Avatar,
			Type:    room.Human,
			IsReady: true,
		})
		if err != nil {
			if err == room.ErrRoomFull {
				writeJSONError(w, http.StatusConflict, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		fresh, err := m.store.Get(rm.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, roomWithSeatResponse{Room: fresh, Seat: seat})
	}
}

// postRoomUUIDBot fills the first free seat with a bot. Owner only.
func (m *Mux) postRoomUUIDBot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := r.Context().Value(ctxIdentityKey).(string)
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		if rm.Owner != identity {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		seat := room.NoSeat
		for i, p := range rm.Players {
			if p == nil {
				seat = i
				break
			}
		}

		if seat == room.NoSeat {
			writeJSONError(w, http.StatusConflict, room.ErrRoomFull)
			return
		}

		bot := &room.Player{
			ID:      "bot:" + util.RandomID(),
			Name:    util.GetRandomName(),
			Seat:    seat,
			Type:    room.Bot,
			IsReady: true,
		}

		if err := m.store.SetPlayer(rm.ID, seat, bot); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		fresh, err := m.store.Get(rm.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, roomWithSeatResponse{Room: fresh, Seat: seat})
	}
}

// getRoomUUIDMatches returns the persisted match history for the room
func (m *Mux) getRoomUUIDMatches() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rm := r.Context().Value(ctxRoomKey).(*room.Room)

		matches, err := model.MatchesByRoom(r.Context(), rm.ID, 0, 100)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, matches)
	}
}
