package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"carti-server/pkg/room"
)

func Test_postRoom(t *testing.T) {
	setupJWT()
	m := newTestMux()

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/room", postRoomRequest{}, &errObj, 401)

	id, token := identity()

	var resp roomWithSeatResponse
	assertPost(t, ts, "/room", postRoomRequest{Name: "Alice"}, &resp, 201, token)
	assert.Equal(t, 0, resp.Seat)
	assert.Equal(t, id, resp.Room.Owner)
	assert.NotNil(t, resp.Room.Players[0])
	assert.Equal(t, "Alice", resp.Room.Players[0].Name)
	assert.Equal(t, room.Human, resp.Room.Players[0].Type)
	assert.Equal(t, room.PhaseIdle, resp.Room.Game.Phase)
}

func Test_roomJoinAndBots(t *testing.T) {
	setupJWT()
	m := newTestMux()

	ts := httptest.NewServer(m)
	defer ts.Close()

	_, ownerToken := identity()

	var created roomWithSeatResponse
	assertPost(t, ts, "/room", postRoomRequest{Name: "Owner"}, &created, 201, ownerToken)
	base := fmt.Sprintf("/room/%s", created.Room.ID)

	// a second player takes the next seat
	_, token2 := identity()
	var joined roomWithSeatResponse
	assertPost(t, ts, base+"/seat", postRoomRequest{Name: "Bob"}, &joined, 200, token2)
	assert.Equal(t, 1, joined.Seat)

	// re-joining returns the seat already held
	joined = roomWithSeatResponse{}
	assertPost(t, ts, base+"/seat", postRoomRequest{Name: "Bob"}, &joined, 200, token2)
	assert.Equal(t, 1, joined.Seat)

	// only the owner can add bots
	var errObj errorResponse
	assertPost(t, ts, base+"/bot", nil, &errObj, 403, token2)

	var withBot roomWithSeatResponse
	assertPost(t, ts, base+"/bot", nil, &withBot, 201, ownerToken)
	assert.Equal(t, 2, withBot.Seat)
	assert.Equal(t, room.Bot, withBot.Room.Players[2].Type)

	assertPost(t, ts, base+"/bot", nil, &withBot, 201, ownerToken)
	assert.Equal(t, 3, withBot.Seat)

	// table's full now
	assertPost(t, ts, base+"/bot", nil, &errObj, 409, ownerToken)

	_, token3 := identity()
	assertPost(t, ts, base+"/seat", postRoomRequest{Name: "Late"}, &errObj, 409, token3)

	// the room reads back with all four seats taken
	var fetched room.Room
	assertGet(t, ts, base, &fetched, 200, ownerToken)
	for seat := 0; seat < 4; seat++ {
		assert.NotNil(t, fetched.Players[seat])
	}
}
