package mux

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"carti-server/pkg/game"
	"carti-server/pkg/room"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type wsMessage struct {
	Type    string     `json:"type"`
	Room    *room.Room `json:"room,omitempty"`
	Message string     `json:"message,omitempty"`
}

type wsAction struct {
	Action    string `json:"action"`
	Contract  string `json:"contract,omitempty"`
	CardIndex int    `json:"cardIndex"`
	Card      string `json:"card,omitempty"`
	Accused   int    `json:"accused"`
}

// getRoomUUIDWS upgrades to a websocket that pushes the full room snapshot
// on every change and accepts game actions from the caller's seat. The
// owner's connection also runs the room's timed transitions.
func (m *Mux) getRoomUUIDWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		identity := r.Context().Value(ctxIdentityKey).(string)
		rm := r.Context().Value(ctxRoomKey).(*room.Room)
		seat := rm.Seated(identity)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		logger := logrus.WithFields(logrus.Fields{"room": rm.ID, "seat": seat})

		g := game.New(logrus.StandardLogger(), m.store, rm.ID, seat, game.HostAuthority, m.options)
		if m.recorder != nil {
			g.SetRecorder(m.recorder)
		}

		// last-state-wins delivery: a slow reader skips intermediate states
		updates := make(chan *room.Room, 1)
		cancel, err := m.store.Subscribe(rm.ID, func(snapshot *room.Room) {
			for {
				select {
				case updates <- snapshot:
					return
				default:
					select {
					case <-updates:
					default:
					}
				}
			}
		})
		if err != nil {
			_ = conn.Close()
			return
		}

		errs := make(chan string, 4)
		done := make(chan bool)
		defer func() {
			cancel()
			close(done)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(conn, updates, errs, done)
		go m.tickLoop(g, logger, done)

		m.webSocketReadLoop(conn, g, rm.Owner == identity, seat, errs, logger)
	}
}

func (m *Mux) webSocketWriteLoop(conn *websocket.Conn, updates chan *room.Room, errs chan string, done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-errs:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(wsMessage{Type: "error", Message: msg}); err != nil {
				return
			}
		case snapshot := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(wsMessage{Type: "state", Room: snapshot}); err != nil {
				logrus.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

// tickLoop drives the game's timed transitions for as long as the
// connection lives. Tick is a no-op unless this seat is the authority.
func (m *Mux) tickLoop(g *game.Game, logger logrus.FieldLogger, done chan bool) {
	ticker := time.NewTicker(g.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if _, err := g.Tick(); err != nil {
				logger.WithError(err).Error("tick failed")
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(conn *websocket.Conn, g *game.Game, isOwner bool, seat int, errs chan string, logger logrus.FieldLogger) {
	for {
		var msg wsAction
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.WithError(err).Debug("websocket closed unexpectedly")
			}

			return
		}

		if err := dispatchAction(g, msg, isOwner, seat); err != nil {
			select {
			case errs <- err.Error():
			default:
			}
		}
	}
}

func dispatchAction(g *game.Game, msg wsAction, isOwner bool, seat int) error {
	switch msg.Action {
	case "startGame", "startRound":
		if !isOwner {
			return fmt.Errorf("only the room owner can %s", msg.Action)
		}

		if msg.Action == "startGame" {
			return g.StartGame()
		}

		return g.StartRound()
	}

	if seat == room.NoSeat {
		return game.ErrNotSeated
	}

	switch msg.Action {
	case "bid":
		return g.Bid(msg.Contract)
	case "pass":
		return g.Pass()
	case "coinche":
		return g.Coinche()
	case "playCard":
		return g.PlayCard(msg.CardIndex)
	case "gat":
		return g.ClaimGat(msg.Accused, msg.Card)
	case "sleep":
		return g.ClaimSleep(msg.Card)
	case "base":
		return g.ClaimBase()
	case "agreeBase":
		return g.AgreeBase()
	}

	return fmt.Errorf("unknown action: %s", msg.Action)
}
