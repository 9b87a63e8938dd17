package room

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrRoomNotFound is returned for operations against an unknown room ID
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomFull is returned when a seat join finds all four seats taken
var ErrRoomFull = errors.New("room is full")

// Store is the shared-room collaborator. Subscribers receive the full room
// snapshot after every change; there is no diffing and delivery is
// last-state-wins. UpdateGame applies a sparse merge-patch with no atomicity
// guarantee across fields. JoinSeat performs a compare-and-swap style seat
// assignment.
type Store interface {
	Create(owner string) (*Room, error)
	Get(roomID string) (*Room, error)
	Subscribe(roomID string, fn func(*Room)) (cancel func(), err error)
	UpdateGame(roomID string, patch GamePatch) error
	SetPlayer(roomID string, seat int, player *Player) error
	JoinSeat(roomID string, player Player) (int, error)
}

type roomEntry struct {
	room    *Room
	subs    map[int]func(*Room)
	nextSub int
}

// MemoryStore is an in-process Store. It stands in for the external sync
// layer: a single mutex orders writes, and every write pushes a fresh
// snapshot to all subscribers.
type MemoryStore struct {
	mu    sync.Mutex
	rooms map[string]*roomEntry
	clock func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[string]*roomEntry),
		clock: time.Now,
	}
}

// SetClock overrides the timestamp source. Tests only.
func (s *MemoryStore) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Create creates a new room owned by the given identity
func (s *MemoryStore) Create(owner string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Room{
		ID:    uuid.New().String(),
		Owner: owner,
		Game:  NewGameData(),
	}

	s.rooms[r.ID] = &roomEntry{
		room: r,
		subs: make(map[int]func(*Room)),
	}

	return r.Clone(), nil
}

// Get returns a snapshot of the room
func (s *MemoryStore) Get(roomID string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}

	return entry.room.Clone(), nil
}

// Subscribe registers fn to receive the full room snapshot after every
// change. fn is called once immediately with the current state.
func (s *MemoryStore) Subscribe(roomID string, fn func(*Room)) (func(), error) {
	s.mu.Lock()

	entry, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrRoomNotFound
	}

	id := entry.nextSub
	entry.nextSub++
	entry.subs[id] = fn
	snapshot := entry.room.Clone()
	s.mu.Unlock()

	fn(snapshot)

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if entry, ok := s.rooms[roomID]; ok {
			delete(entry.subs, id)
		}
	}

	return cancel, nil
}

// notify must not be called while holding the mutex
func (s *MemoryStore) snapshotAndSubs(roomID string) (*Room, []func(*Room), bool) {
	entry, ok := s.rooms[roomID]
	if !ok {
		return nil, nil, false
	}

	subs := make([]func(*Room), 0, len(entry.subs))
	for _, fn := range entry.subs {
		subs = append(subs, fn)
	}

	return entry.room.Clone(), subs, true
}

// UpdateGame applies the patch to the room's game document and notifies
// subscribers with the resulting snapshot
func (s *MemoryStore) UpdateGame(roomID string, patch GamePatch) error {
	s.mu.Lock()

	entry, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return ErrRoomNotFound
	}

	entry.room.Game.apply(patch, s.clock())

	snapshot, subs, _ := s.snapshotAndSubs(roomID)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	return nil
}

// SetPlayer assigns or clears (player == nil) a seat without CAS semantics.
// Used for bot seating and kicks by the room owner.
func (s *MemoryStore) SetPlayer(roomID string, seat int, player *Player) error {
	if seat < 0 || seat > 3 {
		return errors.New("seat out of range")
	}

	s.mu.Lock()

	entry, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return ErrRoomNotFound
	}

	entry.room.Players[seat] = player

	snapshot, subs, _ := s.snapshotAndSubs(roomID)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	return nil
}

// JoinSeat seats the player in the first free seat. If the identity already
// holds a seat, that seat is returned unchanged. Returns ErrRoomFull when no
// seat is free. The check-and-assign happens under one lock acquisition, so
// two racing joins cannot double-book a seat.
func (s *MemoryStore) JoinSeat(roomID string, player Player) (int, error) {
	s.mu.Lock()

	entry, ok := s.rooms[roomID]
	if !ok {
		s.mu.Unlock()
		return NoSeat, ErrRoomNotFound
	}

	if seat := entry.room.Seated(player.ID); seat != NoSeat {
		s.mu.Unlock()
		return seat, nil
	}

	seat := NoSeat
	for i, p := range entry.room.Players {
		if p == nil {
			seat = i
			break
		}
	}

	if seat == NoSeat {
		s.mu.Unlock()
		return NoSeat, ErrRoomFull
	}

	player.Seat = seat
	entry.room.Players[seat] = &player

	snapshot, subs, _ := s.snapshotAndSubs(roomID)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}

	return seat, nil
}
