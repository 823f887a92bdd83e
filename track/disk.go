package track

import "github.com/google/uuid"

// TagStore is a per-disk keyed associative store for state shared
// between tracks, such as a protection table published by one track
// and consumed by others.
type TagStore struct {
	tags map[string][]byte
}

func newTagStore() *TagStore {
	return &TagStore{tags: make(map[string][]byte)}
}

// Get returns the bytes stored under id, if any.
func (s *TagStore) Get(id string) ([]byte, bool) {
	b, ok := s.tags[id]
	return b, ok
}

// Set publishes data under id if nothing has been published there
// yet (first writer wins) and returns the stored copy either way.
func (s *TagStore) Set(id string, data []byte) []byte {
	if existing, ok := s.tags[id]; ok {
		return existing
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.tags[id] = cp
	return cp
}

// Disk owns a set of tracks and their shared tag store.
type Disk struct {
	ID     uuid.UUID
	Tracks map[int]*Info
	Tags   *TagStore
}

// NewDisk returns an empty disk with a fresh identity.
func NewDisk() *Disk {
	return &Disk{
		ID:     uuid.New(),
		Tracks: make(map[int]*Info),
		Tags:   newTagStore(),
	}
}
