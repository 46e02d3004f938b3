// Package assets keeps the name-keyed registry of textures and detected
// frame sequences the editor has accepted. The rendering runtime resolves
// particle textures against this registry by name.
package assets

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/decker502/particlestudio/internal/sequence"
)

// Kind distinguishes asset flavours.
type Kind string

const (
	// Texture is a single standalone image.
	Texture Kind = "texture"

	// Sequence is a numbered run of animation frames.
	Sequence Kind = "sequence"
)

// Asset is one registered texture or sequence.
type Asset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`

	// Size is the byte size for textures, or the summed frame sizes for
	// sequences.
	Size int64 `json:"size"`

	// Sequence is set for Kind == Sequence.
	Sequence *sequence.SequenceInfo `json:"sequence,omitempty"`
}

// Store is a concurrency-safe, name-keyed asset registry.
// Registering a name that already exists replaces the previous asset, which
// is what re-uploading a texture in the editor means.
type Store struct {
	mu     sync.RWMutex
	byName map[string]*Asset
	order  []string // registration order, for stable listings
}

// NewStore creates an empty asset registry.
func NewStore() *Store {
	return &Store{byName: make(map[string]*Asset)}
}

// RegisterTexture registers a single image file under its name.
func (s *Store) RegisterTexture(name string, size int64) (*Asset, error) {
	if name == "" {
		return nil, fmt.Errorf("texture name must not be empty")
	}
	a := &Asset{
		ID:   uuid.NewString(),
		Name: name,
		Kind: Texture,
		Size: size,
	}
	s.put(a)
	return a, nil
}

// RegisterSequence registers a detected frame sequence under its base name.
func (s *Store) RegisterSequence(info *sequence.SequenceInfo) (*Asset, error) {
	if info == nil {
		return nil, fmt.Errorf("sequence info must not be nil")
	}
	if info.BaseName == "" {
		return nil, fmt.Errorf("sequence base name must not be empty")
	}
	var size int64
	for _, f := range info.Files {
		size += f.Size
	}
	a := &Asset{
		ID:       uuid.NewString(),
		Name:     info.BaseName,
		Kind:     Sequence,
		Size:     size,
		Sequence: info,
	}
	s.put(a)
	return a, nil
}

func (s *Store) put(a *Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byName[a.Name]; !exists {
		s.order = append(s.order, a.Name)
	}
	s.byName[a.Name] = a
}

// Lookup resolves an asset by name.
func (s *Store) Lookup(name string) (*Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.byName[name]
	return a, ok
}

// List returns every registered asset in registration order.
func (s *Store) List() []*Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Asset, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Remove deletes an asset by name and reports whether it existed.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byName[name]; !ok {
		return false
	}
	delete(s.byName, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
