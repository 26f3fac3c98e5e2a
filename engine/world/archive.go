package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/expresscore/types"
)

// ErrNotFound is returned for clips the archive does not hold.
var ErrNotFound = errors.New("clip not found")

// MemArchive is an in-memory clip archive. Names are case-insensitive.
type MemArchive struct {
	clips map[string]types.Sequence
}

// NewMemArchive creates an archive holding the given clips.
func NewMemArchive(clips ...types.Sequence) *MemArchive {
	a := &MemArchive{clips: make(map[string]types.Sequence)}
	for _, c := range clips {
		a.Add(c)
	}
	return a
}

// Add stores or replaces a clip.
func (a *MemArchive) Add(seq types.Sequence) {
	a.clips[strings.ToUpper(seq.Name)] = seq
}

// HasFile reports whether the clip exists.
func (a *MemArchive) HasFile(name string) bool {
	_, ok := a.clips[strings.ToUpper(name)]
	return ok
}

// LoadSequence returns a copy of the named clip.
func (a *MemArchive) LoadSequence(name string) (types.Sequence, error) {
	seq, ok := a.clips[strings.ToUpper(name)]
	if !ok {
		return types.Sequence{}, fmt.Errorf("loading %s: %w", name, ErrNotFound)
	}
	seq.Frames = append([]types.FrameInfo(nil), seq.Frames...)
	return seq, nil
}

// Names lists the stored clip names in sorted order.
func (a *MemArchive) Names() []string {
	names := make([]string, 0, len(a.clips))
	for _, c := range a.clips {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
