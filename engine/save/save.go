// Package save implements JSON snapshots of the whole core state: game
// progress, every character record, the clock, the bus and the object
// table.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/nathoo/expresscore/engine/state"
	"github.com/nathoo/expresscore/engine/world"
	"github.com/nathoo/expresscore/types"
)

// FormatVersion is written into every snapshot.
const FormatVersion = 1

// Extension is the file suffix of stored snapshots.
const Extension = ".json"

var ErrNoState = errors.New("snapshot has no state")

// Snapshot is the JSON-serializable save format.
type Snapshot struct {
	ID          string                               `json:"id"`
	Version     int                                  `json:"version"`
	Name        string                               `json:"name"`
	Chapter     int                                  `json:"chapter"`
	Time        types.GameTime                       `json:"time"`
	Ticks       uint32                               `json:"ticks"`
	TimeDelta   uint32                               `json:"time_delta"`
	RNGPosition int64                                `json:"rng_position"`
	State       *types.State                         `json:"state"`
	Pending     []types.SavePoint                    `json:"pending"`
	Autos       []types.AutoMessage                  `json:"autos"`
	Objects     map[types.ObjectID]world.ObjectState `json:"objects,omitempty"`
}

// Header is the part of a snapshot listings need.
type Header struct {
	ID      string
	Name    string
	Chapter int
	Time    types.GameTime
}

// Encode serializes a snapshot, giving it an id if it has none.
func Encode(s *Snapshot) ([]byte, error) {
	if s.State == nil {
		return nil, ErrNoState
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.Version = FormatVersion
	s.Chapter = s.State.Chapter
	return json.MarshalIndent(s, "", "  ")
}

// Decode deserializes a snapshot and repairs nil containers.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}
	if s.Version != FormatVersion {
		return nil, fmt.Errorf("decoding save: unsupported version %d", s.Version)
	}
	if s.State == nil {
		return nil, fmt.Errorf("decoding save: %w", ErrNoState)
	}
	state.Normalize(s.State)
	if s.Pending == nil {
		s.Pending = []types.SavePoint{}
	}
	if s.Objects == nil {
		s.Objects = map[types.ObjectID]world.ObjectState{}
	}
	return &s, nil
}

// Peek reads the header of a snapshot without decoding the state.
func Peek(data []byte) (Header, error) {
	if !gjson.ValidBytes(data) {
		return Header{}, errors.New("peeking save: invalid JSON")
	}
	r := gjson.GetManyBytes(data, "id", "name", "chapter", "time")
	if !r[0].Exists() {
		return Header{}, errors.New("peeking save: no id")
	}
	return Header{
		ID:      r[0].String(),
		Name:    r[1].String(),
		Chapter: int(r[2].Int()),
		Time:    types.GameTime(r[3].Uint()),
	}, nil
}

// Relabel rewrites the name of an encoded snapshot in place.
func Relabel(data []byte, name string) ([]byte, error) {
	out, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return nil, fmt.Errorf("relabeling save: %w", err)
	}
	return out, nil
}

// NewRecord creates the record written when a character asks for a save.
func NewRecord(c types.CharacterID, kind int, ev types.EventID, t types.GameTime) types.SaveRecord {
	return types.SaveRecord{
		ID:        uuid.NewString(),
		Character: c,
		Kind:      kind,
		Event:     ev,
		Time:      t,
	}
}

// Store keeps snapshots as files in one directory.
type Store struct {
	Dir string
}

func (st Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid save name %q", name)
	}
	return filepath.Join(st.Dir, name+Extension), nil
}

// Write encodes s under name.
func (st Store) Write(name string, s *Snapshot) error {
	p, err := st.path(name)
	if err != nil {
		return err
	}
	s.Name = name
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(st.Dir, 0o755); err != nil {
		return fmt.Errorf("writing save %s: %w", name, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing save %s: %w", name, err)
	}
	return nil
}

// Read decodes the snapshot stored under name.
func (st Store) Read(name string) (*Snapshot, error) {
	p, err := st.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", name, err)
	}
	return Decode(data)
}

// Rename moves a snapshot to a new name and updates its label.
func (st Store) Rename(from, to string) error {
	src, err := st.path(from)
	if err != nil {
		return err
	}
	dst, err := st.path(to)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("renaming save %s: %w", from, err)
	}
	data, err = Relabel(data, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("renaming save %s: %w", from, err)
	}
	return os.Remove(src)
}

// List returns the headers of all stored snapshots, sorted by name.
// Unreadable files are skipped.
func (st Store) List() ([]Header, error) {
	entries, err := os.ReadDir(st.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	var out []Header
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(st.Dir, e.Name()))
		if err != nil {
			continue
		}
		h, err := Peek(data)
		if err != nil {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
