package tapevm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("tapevm: create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

type Snapshot struct {
	Pointer int    `cbor:"1,keyasint"`
	Cells   []byte `cbor:"2,keyasint"`
}

func (v *VM) Snapshot() *Snapshot {
	cells := make([]byte, CellCount)
	copy(cells, v.Tape[:])
	return &Snapshot{
		Pointer: v.Pointer.Address,
		Cells:   cells,
	}
}

func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	data, err := cborEncMode.Marshal(s)
	if err != nil {
		return 0, fmt.Errorf("tapevm: marshal snapshot: %w", err)
	}
	n, err := w.Write(data)
	return int64(n), err
}

func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("tapevm: unmarshal snapshot: %w", err)
	}
	if len(s.Cells) != CellCount {
		return nil, fmt.Errorf("tapevm: snapshot has %d cells, want %d", len(s.Cells), CellCount)
	}
	if s.Pointer < 0 || s.Pointer >= CellCount {
		return nil, fmt.Errorf("tapevm: snapshot pointer %d out of range", s.Pointer)
	}
	return &s, nil
}

// Restore copies the snapshot cells into tape.
func (s *Snapshot) Restore(tape *Tape) {
	copy(tape[:], s.Cells)
}
