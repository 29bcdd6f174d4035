// Package storage defines the persisted representation of the ledger: the
// chain of blocks and the pool of pending transactions.
package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
)

// ErrEmptyChain is returned when a stored snapshot holds no blocks.
var ErrEmptyChain = errors.New("stored chain has no blocks")

// Storage interface represents the behavior required to be implemented by any
// package providing support for storing and reading the ledger.
type Storage interface {
	Load() (Snapshot, error)
	Save(snap Snapshot) error
	Close() error
}

// =============================================================================

// Snapshot represents the complete persisted state of the ledger.
type Snapshot struct {
	Chain   []database.Block
	Pending []database.Tx
}

// Copy makes a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	pending := make([]database.Tx, len(s.Pending))
	copy(pending, s.Pending)

	return Snapshot{
		Chain:   database.CopyChain(s.Chain),
		Pending: pending,
	}
}

// =============================================================================

// Records marshals the snapshot into its two JSON records: the chain and
// the pending transactions.
func Records(snap Snapshot) (chain []byte, pending []byte, err error) {
	snap = snap.Copy()

	chain, err = json.Marshal(snap.Chain)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal chain: %w", err)
	}

	pending, err = json.Marshal(snap.Pending)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal pending: %w", err)
	}

	return chain, pending, nil
}

// FromRecords unmarshals the two JSON records back into a snapshot.
func FromRecords(chain []byte, pending []byte) (Snapshot, error) {
	var snap Snapshot

	if err := json.Unmarshal(chain, &snap.Chain); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal chain: %w", err)
	}

	if err := json.Unmarshal(pending, &snap.Pending); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal pending: %w", err)
	}

	if len(snap.Chain) == 0 {
		return Snapshot{}, ErrEmptyChain
	}

	return snap, nil
}

// Encode writes the snapshot as two lines of text: the chain followed by
// the pending transactions.
func Encode(w io.Writer, snap Snapshot) error {
	chain, pending, err := Records(snap)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Write(chain)
	buf.WriteByte('\n')
	buf.Write(pending)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// Decode reads a snapshot written by Encode. A missing line or malformed
// record returns an error.
func Decode(r io.Reader) (Snapshot, error) {
	scanner := bufio.NewScanner(r)

	// A chain is stored on a single line and can be much larger than the
	// default scanner buffer.
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)

	var lines [][]byte
	for len(lines) < 2 && scanner.Scan() {
		line := make([]byte, len(scanner.Bytes()))
		copy(line, scanner.Bytes())
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	if len(lines) < 2 {
		return Snapshot{}, fmt.Errorf("read snapshot: expected 2 records, got %d", len(lines))
	}

	return FromRecords(lines[0], lines[1])
}
