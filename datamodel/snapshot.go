package datamodel

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot encodes the tree into a compact binary form. Re-introspection
// needs the previously reconciled tree as its baseline; callers persist
// that baseline between runs with Snapshot and RestoreSnapshot.
func (dm *Datamodel) Snapshot() ([]byte, error) {
	b, err := msgpack.Marshal(dm)
	if err != nil {
		return nil, fmt.Errorf("schemasync: encoding snapshot: %w", err)
	}
	return b, nil
}

// RestoreSnapshot decodes a tree previously encoded with Snapshot.
func RestoreSnapshot(data []byte) (*Datamodel, error) {
	dm := &Datamodel{}
	if err := msgpack.Unmarshal(data, dm); err != nil {
		return nil, fmt.Errorf("schemasync: decoding snapshot: %w", err)
	}
	return dm, nil
}
