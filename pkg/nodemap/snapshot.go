package nodemap

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion uint8 = 1

// Snapshot is a captured node map with capture metadata.
// CBOR encoding uses integer keys for compactness.
type Snapshot struct {
	Version    uint8      `cbor:"1,keyasint"`
	CapturedAt time.Time  `cbor:"2,keyasint"`
	Source     string     `cbor:"3,keyasint,omitempty"`
	Definition Definition `cbor:"4,keyasint"`
}

var (
	snapEncMode cbor.EncMode
	snapDecMode cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	snapEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	snapDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot CBOR decoder mode: %v", err))
	}
}

// EncodeSnapshot encodes a snapshot to CBOR bytes.
func EncodeSnapshot(s *Snapshot) ([]byte, error) {
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	return snapEncMode.Marshal(s)
}

// DecodeSnapshot decodes CBOR bytes into a Snapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := snapDecMode.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	if s.Definition.Root == "" {
		s.Definition.Root = DefaultRoot
	}
	return &s, nil
}
