package MFT

import (
	"math"
)

const RootEntry = 5

// Path resolution sentinels. They live in the path column itself so every
// export format carries them without extra plumbing.
const (
	NoFileNameRecord  = "NoFileNameRecord"
	OrphanPrefix      = "ORPHAN/"
	CircularReference = "Circular_Reference"
)

// BuildPaths resolves the full path of every record by walking parent
// references upward. Resolution is memoized: a path is computed once and
// every later walk through the same directory reuses it. Records are
// visited in ascending record number order so a rerun over the same table
// yields identical paths.
func (mfttable *MFTTable) BuildPaths() {
	for idx := range mfttable.Records {
		record := &mfttable.Records[idx]
		if record.FullPath != "" {
			continue
		}
		record.FullPath = mfttable.resolvePath(record, make(map[uint32]bool))
	}
}

func (mfttable *MFTTable) resolvePath(record *Record, visited map[uint32]bool) string {
	if record.FullPath != "" {
		return record.FullPath
	}
	if record.Entry == RootEntry {
		record.FullPath = "/"
		return record.FullPath
	}

	name := record.GetDisplayName()
	if name == "" {
		record.FullPath = NoFileNameRecord
		return record.FullPath
	}

	parRef, parSeq, _ := record.GetParentReference()
	if parRef == uint64(record.Entry) {
		// self referencing parent outside the root, the link leads nowhere
		record.Orphan = true
		record.FullPath = OrphanPrefix + name
		return record.FullPath
	}
	if visited[record.Entry] {
		return CircularReference
	}
	visited[record.Entry] = true

	if parRef == RootEntry {
		record.FullPath = "/" + name
		return record.FullPath
	}

	var parent *Record
	if parRef <= math.MaxUint32 {
		parent = mfttable.GetRecord(uint32(parRef))
	}
	if parent == nil ||
		parent.Validity == BadSignature || parent.Validity == ZeroSignature {
		record.Orphan = true
		record.FullPath = OrphanPrefix + name
		return record.FullPath
	}
	if parent.Seq != parSeq {
		// the parent slot was reused, the reference is stale
		record.Orphan = true
		record.AddNote("stale parent reference, sequence mismatch")
		record.FullPath = OrphanPrefix + name
		return record.FullPath
	}

	parentPath := mfttable.resolvePath(parent, visited)
	switch {
	case parentPath == CircularReference:
		// every member of the loop collapses to the same sentinel
		record.FullPath = CircularReference
		return record.FullPath
	case parentPath == NoFileNameRecord:
		record.Orphan = true
		record.FullPath = OrphanPrefix + name
		return record.FullPath
	case parentPath == "/":
		record.FullPath = "/" + name
		return record.FullPath
	default:
		record.FullPath = parentPath + "/" + name
		return record.FullPath
	}
}
