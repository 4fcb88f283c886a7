package MFT

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, buffers ...[]byte) *MFTTable {
	t.Helper()
	mfttable := NewMFTTable(len(buffers)*RecordSize, RecordSize)
	for _, bs := range buffers {
		var record Record
		require.NoError(t, record.Process(bs))
		mfttable.InsertRecord(record)
	}
	return mfttable
}

func dirRecord(entry uint32, seq uint16, parent uint64, parentSeq uint16, name string) []byte {
	return newRecordBuilder("FILE", entry, seq, FlagInUse|FlagDirectory).
		addResident(0x30, fnContent(parent, parentSeq, 1, name)).
		build()
}

func fileRecord(entry uint32, seq uint16, parent uint64, parentSeq uint16, name string) []byte {
	return newRecordBuilder("FILE", entry, seq, FlagInUse).
		addResident(0x30, fnContent(parent, parentSeq, 1, name)).
		build()
}

func TestBuildPathsNested(t *testing.T) {
	mfttable := buildTable(t,
		dirRecord(5, 5, 5, 5, "."),
		dirRecord(40, 2, 5, 5, "Sub"),
		fileRecord(41, 1, 40, 2, "leaf.txt"),
	)
	mfttable.BuildPaths()

	assert.Equal(t, "/", mfttable.GetRecord(5).FullPath)
	assert.Equal(t, "/Sub", mfttable.GetRecord(40).FullPath)
	assert.Equal(t, "/Sub/leaf.txt", mfttable.GetRecord(41).FullPath)
}

func TestBuildPathsMissingParentOrphan(t *testing.T) {
	mfttable := buildTable(t,
		fileRecord(41, 1, 900, 1, "lost.txt"),
	)
	mfttable.BuildPaths()

	record := mfttable.GetRecord(41)
	assert.Equal(t, "ORPHAN/lost.txt", record.FullPath)
	assert.True(t, record.Orphan)
}

func TestBuildPathsSelfReferenceOrphan(t *testing.T) {
	mfttable := buildTable(t,
		fileRecord(41, 1, 41, 1, "self.txt"),
	)
	mfttable.BuildPaths()

	record := mfttable.GetRecord(41)
	assert.Equal(t, "ORPHAN/self.txt", record.FullPath)
	assert.True(t, record.Orphan)
}

func TestBuildPathsStaleParentSequenceOrphan(t *testing.T) {
	mfttable := buildTable(t,
		dirRecord(5, 5, 5, 5, "."),
		dirRecord(40, 9, 5, 5, "Reused"),
		fileRecord(41, 1, 40, 2, "stale.txt"), //parent seq moved from 2 to 9
	)
	mfttable.BuildPaths()

	record := mfttable.GetRecord(41)
	assert.Equal(t, "ORPHAN/stale.txt", record.FullPath)
	assert.True(t, record.Orphan)
	assert.Contains(t, record.JoinedNotes(), "stale parent reference")
}

func TestBuildPathsCycle(t *testing.T) {
	mfttable := buildTable(t,
		dirRecord(40, 1, 41, 1, "A"),
		dirRecord(41, 1, 40, 1, "B"),
	)
	mfttable.BuildPaths()

	assert.Equal(t, "Circular_Reference", mfttable.GetRecord(40).FullPath)
	assert.Equal(t, "Circular_Reference", mfttable.GetRecord(41).FullPath)
}

func TestBuildPathsNoFileName(t *testing.T) {
	mfttable := buildTable(t,
		newRecordBuilder("FILE", 60, 1, FlagInUse).build(),
	)
	mfttable.BuildPaths()
	assert.Equal(t, "NoFileNameRecord", mfttable.GetRecord(60).FullPath)
}

func TestBuildPathsChildOfNamelessParentOrphan(t *testing.T) {
	mfttable := buildTable(t,
		newRecordBuilder("FILE", 60, 1, FlagInUse|FlagDirectory).build(),
		fileRecord(61, 1, 60, 1, "child.txt"),
	)
	mfttable.BuildPaths()
	record := mfttable.GetRecord(61)
	assert.Equal(t, "ORPHAN/child.txt", record.FullPath)
	assert.True(t, record.Orphan)
}

func TestBuildPathsIdempotent(t *testing.T) {
	mfttable := buildTable(t,
		dirRecord(5, 5, 5, 5, "."),
		dirRecord(40, 2, 5, 5, "Sub"),
		fileRecord(41, 1, 40, 2, "leaf.txt"),
	)
	mfttable.BuildPaths()
	first := make([]string, len(mfttable.Records))
	for idx := range mfttable.Records {
		first[idx] = mfttable.Records[idx].FullPath
	}

	mfttable.BuildPaths()
	for idx := range mfttable.Records {
		assert.Equal(t, first[idx], mfttable.Records[idx].FullPath)
	}
}

func TestProcessRecordsSequential(t *testing.T) {
	var data []byte
	data = append(data, fileRecord(10, 1, 5, 5, "a.txt")...)
	data = append(data, make([]byte, RecordSize)...)

	mfttable := NewMFTTable(len(data), RecordSize)
	mfttable.ProcessRecords(data)

	require.Equal(t, 2, mfttable.CountRecords())
	assert.Equal(t, Valid, mfttable.Records[0].Validity)
	assert.Equal(t, ZeroSignature, mfttable.Records[1].Validity)
	assert.Equal(t, uint32(1), mfttable.Records[1].Entry, "dead slots keep their position")
}

func TestSummarize(t *testing.T) {
	mfttable := buildTable(t,
		dirRecord(5, 5, 5, 5, "."),
		fileRecord(41, 1, 900, 1, "lost.txt"),
		make([]byte, RecordSize),
		newRecordBuilder("BAAD", 7, 1, 0).build(),
	)
	mfttable.BuildPaths()

	summary := mfttable.Summarize()
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 1, summary.ZeroSignature)
	assert.Equal(t, 1, summary.BadSignature)
	assert.Equal(t, 1, summary.Orphans)
	assert.Equal(t, 1, summary.Folders)
}
