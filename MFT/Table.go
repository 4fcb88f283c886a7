package MFT

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/logger"
)

// MFTTable holds every decoded record of one $MFT in record number order
// together with an index for parent lookups during path resolution.
type MFTTable struct {
	Records    Records
	Size       int //size of the $MFT data in bytes
	RecordSize int
	byEntry    map[uint32]int
}

func NewMFTTable(size int, recordSize int) *MFTTable {
	if recordSize <= 0 {
		recordSize = RecordSize
	}
	return &MFTTable{
		Size:       size,
		RecordSize: recordSize,
		byEntry:    make(map[uint32]int, size/recordSize),
	}
}

func (mfttable *MFTTable) InsertRecord(record Record) {
	// a duplicate record number keeps the first occurrence, later ones are
	// shadowed in lookups but still exported
	if _, exists := mfttable.byEntry[record.Entry]; !exists {
		mfttable.byEntry[record.Entry] = len(mfttable.Records)
	}
	mfttable.Records = append(mfttable.Records, record)
}

// GetRecord looks a record up by its number. Only records that decoded with
// a usable signature take part in parent resolution.
func (mfttable *MFTTable) GetRecord(entry uint32) *Record {
	pos, exists := mfttable.byEntry[entry]
	if !exists {
		return nil
	}
	return &mfttable.Records[pos]
}

func (mfttable *MFTTable) CountRecords() int {
	return len(mfttable.Records)
}

// ProcessRecords decodes the raw $MFT data sequentially. Every slot
// produces a record, corrupt and unused ones included.
func (mfttable *MFTTable) ProcessRecords(data []byte) {
	totalRecords := len(data) / mfttable.RecordSize

	var record Record
	for i := 0; i < totalRecords; i++ {
		record = Record{}
		bs := data[i*mfttable.RecordSize : (i+1)*mfttable.RecordSize]
		err := record.Process(bs)
		if err != nil {
			logger.MFTAnalyzerlogger.Warning(fmt.Sprintf("record at slot %d %v", i, err))
		}
		if record.Validity != Valid && record.Validity != UnknownSignature {
			// the slot position is the only identity a dead record has
			record.Entry = uint32(i)
		}
		mfttable.InsertRecord(record)
	}
}

type TableSummary struct {
	Total            int
	Valid            int
	BadSignature     int
	ZeroSignature    int
	UnknownSignature int
	InUse            int
	Deleted          int
	Folders          int
	Orphans          int
	TimestampShift   int
	SubsecondZero    int
	WithNotes        int
}

func (mfttable *MFTTable) Summarize() TableSummary {
	var summary TableSummary
	summary.Total = len(mfttable.Records)
	for idx := range mfttable.Records {
		record := &mfttable.Records[idx]
		switch record.Validity {
		case Valid:
			summary.Valid++
		case BadSignature:
			summary.BadSignature++
		case ZeroSignature:
			summary.ZeroSignature++
		case UnknownSignature:
			summary.UnknownSignature++
		}
		if record.Validity == Valid || record.Validity == UnknownSignature {
			if record.IsInUse() {
				summary.InUse++
			} else {
				summary.Deleted++
			}
			if record.IsFolder() {
				summary.Folders++
			}
		}
		if record.Orphan {
			summary.Orphans++
		}
		if record.TimestampShift {
			summary.TimestampShift++
		}
		if record.SubsecondZero {
			summary.SubsecondZero++
		}
		if len(record.Notes) > 0 {
			summary.WithNotes++
		}
	}
	return summary
}
