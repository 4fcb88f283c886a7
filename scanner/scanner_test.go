package scanner

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

type memReader struct {
	data []byte
}

func (reader *memReader) CreateHandler() error { return nil }
func (reader *memReader) CloseHandler()        {}
func (reader *memReader) GetDiskSize() int64   { return int64(len(reader.data)) }

func (reader *memReader) ReadFile(offset int64, length int) []byte {
	if offset >= int64(len(reader.data)) {
		return nil
	}
	end := offset + int64(length)
	if end > int64(len(reader.data)) {
		end = int64(len(reader.data))
	}
	return reader.data[offset:end]
}

func rawRecord(signature string, entry uint32, parent uint64, name string) []byte {
	bs := make([]byte, MFT.RecordSize)
	copy(bs[0:4], signature)
	binary.LittleEndian.PutUint16(bs[16:18], 1)          //sequence
	binary.LittleEndian.PutUint16(bs[20:22], 56)         //attribute offset
	binary.LittleEndian.PutUint16(bs[22:24], 1)          //in use
	binary.LittleEndian.PutUint32(bs[28:32], MFT.RecordSize)
	binary.LittleEndian.PutUint32(bs[44:48], entry)

	off := 56
	if name != "" {
		content := make([]byte, 66+2*len(name))
		binary.LittleEndian.PutUint64(content[0:8], parent|1<<48) //parent seq 1
		content[64] = uint8(len(name))
		content[65] = 1
		for i, r := range name {
			binary.LittleEndian.PutUint16(content[66+2*i:], uint16(r))
		}
		attrLen := 24 + len(content)
		if attrLen%8 != 0 {
			attrLen += 8 - attrLen%8
		}
		binary.LittleEndian.PutUint32(bs[off:off+4], 0x30)
		binary.LittleEndian.PutUint32(bs[off+4:off+8], uint32(attrLen))
		binary.LittleEndian.PutUint32(bs[off+16:off+20], uint32(len(content)))
		binary.LittleEndian.PutUint16(bs[off+20:off+22], 24)
		copy(bs[off+24:], content)
		off += attrLen
	}
	binary.LittleEndian.PutUint32(bs[off:off+4], 0xFFFFFFFF)
	return bs
}

func sampleMFT() []byte {
	var data []byte
	data = append(data, rawRecord("FILE", 5, 5, ".")...)
	data = append(data, rawRecord("FILE", 6, 5, "hello.txt")...)
	data = append(data, make([]byte, MFT.RecordSize)...) //unused slot
	data = append(data, rawRecord("BAAD", 8, 0, "")...)
	return data
}

func TestScanBuildsTable(t *testing.T) {
	sc, err := NewScanner(Options{})
	require.NoError(t, err)

	mfttable, err := sc.Scan(context.Background(), &memReader{data: sampleMFT()})
	require.NoError(t, err)
	require.NotNil(t, mfttable)
	assert.Equal(t, 4, mfttable.CountRecords())

	record := mfttable.GetRecord(6)
	require.NotNil(t, record)
	assert.Equal(t, MFT.Valid, record.Validity)
	assert.Equal(t, "/hello.txt", record.FullPath)

	summary := mfttable.Summarize()
	assert.Equal(t, 2, summary.Valid)
	assert.Equal(t, 1, summary.ZeroSignature)
	assert.Equal(t, 1, summary.BadSignature)
}

func TestScanDeadSlotsKeepPosition(t *testing.T) {
	sc, err := NewScanner(Options{})
	require.NoError(t, err)

	mfttable, err := sc.Scan(context.Background(), &memReader{data: sampleMFT()})
	require.NoError(t, err)
	assert.Equal(t, MFT.ZeroSignature, mfttable.Records[2].Validity)
	assert.Equal(t, uint32(2), mfttable.Records[2].Entry)
	assert.Equal(t, MFT.BadSignature, mfttable.Records[3].Validity)
	assert.Equal(t, uint32(3), mfttable.Records[3].Entry)
}

func TestScanWithHashing(t *testing.T) {
	sc, err := NewScanner(Options{Hash: "md5"})
	require.NoError(t, err)

	data := sampleMFT()
	mfttable, err := sc.Scan(context.Background(), &memReader{data: data})
	require.NoError(t, err)
	assert.Equal(t, utils.GetMD5(data[:MFT.RecordSize]), mfttable.Records[0].Checksum)
}

func TestScanUnknownHashRejected(t *testing.T) {
	_, err := NewScanner(Options{Hash: "sha1"})
	assert.Error(t, err)
}

func TestScanCancelledContextFlushesPartial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc, err := NewScanner(Options{})
	require.NoError(t, err)

	mfttable, scanErr := sc.Scan(ctx, &memReader{data: sampleMFT()})
	require.NotNil(t, mfttable)
	assert.ErrorIs(t, scanErr, context.Canceled)
	assert.Zero(t, mfttable.CountRecords())
}

// flakyReader clips the second read request in half and serves every other
// one in full, imitating a source that keeps answering past a bad region.
type flakyReader struct {
	data  []byte
	reads int
}

func (reader *flakyReader) CreateHandler() error { return nil }
func (reader *flakyReader) CloseHandler()        {}
func (reader *flakyReader) GetDiskSize() int64   { return int64(len(reader.data)) }

func (reader *flakyReader) ReadFile(offset int64, length int) []byte {
	reader.reads++
	if reader.reads == 2 {
		length /= 2
	}
	return reader.data[offset : offset+int64(length)]
}

func TestScanStopsAtShortRead(t *testing.T) {
	recordSize := 64
	reader := &flakyReader{data: make([]byte, 3*chunkRecords*recordSize)}

	sc, err := NewScanner(Options{RecordSize: recordSize})
	require.NoError(t, err)
	mfttable, err := sc.Scan(context.Background(), reader)
	require.NoError(t, err)

	// the half chunk still lands in the table, nothing past it does
	assert.Equal(t, chunkRecords+chunkRecords/2, mfttable.CountRecords())
	assert.Equal(t, 2, reader.reads)
}

func TestScanEmptySource(t *testing.T) {
	sc, err := NewScanner(Options{})
	require.NoError(t, err)
	_, err = sc.Scan(context.Background(), &memReader{data: make([]byte, 100)})
	assert.Error(t, err)
}

func TestScanAnomalyDetectionWiredIn(t *testing.T) {
	sc, err := NewScanner(Options{DetectAnomalies: true})
	require.NoError(t, err)
	mfttable, err := sc.Scan(context.Background(), &memReader{data: sampleMFT()})
	require.NoError(t, err)
	// records without both SI and FN never flag
	for idx := range mfttable.Records {
		assert.False(t, mfttable.Records[idx].TimestampShift)
	}
}

func TestScanCustomRecordSize(t *testing.T) {
	sc, err := NewScanner(Options{RecordSize: 4096})
	require.NoError(t, err)
	mfttable, err := sc.Scan(context.Background(), &memReader{data: make([]byte, 8192)})
	require.NoError(t, err)
	assert.Equal(t, 2, mfttable.CountRecords())
}
