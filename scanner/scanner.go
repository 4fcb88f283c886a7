package scanner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
	"github.com/rowingdude/analyzeMFT-sub000/img"
	"github.com/rowingdude/analyzeMFT-sub000/logger"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// SmallBatchRecords is the pool cutoff: below it goroutine startup costs
// more than it saves and the chunk is decoded on the calling goroutine.
const SmallBatchRecords = 512

// chunkRecords is how many records one read request covers.
const chunkRecords = 4096

type Options struct {
	RecordSize int
	Workers    int
	// Hash selects the integrity digest over the raw record bytes,
	// one of md5, sha256, sha512, crc32 or empty for none.
	Hash            string
	DetectAnomalies bool
}

type Scanner struct {
	recordSize int
	workers    int
	hasher     func([]byte) string
	hashName   string
	anomalies  bool
}

func NewScanner(options Options) (*Scanner, error) {
	recordSize := options.RecordSize
	if recordSize <= 0 {
		recordSize = MFT.RecordSize
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	hasher, err := resolveHasher(options.Hash)
	if err != nil {
		return nil, err
	}
	return &Scanner{
		recordSize: recordSize,
		workers:    workers,
		hasher:     hasher,
		hashName:   options.Hash,
		anomalies:  options.DetectAnomalies,
	}, nil
}

func resolveHasher(name string) (func([]byte) string, error) {
	switch name {
	case "":
		return nil, nil
	case "md5":
		return utils.GetMD5, nil
	case "sha256":
		return utils.GetSHA256, nil
	case "sha512":
		return utils.GetSHA512, nil
	case "crc32":
		return utils.GetCRC32, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %s", name)
	}
}

// Scan streams the $MFT data from the handler record by record and returns
// the fully resolved table. On context cancellation the records decoded so
// far are flushed into a usable partial table and the context error is
// returned alongside it.
func (scanner Scanner) Scan(ctx context.Context, handler img.DiskReader) (*MFT.MFTTable, error) {
	size := handler.GetDiskSize()
	totalRecords := int(size / int64(scanner.recordSize))
	if totalRecords == 0 {
		return nil, fmt.Errorf("source of %d bytes holds no %d byte records", size, scanner.recordSize)
	}

	records := make([]MFT.Record, totalRecords)
	decoded := 0
	var scanErr error

	for base := 0; base < totalRecords; base += chunkRecords {
		select {
		case <-ctx.Done():
			scanErr = ctx.Err()
		default:
		}
		if scanErr != nil {
			logger.MFTAnalyzerlogger.Warning(fmt.Sprintf("scan stopped after %d of %d records: %v",
				decoded, totalRecords, scanErr))
			break
		}

		count := totalRecords - base
		if count > chunkRecords {
			count = chunkRecords
		}
		offset := int64(base) * int64(scanner.recordSize)
		data := handler.ReadFile(offset, count*scanner.recordSize)
		short := len(data) < count*scanner.recordSize
		if short {
			if base == 0 && len(data) < scanner.recordSize {
				return nil, errors.New("source unreadable, no record data returned")
			}
			count = len(data) / scanner.recordSize
		}

		if count > 0 {
			scanner.decodeChunk(data[:count*scanner.recordSize], base, records)
			decoded = base + count
			fmt.Printf("Processed %d of %d records \r", decoded, totalRecords)
		}
		if short {
			// a short read marks the end of the source, anything past it
			// would stay undecoded and must not reach the table
			break
		}
	}
	fmt.Printf("\n")

	mfttable := MFT.NewMFTTable(decoded*scanner.recordSize, scanner.recordSize)
	for idx := 0; idx < decoded; idx++ {
		mfttable.InsertRecord(records[idx])
	}
	if scanner.anomalies {
		mfttable.DetectTimestampAnomalies()
	}
	// paths only once the table is complete, parents may live anywhere
	mfttable.BuildPaths()
	return mfttable, scanErr
}

func (scanner Scanner) decodeChunk(data []byte, base int, records []MFT.Record) {
	count := len(data) / scanner.recordSize
	if count < SmallBatchRecords || scanner.workers <= 1 {
		for i := 0; i < count; i++ {
			scanner.decodeRecord(data, i, base, records)
		}
		return
	}

	wg := new(sync.WaitGroup)
	slots := make(chan int, scanner.workers)
	for w := 0; w < scanner.workers; w++ {
		wg.Add(1)
		go scanner.worker(wg, slots, data, base, records)
	}
	for i := 0; i < count; i++ {
		slots <- i
	}
	close(slots)
	wg.Wait()
}

// worker decodes the slots it receives. Every slot owns a distinct entry of
// the records slice, so no locking is needed.
func (scanner Scanner) worker(wg *sync.WaitGroup, slots <-chan int, data []byte, base int, records []MFT.Record) {
	defer wg.Done()
	for i := range slots {
		scanner.decodeRecord(data, i, base, records)
	}
}

func (scanner Scanner) decodeRecord(data []byte, i int, base int, records []MFT.Record) {
	bs := data[i*scanner.recordSize : (i+1)*scanner.recordSize]
	record := &records[base+i]
	if err := record.Process(bs); err != nil {
		logger.MFTAnalyzerlogger.Warning(fmt.Sprintf("record at slot %d %v", base+i, err))
	}
	if record.Validity != MFT.Valid && record.Validity != MFT.UnknownSignature {
		record.Entry = uint32(base + i)
	}
	if scanner.hasher != nil {
		record.Checksum = scanner.hasher(bs)
	}
}
