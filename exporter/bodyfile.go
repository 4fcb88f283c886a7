package exporter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// exportBodyFile writes the mactime body format:
//
//	MD5|name|inode|mode_as_string|UID|GID|size|atime|mtime|ctime|crtime
//
// Timestamps are integer Unix seconds taken from $STANDARD_INFORMATION, or
// from $FILE_NAME when BodyFileUseFN is set. The hash column is 0 unless
// integrity hashing ran. Undefined timestamps render as 0.
func (exp Exporter) exportBodyFile(filename string, records MFT.Records) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating body file %s: %w", filename, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for idx := range records {
		record := &records[idx]
		if record.Validity != MFT.Valid && record.Validity != MFT.UnknownSignature {
			continue
		}

		hash := record.Checksum
		if hash == "" {
			hash = "0"
		}
		name := exp.recordName(record)

		var size uint64
		var atime, mtime, ctime, crtime utils.WindowsTime
		fnattr := record.GetDisplayFNAttribute()
		if fnattr != nil {
			size = fnattr.RealFsize
		}
		siattr := record.FindSIAttribute()
		if exp.BodyFileUseFN && fnattr != nil {
			atime, mtime, ctime, crtime = fnattr.Atime, fnattr.Mtime, fnattr.MFTmtime, fnattr.Crtime
		} else if siattr != nil {
			atime, mtime, ctime, crtime = siattr.Atime, siattr.Mtime, siattr.MFTmtime, siattr.Crtime
		}

		fmt.Fprintf(writer, "%s|%s|%d|0|0|0|%d|%d|%d|%d|%d\n",
			hash, name, record.Entry, size,
			atime.Unix(), mtime.Unix(), ctime.Unix(), crtime.Unix())
	}
	return writer.Flush()
}
