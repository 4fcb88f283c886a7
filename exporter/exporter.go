package exporter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
	"github.com/rowingdude/analyzeMFT-sub000/logger"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// Exporter writes the decoded table to every output file that was asked
// for. Writers consume the table read only, a record is never modified at
// export time.
type Exporter struct {
	CSVFile      string
	JSONFile     string
	XMLFile      string
	BodyFile     string
	TimelineFile string
	SqliteFile   string

	// FullPaths selects the resolved path over the bare display name.
	FullPaths bool
	// BodyFileUseFN selects $FILE_NAME timestamps for the body file
	// instead of the default $STANDARD_INFORMATION ones.
	BodyFileUseFN bool
	// Location affects rendered timestamp strings only, nil means UTC.
	Location *time.Location
}

func (exp Exporter) ExportRecords(records MFT.Records) error {
	type job struct {
		file  string
		write func(string, MFT.Records) error
	}
	jobs := []job{
		{exp.CSVFile, exp.exportCSV},
		{exp.JSONFile, exp.exportJSON},
		{exp.XMLFile, exp.exportXML},
		{exp.BodyFile, exp.exportBodyFile},
		{exp.TimelineFile, exp.exportTimeline},
		{exp.SqliteFile, exp.exportSqlite},
	}
	for _, job := range jobs {
		if job.file == "" {
			continue
		}
		if err := job.write(job.file, records); err != nil {
			return err
		}
		logger.MFTAnalyzerlogger.Info(fmt.Sprintf("exported %d records to %s",
			len(records), job.file))
	}
	return nil
}

var columns = []string{
	"Record Number", "Validity", "Record Type", "Sequence", "Parent Record",
	"Filename", "SI Creation", "SI Modification", "SI Access", "SI Entry",
	"FN Creation", "FN Modification", "FN Access", "FN Entry",
	"Object ID", "File Size", "Timestamp Shift", "Subsecond Zero",
	"Checksum", "Notes",
}

func (exp Exporter) recordName(record *MFT.Record) string {
	if exp.FullPaths && record.FullPath != "" {
		return record.FullPath
	}
	return record.GetDisplayName()
}

// buildRow renders one record into the shared column set. Missing
// attributes leave their columns empty, undefined timestamps keep the
// sentinel string the codec produced.
func (exp Exporter) buildRow(record *MFT.Record) []string {
	row := make([]string, 0, len(columns))
	row = append(row,
		strconv.FormatUint(uint64(record.Entry), 10),
		record.Validity.String(),
		record.GetType(),
		strconv.FormatUint(uint64(record.Seq), 10),
	)

	parentColumn := ""
	if parRef, _, ok := record.GetParentReference(); ok {
		parentColumn = strconv.FormatUint(parRef, 10)
	}
	row = append(row, parentColumn, exp.recordName(record))

	siattr := record.FindSIAttribute()
	if siattr != nil {
		row = append(row,
			exp.isoTime(siattr.Crtime), exp.isoTime(siattr.Mtime),
			exp.isoTime(siattr.Atime), exp.isoTime(siattr.MFTmtime))
	} else {
		row = append(row, "", "", "", "")
	}

	fnattr := record.GetDisplayFNAttribute()
	if fnattr != nil {
		row = append(row,
			exp.isoTime(fnattr.Crtime), exp.isoTime(fnattr.Mtime),
			exp.isoTime(fnattr.Atime), exp.isoTime(fnattr.MFTmtime))
	} else {
		row = append(row, "", "", "", "")
	}

	objectID := ""
	if objattr := record.FindObjectID(); objattr != nil {
		objectID = objattr.ObjIDString()
	}
	size := ""
	if fnattr != nil {
		size = strconv.FormatUint(fnattr.RealFsize, 10)
	}
	row = append(row, objectID, size,
		strconv.FormatBool(record.TimestampShift),
		strconv.FormatBool(record.SubsecondZero),
		record.Checksum,
		record.JoinedNotes(),
	)
	return row
}

func (exp Exporter) isoTime(windowsTime utils.WindowsTime) string {
	return windowsTime.ConvertToIsoTimeIn(exp.location())
}

func (exp Exporter) location() *time.Location {
	if exp.Location == nil {
		return time.UTC
	}
	return exp.Location
}
