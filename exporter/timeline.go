package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

var timelineColumns = []string{
	"timestamp", "timestamp_desc", "source", "record", "path",
	"validity", "notes",
}

type timelineEvent struct {
	when   utils.WindowsTime
	desc   string
	record *MFT.Record
}

// exportTimeline flattens the table into one event per defined timestamp,
// sorted chronologically. Ties keep ascending record number order so reruns
// produce identical files.
func (exp Exporter) exportTimeline(filename string, records MFT.Records) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating timeline output %s: %w", filename, err)
	}
	defer file.Close()

	var events []timelineEvent
	for idx := range records {
		record := &records[idx]
		if siattr := record.FindSIAttribute(); siattr != nil {
			events = appendEvent(events, siattr.Crtime, "si_creation", record)
			events = appendEvent(events, siattr.Mtime, "si_modification", record)
			events = appendEvent(events, siattr.Atime, "si_access", record)
			events = appendEvent(events, siattr.MFTmtime, "si_entry_update", record)
		}
		if fnattr := record.GetDisplayFNAttribute(); fnattr != nil {
			events = appendEvent(events, fnattr.Crtime, "fn_creation", record)
			events = appendEvent(events, fnattr.Mtime, "fn_modification", record)
			events = appendEvent(events, fnattr.Atime, "fn_access", record)
			events = appendEvent(events, fnattr.MFTmtime, "fn_entry_update", record)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].when.Stamp != events[j].when.Stamp {
			return events[i].when.Stamp < events[j].when.Stamp
		}
		return events[i].record.Entry < events[j].record.Entry
	})

	writer := csv.NewWriter(file)
	if err := writer.Write(timelineColumns); err != nil {
		return err
	}
	for _, event := range events {
		err := writer.Write([]string{
			event.when.ConvertToIsoTimeIn(exp.location()),
			event.desc,
			"NTFS $MFT",
			strconv.FormatUint(uint64(event.record.Entry), 10),
			exp.recordName(event.record),
			event.record.Validity.String(),
			event.record.JoinedNotes(),
		})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func appendEvent(events []timelineEvent, when utils.WindowsTime, desc string, record *MFT.Record) []timelineEvent {
	if !when.IsDefined() {
		return events
	}
	return append(events, timelineEvent{when: when, desc: desc, record: record})
}
