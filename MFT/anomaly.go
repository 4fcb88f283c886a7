package MFT

// DetectTimestampAnomalies inspects the creation timestamps of every
// decoded record and raises the two timestomping indicators.
//
// timestamp_shift fires when the $STANDARD_INFORMATION creation time is
// strictly earlier than any $FILE_NAME one, or when any of them is not
// set at all. $FILE_NAME timestamps are only rewritten by the kernel, so
// user mode tampering with the SI times leaves this skew behind. Records
// with hard links or a DOS namespace carry several $FILE_NAME attributes
// and every one of them is checked.
//
// subsecond_zero fires when a defined creation time sits exactly on a
// second boundary. Real NTFS writes carry 100ns residue, an exact zero
// fraction is the fingerprint of tools that set times with second
// precision.
func (mfttable *MFTTable) DetectTimestampAnomalies() {
	for idx := range mfttable.Records {
		record := &mfttable.Records[idx]
		if record.Validity != Valid && record.Validity != UnknownSignature {
			continue
		}
		detectAnomalies(record)
	}
}

func detectAnomalies(record *Record) {
	siattr := record.FindSIAttribute()
	fnattrs := record.FindFNAttributes()
	if siattr == nil || len(fnattrs) == 0 {
		return
	}
	if !siattr.Crtime.IsDefined() {
		record.TimestampShift = true
		record.AddNote("si creation time not set")
	}

	fnNotSet := false
	fnLater := false
	fnZero := false
	for _, fnattr := range fnattrs {
		if !fnattr.Crtime.IsDefined() {
			fnNotSet = true
			continue
		}
		if siattr.Crtime.IsDefined() && siattr.Crtime.Before(fnattr.Crtime) {
			fnLater = true
		}
		if fnattr.Crtime.SubsecondZero() {
			fnZero = true
		}
	}
	if fnNotSet {
		record.TimestampShift = true
		record.AddNote("fn creation time not set")
	}
	if fnLater {
		record.TimestampShift = true
		record.AddNote("si creation time predates fn creation time")
	}

	if siattr.Crtime.IsDefined() && siattr.Crtime.SubsecondZero() {
		record.SubsecondZero = true
		record.AddNote("si creation time has zero subsecond part")
	}
	if fnZero {
		record.SubsecondZero = true
		record.AddNote("fn creation time has zero subsecond part")
	}
}
