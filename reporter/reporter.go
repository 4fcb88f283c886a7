package reporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/rowingdude/analyzeMFT-sub000/MFT"
)

type Reporter struct {
	ShowAttributes string
	ShowTimestamps bool
	ShowPath       bool
	ShowAnomalies  bool
	ShowFull       bool
}

func (rp Reporter) Show(records MFT.Records) {
	for _, record := range records {
		askedToShow := false

		if rp.ShowAttributes != "" || rp.ShowFull {
			record.ShowAttributes(rp.ShowAttributes)
			askedToShow = true
		}

		if rp.ShowTimestamps || rp.ShowFull {
			record.ShowTimestamps()
			askedToShow = true
		}

		if rp.ShowPath || rp.ShowFull {
			fmt.Printf("path %s ", record.FullPath)
			askedToShow = true
		}

		if rp.ShowAnomalies || rp.ShowFull {
			if record.TimestampShift {
				fmt.Printf("timestamp shift ")
			}
			if record.SubsecondZero {
				fmt.Printf("zero subseconds ")
			}
			askedToShow = true
		}

		if askedToShow {
			fmt.Printf("\n")
		}
	}
}

// ShowSummary renders the scan totals. It is always produced, even when the
// source yielded nothing usable.
func (rp Reporter) ShowSummary(writer io.Writer, summary MFT.TableSummary) {
	table := tablewriter.NewWriter(writer)
	table.SetHeader([]string{"", "Count"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	rows := [][2]string{
		{"Records scanned", strconv.Itoa(summary.Total)},
		{"Valid", strconv.Itoa(summary.Valid)},
		{"Bad signature", strconv.Itoa(summary.BadSignature)},
		{"Zero signature", strconv.Itoa(summary.ZeroSignature)},
		{"Unknown signature", strconv.Itoa(summary.UnknownSignature)},
		{"In use", strconv.Itoa(summary.InUse)},
		{"Deleted", strconv.Itoa(summary.Deleted)},
		{"Folders", strconv.Itoa(summary.Folders)},
		{"Orphans", strconv.Itoa(summary.Orphans)},
		{"Timestamp shift", strconv.Itoa(summary.TimestampShift)},
		{"Zero subseconds", strconv.Itoa(summary.SubsecondZero)},
		{"With notes", strconv.Itoa(summary.WithNotes)},
	}
	for _, row := range rows {
		table.Append(row[:])
	}
	table.Render()
}
