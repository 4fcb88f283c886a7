package exporter

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
)

type xmlRecord struct {
	XMLName        xml.Name `xml:"record"`
	Number         string   `xml:"number,attr"`
	Validity       string   `xml:"validity,attr"`
	RecordType     string   `xml:"type"`
	Sequence       string   `xml:"sequence"`
	ParentRecord   string   `xml:"parent,omitempty"`
	Filename       string   `xml:"filename"`
	SICreation     string   `xml:"si_creation,omitempty"`
	SIModification string   `xml:"si_modification,omitempty"`
	SIAccess       string   `xml:"si_access,omitempty"`
	SIEntry        string   `xml:"si_entry,omitempty"`
	FNCreation     string   `xml:"fn_creation,omitempty"`
	FNModification string   `xml:"fn_modification,omitempty"`
	FNAccess       string   `xml:"fn_access,omitempty"`
	FNEntry        string   `xml:"fn_entry,omitempty"`
	ObjectID       string   `xml:"object_id,omitempty"`
	FileSize       string   `xml:"size,omitempty"`
	TimestampShift string   `xml:"timestamp_shift"`
	SubsecondZero  string   `xml:"subsecond_zero"`
	Checksum       string   `xml:"checksum,omitempty"`
	Notes          string   `xml:"notes,omitempty"`
}

func (exp Exporter) exportXML(filename string, records MFT.Records) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating xml output %s: %w", filename, err)
	}
	defer file.Close()

	if _, err := file.WriteString(xml.Header + "<mft>\n"); err != nil {
		return err
	}
	encoder := xml.NewEncoder(file)
	encoder.Indent("  ", "  ")
	for idx := range records {
		row := exp.buildRow(&records[idx])
		entry := xmlRecord{
			Number: row[0], Validity: row[1], RecordType: row[2],
			Sequence: row[3], ParentRecord: row[4], Filename: row[5],
			SICreation: row[6], SIModification: row[7],
			SIAccess: row[8], SIEntry: row[9],
			FNCreation: row[10], FNModification: row[11],
			FNAccess: row[12], FNEntry: row[13],
			ObjectID: row[14], FileSize: row[15],
			TimestampShift: row[16], SubsecondZero: row[17],
			Checksum: row[18], Notes: row[19],
		}
		if err := encoder.Encode(entry); err != nil {
			return err
		}
	}
	if err := encoder.Flush(); err != nil {
		return err
	}
	_, err = file.WriteString("\n</mft>\n")
	return err
}
