package exporter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/Velocidex/ordereddict"
	"github.com/rowingdude/analyzeMFT-sub000/MFT"
)

// exportJSON writes one JSON object per line. ordereddict keeps the key
// order identical to the CSV columns, so diffing the two formats is
// mechanical.
func (exp Exporter) exportJSON(filename string, records MFT.Records) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating json output %s: %w", filename, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for idx := range records {
		row := exp.buildRow(&records[idx])
		entry := ordereddict.NewDict()
		for i, column := range columns {
			entry.Set(column, row[i])
		}
		serialized, err := entry.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := writer.Write(serialized); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return writer.Flush()
}
