package exporter

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rowingdude/analyzeMFT-sub000/MFT"
)

func (exp Exporter) exportCSV(filename string, records MFT.Records) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating csv output %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(columns); err != nil {
		return err
	}
	for idx := range records {
		if err := writer.Write(exp.buildRow(&records[idx])); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
