package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// LoggedUtilityStream covers $TXF_DATA, $EFS and similar named streams.
// Only $TXF_DATA has a layout worth interpreting, anything else keeps its
// name and size.
type LoggedUtilityStream struct {
	Kind    string
	TXFData *TXFData
	Size    int
	Header  *AttributeHeader
}

type TXFData struct {
	ParRef            uint64
	ParSeq            uint16
	Flags             [8]byte
	USN               uint64
	TxID              uint64
	LSNNTFSMetadata   uint64
	LSNUserData       uint64
	LSNDirectoryIndex uint64
}

func (loggedUtility LoggedUtilityStream) FindType() string {
	return loggedUtility.Header.GetType()
}

func (loggedUtility *LoggedUtilityStream) SetHeader(header *AttributeHeader) {
	loggedUtility.Header = header
}

func (loggedUtility LoggedUtilityStream) GetHeader() AttributeHeader {
	return *loggedUtility.Header
}

func (loggedUtility LoggedUtilityStream) IsNoNResident() bool {
	return loggedUtility.Header.IsNoNResident()
}

func (loggedUtility *LoggedUtilityStream) Parse(data []byte) error {
	loggedUtility.Size = len(data)
	if loggedUtility.Kind == "$TXF_DATA" {
		txfData := new(TXFData)
		if _, err := utils.Unmarshal(data, txfData); err != nil {
			return err
		}
		loggedUtility.TXFData = txfData
	}
	return nil
}

func (loggedUtility LoggedUtilityStream) ShowInfo() {
	fmt.Printf("type %s kind %s %d bytes\n", loggedUtility.FindType(),
		loggedUtility.Kind, loggedUtility.Size)
}
