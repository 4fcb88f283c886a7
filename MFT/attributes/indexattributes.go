package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// Index structures are decoded to header level only. The directory entry
// trees they carry are outside what this tool reports on.
type IndexRoot struct {
	Type                 string //0-4 attribute type the index sorts
	CollationSortingRule uint32 //4-8
	Sizebytes            uint32 //8-12
	Sizeclusters         uint8  //12-13
	Header               *AttributeHeader
}

type IndexAllocation struct {
	Signature          string //0-4 INDX
	FixupArrayOffset   uint16 //4-6
	NumOfFixupEntries  uint16 //6-8
	LSN                uint64 //8-16
	VCN                uint64 //16-24
	Header             *AttributeHeader
}

func (idxRoot *IndexRoot) SetHeader(header *AttributeHeader) {
	idxRoot.Header = header
}

func (idxRoot IndexRoot) GetHeader() AttributeHeader {
	return *idxRoot.Header
}

func (idxRoot *IndexRoot) Parse(data []byte) error {
	if len(data) < 13 {
		return fmt.Errorf("index root truncated, %d bytes", len(data))
	}
	_, err := utils.Unmarshal(data[:13], idxRoot)
	return err
}

func (idxRoot IndexRoot) FindType() string {
	return idxRoot.Header.GetType()
}

func (idxRoot IndexRoot) IsNoNResident() bool {
	return false // always resident
}

func (idxRoot IndexRoot) ShowInfo() {
	fmt.Printf("type %s indexed type %s entry size %d\n", idxRoot.FindType(),
		idxRoot.Type, idxRoot.Sizebytes)
}

func (idxAllocation *IndexAllocation) SetHeader(header *AttributeHeader) {
	idxAllocation.Header = header
}

func (idxAllocation IndexAllocation) GetHeader() AttributeHeader {
	return *idxAllocation.Header
}

func (idxAllocation *IndexAllocation) Parse(data []byte) error {
	if len(data) < 24 {
		return fmt.Errorf("index allocation truncated, %d bytes", len(data))
	}
	_, err := utils.Unmarshal(data[:24], idxAllocation)
	return err
}

func (idxAllocation IndexAllocation) FindType() string {
	return idxAllocation.Header.GetType()
}

func (idxAllocation IndexAllocation) IsNoNResident() bool {
	return idxAllocation.Header.IsNoNResident()
}

func (idxAllocation IndexAllocation) ShowInfo() {
	fmt.Printf("type %s vcn %d\n", idxAllocation.FindType(), idxAllocation.VCN)
}
