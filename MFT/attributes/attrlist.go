package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

type AttributeListEntries struct {
	Entries []AttributeList
	Header  *AttributeHeader
}

// AttributeList entries point to the extension records holding attributes
// that did not fit in the base record.
type AttributeList struct {
	Type       string //0-4
	Len        uint16 //4-6
	Namelen    uint8  //6-7
	Nameoffset uint8  //7-8
	StartVcn   uint64 //8-16
	ParRef     uint64 //16-22 48 bit record number of the holder
	ParSeq     uint16 //22-24
	ID         uint16 //24-26
	Name       utils.NoNull
}

func (attrList AttributeList) GetType() string {
	attrType, ok := AttrTypes[attrList.Type]
	if ok {
		return attrType
	}
	return fmt.Sprintf("Unknown (%s)", attrList.Type)
}

func (attrListEntries *AttributeListEntries) SetHeader(header *AttributeHeader) {
	attrListEntries.Header = header
}

func (attrListEntries AttributeListEntries) GetHeader() AttributeHeader {
	return *attrListEntries.Header
}

func (attrListEntries *AttributeListEntries) Parse(data []byte) error {
	attrLen := 0
	for attrLen+26 <= len(data) {
		var attrList AttributeList
		if _, err := utils.Unmarshal(data[attrLen:attrLen+26], &attrList); err != nil {
			return err
		}
		if attrList.Len == 0 { //cannot advance
			return fmt.Errorf("attribute list entry with zero length at offset %d", attrLen)
		}
		nameStart := attrLen + int(attrList.Nameoffset)
		nameEnd := nameStart + 2*int(attrList.Namelen)
		if attrList.Namelen > 0 && nameEnd <= len(data) {
			name, _ := utils.DecodeUTF16(data[nameStart:nameEnd])
			attrList.Name = utils.NoNull(name)
		}
		attrListEntries.Entries = append(attrListEntries.Entries, attrList)
		attrLen += int(attrList.Len)
	}
	return nil
}

func (attrListEntries AttributeListEntries) FindType() string {
	return attrListEntries.Header.GetType()
}

func (attrListEntries AttributeListEntries) IsNoNResident() bool {
	return attrListEntries.Header.IsNoNResident()
}

func (attrListEntries AttributeListEntries) ShowInfo() {
	for _, attrList := range attrListEntries.Entries {
		fmt.Printf("attr list type %s MFT ref %d start vcn %d name %s\n",
			attrList.GetType(), attrList.ParRef, attrList.StartVcn, attrList.Name)
	}
}
