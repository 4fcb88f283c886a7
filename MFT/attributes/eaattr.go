package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

type EA_INFORMATION struct {
	SizeOfEntry uint16
	NofEA       uint16
	Size        uint32
	Header      *AttributeHeader
}

type ExtendedAttribute struct {
	NextAttrOffset uint32
	Flags          uint8
	NofChars       uint8
	DataSize       uint16
	Name           string
	Header         *AttributeHeader
}

func (ea_info EA_INFORMATION) FindType() string {
	return ea_info.Header.GetType()
}

func (ea_info *EA_INFORMATION) SetHeader(header *AttributeHeader) {
	ea_info.Header = header
}

func (ea_info EA_INFORMATION) GetHeader() AttributeHeader {
	return *ea_info.Header
}

func (ea_info EA_INFORMATION) IsNoNResident() bool {
	return ea_info.Header.IsNoNResident()
}

func (ea_info *EA_INFORMATION) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, ea_info)
	return err
}

func (ea_info EA_INFORMATION) ShowInfo() {
	fmt.Printf("type %s entries %d size %d\n", ea_info.FindType(), ea_info.NofEA, ea_info.Size)
}

func (ea ExtendedAttribute) FindType() string {
	return ea.Header.GetType()
}

func (ea *ExtendedAttribute) SetHeader(header *AttributeHeader) {
	ea.Header = header
}

func (ea ExtendedAttribute) GetHeader() AttributeHeader {
	return *ea.Header
}

func (ea ExtendedAttribute) IsNoNResident() bool {
	return ea.Header.IsNoNResident()
}

func (ea *ExtendedAttribute) Parse(data []byte) error {
	if _, err := utils.Unmarshal(data[:min(8, len(data))], ea); err != nil {
		return err
	}
	nameEnd := 8 + int(ea.NofChars)
	if nameEnd <= len(data) {
		ea.Name = string(data[8:nameEnd])
	}
	return nil
}

func (ea ExtendedAttribute) ShowInfo() {
	fmt.Printf("type %s name %s\n", ea.FindType(), ea.Name)
}
