package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

var AttrTypes = map[string]string{
	"00000010": "Standard Information", "00000020": "Attribute List",
	"00000030": "FileName", "00000040": "Object ID",
	"00000050": "Security Descriptor", "00000060": "Volume Name",
	"00000070": "Volume Information", "00000080": "DATA",
	"00000090": "Index Root", "000000a0": "Index Allocation",
	"000000b0": "BitMap", "000000c0": "Reparse Point",
	"000000d0": "Extended Attribute Information", "000000e0": "Extended Attribute",
	"00000100": "Logged Utility Stream",
	"ffffffff": "Last",
}

// Attribute is one decoded record attribute. Parse interprets the resident
// body and fails softly with an error the caller records as a note.
type Attribute interface {
	FindType() string
	SetHeader(header *AttributeHeader)
	GetHeader() AttributeHeader
	IsNoNResident() bool
	ShowInfo()
	Parse(data []byte) error
}

type AttributeHeader struct {
	Type                 string //0-3 type of attribute e.g. $DATA
	AttrLen              uint32 //4-8 total length, the stride to the next attribute
	NoNResident          uint8  //8
	Nlen                 uint8  //9
	NameOff              uint16 //10-12 relative to the start of attribute
	Flags                uint16 //12-14 compressed, encrypted, sparse
	ID                   uint16 //14-16
	ATRrecordResident    *ATRrecordResident
	ATRrecordNoNResident *ATRrecordNoNResident
}

type ATRrecordResident struct {
	ContentSize   uint32 //16-20 size of resident body
	OffsetContent uint16 //20-22 relative to the start of attribute
	IdxFlags      uint16
	Name          string
}

type ATRrecordNoNResident struct {
	StartVcn     uint64 //16-24
	LastVcn      uint64 //24-32
	RunOff       uint16 //32-34 offset to the runlist
	Compusize    uint16 //34-36
	F1           uint32 //36-40
	Length       uint64 //40-48 allocated
	ActualLength uint64 //48-56
	InitLength   uint64 //56-64
}

func (atrRecordResident *ATRrecordResident) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, atrRecordResident)
	return err
}

func (atrNoNRecordResident *ATRrecordNoNResident) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, atrNoNRecordResident)
	return err
}

func (attrHeader *AttributeHeader) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, attrHeader)
	return err
}

func (attrHeader AttributeHeader) GetType() string {
	attrType, ok := AttrTypes[attrHeader.Type]
	if ok {
		return attrType
	}
	return fmt.Sprintf("Unknown (%s)", attrHeader.Type)
}

func (attrHeader AttributeHeader) IsLast() bool {
	return attrHeader.Type == "ffffffff"
}

func (attrHeader AttributeHeader) IsNoNResident() bool {
	return attrHeader.NoNResident == 1
}

func (attrHeader AttributeHeader) IsKnown() bool {
	_, ok := AttrTypes[attrHeader.Type]
	return ok
}

type VolumeName struct {
	Name   utils.NoNull
	Header *AttributeHeader
}

func (volName *VolumeName) SetHeader(header *AttributeHeader) {
	volName.Header = header
}

func (volName VolumeName) GetHeader() AttributeHeader {
	return *volName.Header
}

func (volName *VolumeName) Parse(data []byte) error {
	name, _ := utils.DecodeUTF16(data)
	volName.Name = utils.NoNull(name)
	return nil
}

func (volName VolumeName) FindType() string {
	return volName.Header.GetType()
}

func (volName VolumeName) IsNoNResident() bool {
	return volName.Header.IsNoNResident()
}

func (volName VolumeName) ShowInfo() {
	fmt.Printf("type %s name %s\n", volName.FindType(), volName.Name)
}

type VolumeInfo struct {
	F1     uint64 //unused
	MajVer uint8  //8-9
	MinVer uint8  //9-10
	Flags  uint16
	Header *AttributeHeader
}

func (volInfo *VolumeInfo) SetHeader(header *AttributeHeader) {
	volInfo.Header = header
}

func (volInfo VolumeInfo) GetHeader() AttributeHeader {
	return *volInfo.Header
}

func (volInfo *VolumeInfo) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, volInfo)
	return err
}

func (volInfo VolumeInfo) IsNoNResident() bool {
	return volInfo.Header.IsNoNResident()
}

func (volInfo VolumeInfo) FindType() string {
	return volInfo.Header.GetType()
}

func (volInfo VolumeInfo) ShowInfo() {
	fmt.Printf("type %s ver %d.%d\n", volInfo.FindType(), volInfo.MajVer, volInfo.MinVer)
}

type BitMap struct {
	AllocationStatus []byte
	Header           *AttributeHeader
}

func (bitmap *BitMap) SetHeader(header *AttributeHeader) {
	bitmap.Header = header
}

func (bitmap BitMap) GetHeader() AttributeHeader {
	return *bitmap.Header
}

func (bitmap *BitMap) Parse(data []byte) error {
	bitmap.AllocationStatus = data
	return nil
}

func (bitmap BitMap) FindType() string {
	return bitmap.Header.GetType()
}

func (bitmap BitMap) IsNoNResident() bool {
	return bitmap.Header.IsNoNResident()
}

func (bitmap BitMap) ShowInfo() {
	fmt.Printf("type %s %d bytes\n", bitmap.FindType(), len(bitmap.AllocationStatus))
}

type Reparse struct {
	Flags                 uint32
	Size                  uint16
	Unused                [2]byte
	TargetNameOffset      int16
	TargetLen             uint16
	TargetPrintNameOffset int16
	TargetPrintNameLen    uint16
	Name                  string
	PrintName             string
	Header                *AttributeHeader
}

func (reparse *Reparse) SetHeader(header *AttributeHeader) {
	reparse.Header = header
}

func (reparse Reparse) GetHeader() AttributeHeader {
	return *reparse.Header
}

func (reparse *Reparse) Parse(data []byte) error {
	if _, err := utils.Unmarshal(data[:min(16, len(data))], reparse); err != nil {
		return err
	}
	nameStart := 16 + int(reparse.TargetNameOffset)
	nameEnd := nameStart + int(reparse.TargetLen)
	if nameStart >= 16 && nameEnd <= len(data) {
		reparse.Name, _ = utils.DecodeUTF16(data[nameStart:nameEnd])
	}
	printStart := 16 + int(reparse.TargetPrintNameOffset)
	printEnd := printStart + int(reparse.TargetPrintNameLen)
	if printStart >= 16 && printEnd <= len(data) {
		reparse.PrintName, _ = utils.DecodeUTF16(data[printStart:printEnd])
	}
	return nil
}

func (reparse Reparse) IsNoNResident() bool {
	return reparse.Header.IsNoNResident()
}

func (reparse Reparse) FindType() string {
	return reparse.Header.GetType()
}

func (reparse Reparse) ShowInfo() {
	fmt.Printf("type %s target name %s print name %s\n", reparse.FindType(),
		reparse.Name, reparse.PrintName)
}

type SecurityDescriptor struct {
	Revision    uint8
	Padding     uint8
	ControlFlag uint16
	OffsetOwner uint32
	OffsetGroup uint32
	OffsetSACL  uint32
	OffsetDACL  uint32
	Header      *AttributeHeader
}

func (secDesc *SecurityDescriptor) SetHeader(header *AttributeHeader) {
	secDesc.Header = header
}

func (secDesc SecurityDescriptor) GetHeader() AttributeHeader {
	return *secDesc.Header
}

func (secDesc *SecurityDescriptor) Parse(data []byte) error {
	_, err := utils.Unmarshal(data, secDesc)
	return err
}

func (secDesc SecurityDescriptor) FindType() string {
	return secDesc.Header.GetType()
}

func (secDesc SecurityDescriptor) IsNoNResident() bool {
	return secDesc.Header.IsNoNResident()
}

func (secDesc SecurityDescriptor) ShowInfo() {
	fmt.Printf("type %s rev %d\n", secDesc.FindType(), secDesc.Revision)
}

// Unknown preserves attributes outside the enumerated set. The raw body is
// kept verbatim for audit.
type Unknown struct {
	TypeCode string
	Raw      []byte
	Header   *AttributeHeader
}

func (unknown *Unknown) SetHeader(header *AttributeHeader) {
	unknown.Header = header
}

func (unknown Unknown) GetHeader() AttributeHeader {
	return *unknown.Header
}

func (unknown *Unknown) Parse(data []byte) error {
	unknown.Raw = data
	return nil
}

func (unknown Unknown) FindType() string {
	return unknown.Header.GetType()
}

func (unknown Unknown) IsNoNResident() bool {
	return unknown.Header.IsNoNResident()
}

func (unknown Unknown) ShowInfo() {
	fmt.Printf("type %s %d bytes\n", unknown.FindType(), len(unknown.Raw))
}
