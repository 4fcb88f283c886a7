package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

var FileAttributes = map[uint32]string{
	1: "Read Only", 2: "Hidden", 4: "System",
	32: "Archive", 64: "Device", 128: "Normal", 256: "Temporary", 512: "Sparse file",
	1024: "Reparse", 2048: "Compressed", 4096: "Offline",
	8192:  "Not Indexed",
	16384: "Encrypted"}

var NameSpaceFlags = map[uint8]string{
	0: "POSIX", 1: "Win32", 2: "Dos", 3: "Win32 & Dos",
}

type FNAttribute struct {
	ParRef      uint64 //48 bit parent record number
	ParSeq      uint16
	Crtime      utils.WindowsTime
	Mtime       utils.WindowsTime
	MFTmtime    utils.WindowsTime
	Atime       utils.WindowsTime
	AllocFsize  uint64
	RealFsize   uint64
	Flags       uint32
	Reparse     uint32
	Nlen        uint8 //length of name in 16 bit units
	Nspace      uint8 //namespace of name
	Fname       string
	NameUnclean bool //name carried invalid UTF-16 units, escaped in Fname
	Header      *AttributeHeader
}

func (fnAttr *FNAttribute) SetHeader(header *AttributeHeader) {
	fnAttr.Header = header
}

func (fnAttr FNAttribute) GetHeader() AttributeHeader {
	return *fnAttr.Header
}

func (fnAttr FNAttribute) FindType() string {
	return fnAttr.Header.GetType()
}

func (fnAttr *FNAttribute) Parse(data []byte) error {
	if len(data) < 66 {
		return fmt.Errorf("file name attribute truncated, %d bytes", len(data))
	}
	if _, err := utils.Unmarshal(data[:66], fnAttr); err != nil {
		return err
	}
	nameEnd := 66 + 2*int(fnAttr.Nlen)
	if nameEnd > len(data) {
		return fmt.Errorf("file name overruns attribute body, need %d have %d", nameEnd, len(data))
	}
	name, clean := utils.DecodeUTF16(data[66:nameEnd])
	fnAttr.Fname = name
	fnAttr.NameUnclean = !clean
	return nil
}

func (fnAttr FNAttribute) GetFileNameType() string {
	return NameSpaceFlags[fnAttr.Nspace]
}

func (fnAttr FNAttribute) GetTimestamps() (string, string, string, string) {
	atime := fnAttr.Atime.ConvertToIsoTime()
	ctime := fnAttr.Crtime.ConvertToIsoTime()
	mtime := fnAttr.Mtime.ConvertToIsoTime()
	mftime := fnAttr.MFTmtime.ConvertToIsoTime()
	return atime, ctime, mtime, mftime
}

func (fnAttr FNAttribute) IsNoNResident() bool {
	return fnAttr.Header.IsNoNResident()
}

func (fnAttr FNAttribute) ShowInfo() {
	atime, ctime, mtime, mfttime := fnAttr.GetTimestamps()
	fmt.Printf("type %s par ref %d name %s atime %s ctime %s mtime %s mfttime %s\n",
		fnAttr.FindType(), fnAttr.ParRef, fnAttr.Fname, atime, ctime, mtime, mfttime)
}
