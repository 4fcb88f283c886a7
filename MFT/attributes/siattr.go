package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

type SIAttribute struct {
	Crtime   utils.WindowsTime
	Mtime    utils.WindowsTime
	MFTmtime utils.WindowsTime
	Atime    utils.WindowsTime
	Dos      uint32
	Maxver   uint32
	Ver      uint32
	ClassID  uint32
	OwnID    uint32
	SecID    uint32
	Quota    uint64
	Usn      uint64
	Header   *AttributeHeader
}

func (siattr *SIAttribute) SetHeader(header *AttributeHeader) {
	siattr.Header = header
}

func (siattr SIAttribute) GetHeader() AttributeHeader {
	return *siattr.Header
}

func (siattr *SIAttribute) Parse(data []byte) error {
	// records written before NTFS 3.0 stop after the class id
	if len(data) >= 72 {
		_, err := utils.Unmarshal(data[:72], siattr)
		return err
	}
	if len(data) < 48 {
		return fmt.Errorf("standard information truncated, %d bytes", len(data))
	}
	return siattr.parseShort(data)
}

func (siattr *SIAttribute) parseShort(data []byte) error {
	short := struct {
		Crtime   utils.WindowsTime
		Mtime    utils.WindowsTime
		MFTmtime utils.WindowsTime
		Atime    utils.WindowsTime
		Dos      uint32
		Maxver   uint32
		Ver      uint32
		ClassID  uint32
	}{}
	if _, err := utils.Unmarshal(data[:48], &short); err != nil {
		return err
	}
	siattr.Crtime = short.Crtime
	siattr.Mtime = short.Mtime
	siattr.MFTmtime = short.MFTmtime
	siattr.Atime = short.Atime
	siattr.Dos = short.Dos
	siattr.Maxver = short.Maxver
	siattr.Ver = short.Ver
	siattr.ClassID = short.ClassID
	return nil
}

func (siattr SIAttribute) FindType() string {
	return siattr.Header.GetType()
}

func (siattr SIAttribute) IsNoNResident() bool {
	return siattr.Header.IsNoNResident() // always resident
}

func (siattr SIAttribute) GetTimestamps() (string, string, string, string) {
	atime := siattr.Atime.ConvertToIsoTime()
	ctime := siattr.Crtime.ConvertToIsoTime()
	mtime := siattr.Mtime.ConvertToIsoTime()
	mftime := siattr.MFTmtime.ConvertToIsoTime()
	return atime, ctime, mtime, mftime
}

func (siattr SIAttribute) ShowInfo() {
	atime, ctime, mtime, mfttime := siattr.GetTimestamps()
	fmt.Printf("type %s usn %d atime %s ctime %s mtime %s mfttime %s\n",
		siattr.FindType(), siattr.Usn, atime, ctime, mtime, mfttime)
}
