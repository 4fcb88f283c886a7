package MFT

import (
	"fmt"
	"strings"

	MFTAttributes "github.com/rowingdude/analyzeMFT-sub000/MFT/attributes"
	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// RecordSize is the default record length. The authoritative value comes
// from the volume boot parameters and is configurable end to end.
const RecordSize = 1024

const (
	FlagInUse     = 0x0001
	FlagDirectory = 0x0002
	// the meaning of 0x0004 and 0x0008 is undocumented, they are surfaced
	// verbatim and never interpreted
	FlagUnknown1 = 0x0004
	FlagUnknown2 = 0x0008
)

var MFTflags = map[uint16]string{
	0: "File Unallocated", 1: "File Allocated", 2: "Folder Unallocated", 3: "Folder Allocated",
}

// Validity is the classification of the 4 byte record signature. It is a
// first class result, not an error: corrupt and unused slots still occupy
// their position in the table.
type Validity int

const (
	Valid Validity = iota
	BadSignature
	ZeroSignature
	UnknownSignature
)

func (validity Validity) String() string {
	switch validity {
	case Valid:
		return "Valid"
	case BadSignature:
		return "BadSignature"
	case ZeroSignature:
		return "ZeroSignature"
	default:
		return "UnknownSignature"
	}
}

type Attribute = MFTAttributes.Attribute

type Records []Record

// Record is the decoded form of one $MFT entry.
type Record struct {
	Signature          string //0-3
	UpdateSeqArrOffset uint16 //4-5 offsets are relative to the start of the entry
	UpdateSeqArrSize   uint16 //6-7
	Lsn                uint64 //8-15 $LogFile sequence number
	Seq                uint16 //16-17 incremented when the entry is reused
	Linkcount          uint16 //18-19 how many directories reference this entry
	AttrOff            uint16 //20-21 first attribute location
	Flags              uint16 //22-23 in use and directory bits
	Size               uint32 //24-27 used size
	AllocSize          uint32 //28-31
	BaseRef            uint64 //32-39 base record for attribute list extensions
	NextAttrID         uint16 //40-41
	F1                 uint16 //42-43
	Entry              uint32 //44-48 this record's number

	Validity   Validity
	Attributes []Attribute

	// FullPath is set exactly once by the path resolution pass.
	FullPath string
	Orphan   bool

	// Anomaly flags set by DetectTimestampAnomalies.
	TimestampShift bool
	SubsecondZero  bool

	// Checksum of the raw record bytes when integrity hashing was requested.
	Checksum string

	Notes []string
}

func (record *Record) AddNote(note string) {
	record.Notes = append(record.Notes, note)
}

func (record Record) JoinedNotes() string {
	return strings.Join(record.Notes, "; ")
}

// Process decodes one raw record buffer. Decode problems never fail the
// record: they are recorded as notes and whatever was already decoded stays
// valid.
func (record *Record) Process(bs []byte) error {
	if len(bs) < 48 {
		return fmt.Errorf("record buffer too short for header, %d bytes", len(bs))
	}

	record.classifySignature(bs)
	if record.Validity == BadSignature || record.Validity == ZeroSignature {
		// corrupt or never written slot, nothing to scan
		record.Signature = string(bs[0:4])
		return nil
	}

	if _, err := utils.Unmarshal(bs[:48], record); err != nil {
		return err
	}

	if uint32(len(bs)) < record.Size {
		record.AddNote(fmt.Sprintf("used size %d exceeds record buffer %d", record.Size, len(bs)))
	}
	if record.Size > record.AllocSize {
		record.AddNote(fmt.Sprintf("used size %d exceeds allocated size %d", record.Size, record.AllocSize))
	}
	if int(record.AttrOff) >= len(bs) {
		record.AddNote(fmt.Sprintf("first attribute offset %d outside record", record.AttrOff))
		return nil
	}

	record.processAttributes(bs)
	return nil
}

func (record *Record) classifySignature(bs []byte) {
	switch {
	case string(bs[0:4]) == "FILE":
		record.Validity = Valid
	case string(bs[0:4]) == "BAAD":
		record.Validity = BadSignature
	case bs[0] == 0 && bs[1] == 0 && bs[2] == 0 && bs[3] == 0:
		record.Validity = ZeroSignature
	default:
		// some intact records carry non standard signatures, scan anyway
		record.Validity = UnknownSignature
	}
}

func (record *Record) processAttributes(bs []byte) {
	ReadPtr := int(record.AttrOff)
	var attributes []Attribute

	for ReadPtr+4 <= len(bs) {
		if utils.Hexify(bs[ReadPtr:ReadPtr+4]) == "ffffffff" { //end of attributes
			break
		}
		if ReadPtr+16 > len(bs) {
			record.AddNote(fmt.Sprintf("attribute header overruns record at offset %d", ReadPtr))
			break
		}

		var attrHeader MFTAttributes.AttributeHeader
		if err := attrHeader.Parse(bs[ReadPtr : ReadPtr+16]); err != nil {
			record.AddNote(err.Error())
			break
		}
		if attrHeader.IsLast() {
			break
		}
		// the declared total length is the only stride to the next
		// attribute, a value that cannot advance ends the scan
		if attrHeader.AttrLen == 0 {
			record.AddNote(fmt.Sprintf("attribute %s with zero length at offset %d", attrHeader.GetType(), ReadPtr))
			break
		}
		if attrHeader.AttrLen < 16 {
			record.AddNote(fmt.Sprintf("attribute %s with undersized length %d at offset %d",
				attrHeader.GetType(), attrHeader.AttrLen, ReadPtr))
			break
		}
		attrEnd := ReadPtr + int(attrHeader.AttrLen)
		if attrEnd > len(bs) {
			record.AddNote(fmt.Sprintf("attribute %s length %d overruns record at offset %d",
				attrHeader.GetType(), attrHeader.AttrLen, ReadPtr))
			break
		}

		attrName := ""
		if attrHeader.Nlen > 0 {
			nameStart := ReadPtr + int(attrHeader.NameOff)
			nameEnd := nameStart + 2*int(attrHeader.Nlen)
			if nameStart >= ReadPtr && nameEnd <= attrEnd {
				attrName, _ = utils.DecodeUTF16(bs[nameStart:nameEnd])
			}
		}

		if !attrHeader.IsNoNResident() { //resident attribute
			atrRecordResident := new(MFTAttributes.ATRrecordResident)
			if ReadPtr+24 > len(bs) {
				record.AddNote(fmt.Sprintf("resident header overruns record at offset %d", ReadPtr))
				break
			}
			if err := atrRecordResident.Parse(bs[ReadPtr+16 : ReadPtr+24]); err != nil {
				record.AddNote(err.Error())
				break
			}
			atrRecordResident.Name = attrName
			attrHeader.ATRrecordResident = atrRecordResident

			contentStart := ReadPtr + int(atrRecordResident.OffsetContent)
			contentEnd := contentStart + int(atrRecordResident.ContentSize)
			if contentStart < ReadPtr || contentEnd > attrEnd {
				record.AddNote(fmt.Sprintf("attribute %s content overruns its body", attrHeader.GetType()))
				break
			}
			content := bs[contentStart:contentEnd]

			attr := newResidentAttribute(&attrHeader, attrName)
			attr.SetHeader(&attrHeader)
			if err := attr.Parse(content); err != nil {
				record.AddNote(fmt.Sprintf("attribute %s: %v", attrHeader.GetType(), err))
				break
			}
			if fnattr, ok := attr.(*MFTAttributes.FNAttribute); ok && fnattr.NameUnclean {
				record.AddNote("name truncated, non-printable bytes hex-escaped")
			}
			attributes = append(attributes, attr)

		} else { //non resident attribute
			atrNoNRecordResident := new(MFTAttributes.ATRrecordNoNResident)
			if ReadPtr+64 > len(bs) {
				record.AddNote(fmt.Sprintf("non resident header overruns record at offset %d", ReadPtr))
				break
			}
			if err := atrNoNRecordResident.Parse(bs[ReadPtr+16 : ReadPtr+64]); err != nil {
				record.AddNote(err.Error())
				break
			}
			attrHeader.ATRrecordNoNResident = atrNoNRecordResident

			// content lives in external clusters, only the VCN range and
			// sizes are recorded, data runs are not followed
			attr := newNonResidentAttribute(&attrHeader, attrName)
			attr.SetHeader(&attrHeader)
			attributes = append(attributes, attr)
		}

		ReadPtr = attrEnd
	}

	record.Attributes = attributes
}

func newResidentAttribute(attrHeader *MFTAttributes.AttributeHeader, attrName string) Attribute {
	switch attrHeader.GetType() {
	case "Standard Information":
		return &MFTAttributes.SIAttribute{}
	case "FileName":
		return &MFTAttributes.FNAttribute{}
	case "Object ID":
		return &MFTAttributes.ObjectID{}
	case "Attribute List":
		return &MFTAttributes.AttributeListEntries{}
	case "DATA":
		return &MFTAttributes.DATA{}
	case "Index Root":
		return &MFTAttributes.IndexRoot{}
	case "BitMap":
		return &MFTAttributes.BitMap{}
	case "Reparse Point":
		return &MFTAttributes.Reparse{}
	case "Extended Attribute Information":
		return &MFTAttributes.EA_INFORMATION{}
	case "Extended Attribute":
		return &MFTAttributes.ExtendedAttribute{}
	case "Volume Name":
		return &MFTAttributes.VolumeName{}
	case "Volume Information":
		return &MFTAttributes.VolumeInfo{}
	case "Security Descriptor":
		return &MFTAttributes.SecurityDescriptor{}
	case "Logged Utility Stream":
		return &MFTAttributes.LoggedUtilityStream{Kind: attrName}
	default:
		return &MFTAttributes.Unknown{TypeCode: attrHeader.Type}
	}
}

func newNonResidentAttribute(attrHeader *MFTAttributes.AttributeHeader, attrName string) Attribute {
	switch attrHeader.GetType() {
	case "DATA":
		return &MFTAttributes.DATA{}
	case "Index Allocation":
		return &MFTAttributes.IndexAllocation{}
	case "BitMap":
		return &MFTAttributes.BitMap{}
	case "Attribute List":
		return &MFTAttributes.AttributeListEntries{}
	case "Reparse Point":
		return &MFTAttributes.Reparse{}
	case "Logged Utility Stream":
		return &MFTAttributes.LoggedUtilityStream{Kind: attrName}
	default:
		return &MFTAttributes.Unknown{TypeCode: attrHeader.Type}
	}
}

func (record Record) FindAttribute(attributeName string) Attribute {
	for _, attribute := range record.Attributes {
		if attribute.FindType() == attributeName {
			return attribute
		}
	}
	return nil
}

func (record Record) HasAttr(attrName string) bool {
	return record.FindAttribute(attrName) != nil
}

// AttributeTypesPresent reports which enumerated types the record carries.
func (record Record) AttributeTypesPresent() map[string]bool {
	present := make(map[string]bool, len(record.Attributes))
	for _, attribute := range record.Attributes {
		present[attribute.FindType()] = true
	}
	return present
}

func (record Record) FindFNAttributes() []*MFTAttributes.FNAttribute {
	var fnattrs []*MFTAttributes.FNAttribute
	for _, attribute := range record.Attributes {
		if fnattr, ok := attribute.(*MFTAttributes.FNAttribute); ok {
			fnattrs = append(fnattrs, fnattr)
		}
	}
	return fnattrs
}

func (record Record) FindSIAttribute() *MFTAttributes.SIAttribute {
	attr := record.FindAttribute("Standard Information")
	if attr == nil {
		return nil
	}
	return attr.(*MFTAttributes.SIAttribute)
}

func (record Record) FindObjectID() *MFTAttributes.ObjectID {
	attr := record.FindAttribute("Object ID")
	if attr == nil {
		return nil
	}
	return attr.(*MFTAttributes.ObjectID)
}

// GetDisplayName picks the name every downstream report shows: the longest
// among the FILE_NAME attributes, ties keep the first one encountered.
func (record Record) GetDisplayName() string {
	name := ""
	for _, fnattr := range record.FindFNAttributes() {
		if len(fnattr.Fname) > len(name) {
			name = fnattr.Fname
		}
	}
	return name
}

// GetDisplayFNAttribute returns the attribute the display name came from.
func (record Record) GetDisplayFNAttribute() *MFTAttributes.FNAttribute {
	var display *MFTAttributes.FNAttribute
	for _, fnattr := range record.FindFNAttributes() {
		if display == nil || len(fnattr.Fname) > len(display.Fname) {
			display = fnattr
		}
	}
	return display
}

// GetParentReference extracts the parent record and sequence numbers from
// FILE_NAME attribute 0.
func (record Record) GetParentReference() (uint64, uint16, bool) {
	fnattrs := record.FindFNAttributes()
	if len(fnattrs) == 0 {
		return 0, 0, false
	}
	return fnattrs[0].ParRef, fnattrs[0].ParSeq, true
}

func (record Record) IsInUse() bool {
	return record.Flags&FlagInUse != 0
}

func (record Record) IsDeleted() bool {
	return !record.IsInUse()
}

func (record Record) IsFolder() bool {
	return record.Flags&FlagDirectory != 0
}

// UnknownFlagBits surfaces the two undocumented record flag bits verbatim.
func (record Record) UnknownFlagBits() (bool, bool) {
	return record.Flags&FlagUnknown1 != 0, record.Flags&FlagUnknown2 != 0
}

func (record Record) GetType() string {
	recordType, ok := MFTflags[record.Flags&0x3]
	if ok {
		return recordType
	}
	return "Unknown"
}

func (record Record) GetFnames() map[string]string {
	fnattrs := record.FindFNAttributes()
	fnames := make(map[string]string, len(fnattrs))
	for _, fnattr := range fnattrs {
		fnames[fnattr.GetFileNameType()] = fnattr.Fname
	}
	return fnames
}

func (record Record) HasFilenameExtension(extension string) bool {
	return strings.HasSuffix(record.GetDisplayName(), extension)
}

func (record Record) ShowAttributes(attrType string) {
	fmt.Printf("%d %d %s\n", record.Entry, record.Seq, record.GetType())
	var attributes []Attribute
	if attrType == "any" {
		attributes = record.Attributes
	} else {
		attributes = utils.Filter(record.Attributes, func(attribute Attribute) bool {
			return attribute.FindType() == attrType
		})
	}

	for _, attribute := range attributes {
		attribute.ShowInfo()
	}
}

func (record Record) ShowTimestamps() {
	if fnattr := record.GetDisplayFNAttribute(); fnattr != nil {
		atime, ctime, mtime, mftime := fnattr.GetTimestamps()
		fmt.Printf("FN a %s c %s m %s mftm %s ", atime, ctime, mtime, mftime)
	}
	if siattr := record.FindSIAttribute(); siattr != nil {
		atime, ctime, mtime, mftime := siattr.GetTimestamps()
		fmt.Printf("SI a %s c %s m %s mftm %s ", atime, ctime, mtime, mftime)
	}
}

func (records Records) FilterByExtension(extension string) Records {
	return utils.Filter(records, func(record Record) bool {
		return record.HasFilenameExtension(extension)
	})
}

func (records Records) FilterByExtensions(extensions []string) Records {
	return utils.Filter(records, func(record Record) bool {
		for _, extension := range extensions {
			if record.HasFilenameExtension(extension) {
				return true
			}
		}
		return false
	})
}

func (records Records) FilterByPath(prefix string) Records {
	return utils.Filter(records, func(record Record) bool {
		return strings.HasPrefix(record.FullPath, prefix)
	})
}

func (records Records) FilterOrphans() Records {
	return utils.Filter(records, func(record Record) bool {
		return record.Orphan
	})
}

func (records Records) FilterDeleted() Records {
	return utils.Filter(records, func(record Record) bool {
		return record.Validity == Valid && record.IsDeleted()
	})
}

func (records Records) FilterAnomalous() Records {
	return utils.Filter(records, func(record Record) bool {
		return record.TimestampShift || record.SubsecondZero
	})
}

func (records Records) FilterOutFolders() Records {
	return utils.Filter(records, func(record Record) bool {
		return !record.IsFolder()
	})
}
