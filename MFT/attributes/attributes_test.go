package attributes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fnBody(parRef uint64, parSeq uint16, name string) []byte {
	body := make([]byte, 66+2*len(name))
	binary.LittleEndian.PutUint64(body[0:8], parRef|uint64(parSeq)<<48)
	binary.LittleEndian.PutUint64(body[8:16], 130000000000000000)
	binary.LittleEndian.PutUint64(body[40:48], 2048) //allocated
	binary.LittleEndian.PutUint64(body[48:56], 2000) //real
	body[64] = uint8(len(name))
	body[65] = 1
	for i, r := range name {
		binary.LittleEndian.PutUint16(body[66+2*i:], uint16(r))
	}
	return body
}

func TestFNAttributeParse(t *testing.T) {
	fnattr := new(FNAttribute)
	require.NoError(t, fnattr.Parse(fnBody(5, 3, "file.txt")))

	assert.Equal(t, uint64(5), fnattr.ParRef)
	assert.Equal(t, uint16(3), fnattr.ParSeq)
	assert.Equal(t, "file.txt", fnattr.Fname)
	assert.False(t, fnattr.NameUnclean)
	assert.Equal(t, uint64(2000), fnattr.RealFsize)
	assert.Equal(t, "Win32", fnattr.GetFileNameType())
}

func TestFNAttributeTruncated(t *testing.T) {
	fnattr := new(FNAttribute)
	assert.Error(t, fnattr.Parse(make([]byte, 40)))
}

func TestFNAttributeNameOverrun(t *testing.T) {
	body := fnBody(5, 3, "x")
	body[64] = 200 //claims a name far past the body
	fnattr := new(FNAttribute)
	assert.Error(t, fnattr.Parse(body))
}

func TestFNAttributeDirtyNameEscaped(t *testing.T) {
	body := fnBody(5, 3, "ab")
	binary.LittleEndian.PutUint16(body[66:68], 0xDC00) //lone low surrogate
	fnattr := new(FNAttribute)
	require.NoError(t, fnattr.Parse(body))
	assert.True(t, fnattr.NameUnclean)
	assert.Contains(t, fnattr.Fname, "%dc00")
}

func siBody(size int) []byte {
	body := make([]byte, size)
	binary.LittleEndian.PutUint64(body[0:8], 131000000000000000)
	binary.LittleEndian.PutUint64(body[8:16], 131000000000000001)
	binary.LittleEndian.PutUint64(body[16:24], 131000000000000002)
	binary.LittleEndian.PutUint64(body[24:32], 131000000000000003)
	return body
}

func TestSIAttributeParse(t *testing.T) {
	body := siBody(72)
	binary.LittleEndian.PutUint32(body[48:52], 1001) //owner id
	siattr := new(SIAttribute)
	require.NoError(t, siattr.Parse(body))
	assert.Equal(t, uint64(131000000000000000), siattr.Crtime.Stamp)
	assert.Equal(t, uint64(131000000000000003), siattr.Atime.Stamp)
	assert.Equal(t, uint32(1001), siattr.OwnID)
}

func TestSIAttributeShortForm(t *testing.T) {
	// NTFS before 3.0 stores 48 byte bodies without owner/quota/usn
	siattr := new(SIAttribute)
	require.NoError(t, siattr.Parse(siBody(48)))
	assert.Equal(t, uint64(131000000000000000), siattr.Crtime.Stamp)
	assert.Zero(t, siattr.OwnID)
}

func TestSIAttributeTooShort(t *testing.T) {
	siattr := new(SIAttribute)
	assert.Error(t, siattr.Parse(siBody(40)))
}

func TestAttributeHeaderParse(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:4], 0x80)
	binary.LittleEndian.PutUint32(data[4:8], 120)
	data[8] = 1 //non resident
	var attrHeader AttributeHeader
	require.NoError(t, attrHeader.Parse(data))
	assert.Equal(t, "DATA", attrHeader.GetType())
	assert.Equal(t, uint32(120), attrHeader.AttrLen)
	assert.True(t, attrHeader.IsNoNResident())
	assert.True(t, attrHeader.IsKnown())
	assert.False(t, attrHeader.IsLast())
}

func TestAttributeHeaderLast(t *testing.T) {
	data := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	var attrHeader AttributeHeader
	require.NoError(t, attrHeader.Parse(data))
	assert.True(t, attrHeader.IsLast())
}

func TestAttributeHeaderUnknownType(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:4], 0x1234)
	var attrHeader AttributeHeader
	require.NoError(t, attrHeader.Parse(data))
	assert.False(t, attrHeader.IsKnown())
	assert.Contains(t, attrHeader.GetType(), "Unknown")
}

func TestObjectIDParse(t *testing.T) {
	body := make([]byte, 16)
	body[0] = 0x01
	objattr := new(ObjectID)
	require.NoError(t, objattr.Parse(body))
	assert.Equal(t, "00000001-0000-0000-0000-000000000000", objattr.ObjIDString())
	assert.Equal(t, "", objattr.OrigVolIDString())
}

func TestObjectIDTooShort(t *testing.T) {
	objattr := new(ObjectID)
	assert.Error(t, objattr.Parse(make([]byte, 8)))
}

func TestVolumeInfoParse(t *testing.T) {
	body := make([]byte, 12)
	body[8] = 3
	body[9] = 1
	volInfo := new(VolumeInfo)
	require.NoError(t, volInfo.Parse(body))
	assert.Equal(t, uint8(3), volInfo.MajVer)
	assert.Equal(t, uint8(1), volInfo.MinVer)
}

func TestAttributeListParse(t *testing.T) {
	entry := make([]byte, 32)
	binary.LittleEndian.PutUint32(entry[0:4], 0x80) //data attribute entry
	binary.LittleEndian.PutUint16(entry[4:6], 32)
	entry[6] = 2  //name length in units
	entry[7] = 26 //name offset
	binary.LittleEndian.PutUint64(entry[16:24], 77)
	binary.LittleEndian.PutUint16(entry[26:], uint16('a'))
	binary.LittleEndian.PutUint16(entry[28:], uint16('b'))

	attrList := new(AttributeListEntries)
	require.NoError(t, attrList.Parse(entry))
	require.Len(t, attrList.Entries, 1)
	assert.Equal(t, uint64(77), attrList.Entries[0].ParRef)
	assert.Equal(t, "ab", string(attrList.Entries[0].Name))
}

func TestAttributeListZeroLengthEntry(t *testing.T) {
	attrList := new(AttributeListEntries)
	assert.Error(t, attrList.Parse(make([]byte, 32)))
}
