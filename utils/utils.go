package utils

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/google/uuid"
	textunicode "golang.org/x/text/encoding/unicode"
)

type NoNull string

func (str NoNull) PrintNulls() string {
	var newstr []string
	for _, v := range str {
		if v != 0 {
			newstr = append(newstr, string(v))
		}
	}
	return strings.Join(newstr, "")
}

func Hexify(barray []byte) string {
	return hex.EncodeToString(barray)
}

func Bytereverse(barray []byte) []byte { //work with indexes
	for i, j := 0, len(barray)-1; i < j; i, j = i+1, j-1 {
		barray[i], barray[j] = barray[j], barray[i]
	}
	return barray
}

// Unmarshal decodes a little endian packed struct from data and returns the
// number of bytes consumed. Fields with no on disk representation (pointers,
// slices, bools, strings other than the special cased ones) are skipped.
// A buffer too short for the next field stops the decode with an error
// instead of reading past the end.
func Unmarshal(data []byte, v interface{}) (int, error) {
	idx := 0
	structValPtr := reflect.ValueOf(v)
	structType := reflect.TypeOf(v)
	if structType.Elem().Kind() != reflect.Struct {
		return idx, errors.New("must be a struct")
	}
	need := func(n int, name string) error {
		if idx+n > len(data) {
			return fmt.Errorf("buffer exhausted at field %s need %d have %d", name, n, len(data)-idx)
		}
		return nil
	}
	for i := 0; i < structValPtr.Elem().NumField(); i++ {
		field := structValPtr.Elem().Field(i)
		name := structType.Elem().Field(i).Name
		switch field.Kind() {
		case reflect.String:
			if name == "Signature" {
				if err := need(4, name); err != nil {
					return idx, err
				}
				field.SetString(string(data[idx : idx+4]))
				idx += 4
			} else if name == "Type" {
				if err := need(4, name); err != nil {
					return idx, err
				}
				buf := make([]byte, 4)
				copy(buf, data[idx:idx+4])
				field.SetString(Hexify(Bytereverse(buf)))
				idx += 4
			}
		case reflect.Struct: // WindowsTime
			if err := need(8, name); err != nil {
				return idx, err
			}
			windowsTime := WindowsTime{Stamp: binary.LittleEndian.Uint64(data[idx : idx+8])}
			field.Set(reflect.ValueOf(windowsTime))
			idx += 8
		case reflect.Uint8:
			if err := need(1, name); err != nil {
				return idx, err
			}
			field.SetUint(uint64(data[idx]))
			idx++
		case reflect.Uint16:
			if err := need(2, name); err != nil {
				return idx, err
			}
			field.SetUint(uint64(binary.LittleEndian.Uint16(data[idx : idx+2])))
			idx += 2
		case reflect.Uint32:
			if err := need(4, name); err != nil {
				return idx, err
			}
			field.SetUint(uint64(binary.LittleEndian.Uint32(data[idx : idx+4])))
			idx += 4
		case reflect.Uint64:
			if name == "ParRef" { //48 bit record number, the 16 bit sequence follows
				if err := need(6, name); err != nil {
					return idx, err
				}
				buf := make([]byte, 8)
				copy(buf, data[idx:idx+6])
				field.SetUint(binary.LittleEndian.Uint64(buf) & 0x0000FFFFFFFFFFFF)
				idx += 6
			} else {
				if err := need(8, name); err != nil {
					return idx, err
				}
				field.SetUint(binary.LittleEndian.Uint64(data[idx : idx+8]))
				idx += 8
			}
		case reflect.Int16:
			if err := need(2, name); err != nil {
				return idx, err
			}
			field.SetInt(int64(int16(binary.LittleEndian.Uint16(data[idx : idx+2]))))
			idx += 2
		case reflect.Int64:
			if err := need(8, name); err != nil {
				return idx, err
			}
			field.SetInt(int64(binary.LittleEndian.Uint64(data[idx : idx+8])))
			idx += 8
		case reflect.Array:
			n := field.Len()
			if err := need(n, name); err != nil {
				return idx, err
			}
			reflect.Copy(field, reflect.ValueOf(data[idx:idx+n]))
			idx += n
		}
	}
	return idx, nil
}

var utf16Decoder = textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM)

// DecodeUTF16 decodes a UTF-16LE byte sequence. NTFS stores names as
// arbitrary sequences of 16 bit units, so invalid input never fails the
// decode: units that do not form valid UTF-16 are hex escaped and the clean
// flag is lowered so the caller can attach a note to the owning record.
func DecodeUTF16(data []byte) (string, bool) {
	decoded, err := utf16Decoder.NewDecoder().String(string(data))
	if err == nil && !strings.ContainsRune(decoded, '�') {
		return decoded, true
	}
	return escapeUTF16(data), false
}

// escapeUTF16 renders every unit that cannot stand on its own (unpaired
// surrogates) as %04x and keeps the rest verbatim.
func escapeUTF16(data []byte) string {
	var sb strings.Builder
	for i := 0; i+1 < len(data); i += 2 {
		unit := binary.LittleEndian.Uint16(data[i : i+2])
		if unit >= 0xD800 && unit <= 0xDFFF {
			fmt.Fprintf(&sb, "%%%04x", unit)
		} else {
			sb.WriteRune(rune(unit))
		}
	}
	return sb.String()
}

func Filter[T any](records []T, f func(T) bool) []T {
	var filtered []T
	for _, record := range records {
		if f(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// StringifyGUID renders the on disk GUID layout (first three fields little
// endian) in canonical form.
func StringifyGUID(barray []byte) string {
	if len(barray) < 16 {
		return ""
	}
	buf := make([]byte, 16)
	copy(buf, barray[:16])
	Bytereverse(buf[0:4])
	Bytereverse(buf[4:6])
	Bytereverse(buf[6:8])
	id, err := uuid.FromBytes(buf)
	if err != nil {
		return Hexify(barray[:16])
	}
	return id.String()
}

// FindEvidenceFiles collects the segment files of an EWF acquisition
// (.E01, .E02, ...) that belong to the passed first segment.
func FindEvidenceFiles(pathToEvidence string) []string {
	ext := filepath.Ext(pathToEvidence)
	pattern := strings.TrimSuffix(pathToEvidence, ext) + ".[Ee][0-9][0-9]"
	filenames, err := filepath.Glob(pattern)
	if err != nil || len(filenames) == 0 {
		return []string{pathToEvidence}
	}
	sort.Strings(filenames)
	return filenames
}

func GetEntries(entriesStr string) []string {
	return strings.Split(entriesStr, ",")
}
