//go:build windows

package img

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func newDeviceReader(pathToDisk string) DiskReader {
	return &WindowsReader{a_file: pathToDisk}
}

type DISK_GEOMETRY struct {
	Cylinders         int64
	MediaType         int32
	TracksPerCylinder int32
	SectorsPerTrack   int32
	BytesPerSector    int32
}

type WindowsReader struct {
	a_file string
	fd     windows.Handle
}

func (winreader *WindowsReader) CreateHandler() error {
	file_ptr, err := windows.UTF16PtrFromString(winreader.a_file)
	if err != nil {
		return err
	}
	var templateHandle windows.Handle
	fd, err := windows.CreateFile(file_ptr, windows.FILE_READ_DATA,
		windows.FILE_SHARE_READ, nil,
		windows.OPEN_EXISTING, 0, templateHandle)
	if err != nil {
		return err
	}
	winreader.fd = fd
	return nil
}

func (winreader *WindowsReader) CloseHandler() {
	windows.Close(winreader.fd)
}

func (winreader *WindowsReader) GetDiskSize() int64 {
	const IOCTL_DISK_GET_DRIVE_GEOMETRY = 0x70000
	const nByte_DISK_GEOMETRY = 24
	disk_geometry := DISK_GEOMETRY{}

	var junk *uint32
	var inBuffer *byte
	err := windows.DeviceIoControl(winreader.fd, IOCTL_DISK_GET_DRIVE_GEOMETRY,
		inBuffer, 0, (*byte)(unsafe.Pointer(&disk_geometry)), nByte_DISK_GEOMETRY, junk, nil)
	if err != nil {
		return 0
	}

	return disk_geometry.Cylinders * int64(disk_geometry.TracksPerCylinder) *
		int64(disk_geometry.SectorsPerTrack) * int64(disk_geometry.BytesPerSector)
}

func (winreader *WindowsReader) ReadFile(offset int64, length int) []byte {
	buffer := make([]byte, length)

	lowPart := int32(offset & 0xFFFFFFFF)
	highPart := int32(offset >> 32)
	var bytesRead uint32

	_, err := windows.SetFilePointer(winreader.fd, lowPart, &highPart, windows.FILE_BEGIN)
	if err != nil {
		return nil
	}

	err = windows.ReadFile(winreader.fd, buffer, &bytesRead, nil)
	if err != nil || bytesRead == 0 {
		return nil
	}
	return buffer[:bytesRead]
}
