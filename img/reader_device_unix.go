//go:build !windows

package img

import (
	"golang.org/x/sys/unix"
)

func newDeviceReader(pathToDisk string) DiskReader {
	return &UnixReader{pathToDisk: pathToDisk}
}

type UnixReader struct {
	pathToDisk string
	fd         int
}

func (unixreader *UnixReader) CreateHandler() error {
	fd, err := unix.Open(unixreader.pathToDisk, unix.O_RDONLY, 0)
	if err != nil {
		return err
	}
	unixreader.fd = fd
	return nil
}

func (unixreader *UnixReader) ReadFile(offset int64, length int) []byte {
	buffer := make([]byte, length)
	if _, err := unix.Seek(unixreader.fd, offset, unix.SEEK_SET); err != nil {
		return nil
	}
	n, err := unix.Read(unixreader.fd, buffer)
	if err != nil || n == 0 {
		return nil
	}
	return buffer[:n]
}

func (unixreader *UnixReader) CloseHandler() {
	unix.Close(unixreader.fd)
}

func (unixreader *UnixReader) GetDiskSize() int64 {
	var stat unix.Stat_t
	if err := unix.Fstat(unixreader.fd, &stat); err != nil {
		return 0
	}
	return stat.Size
}
