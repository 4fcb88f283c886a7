package img

import (
	"io"
	"os"
)

// FileReader serves a flat $MFT extract from the local filesystem.
type FileReader struct {
	PathToFile string
	fd         *os.File
	size       int64
}

func (filereader *FileReader) CreateHandler() error {
	fd, err := os.Open(filereader.PathToFile)
	if err != nil {
		return err
	}
	finfo, err := fd.Stat()
	if err != nil {
		fd.Close()
		return err
	}
	filereader.fd = fd
	filereader.size = finfo.Size()
	return nil
}

func (filereader *FileReader) CloseHandler() {
	if filereader.fd != nil {
		filereader.fd.Close()
	}
}

// ReadFile returns the bytes at offset, shortened at end of source. A nil
// return means nothing is left to read.
func (filereader *FileReader) ReadFile(offset int64, length int) []byte {
	buffer := make([]byte, length)
	n, err := filereader.fd.ReadAt(buffer, offset)
	if err != nil && err != io.EOF {
		return nil
	}
	if n == 0 {
		return nil
	}
	return buffer[:n]
}

func (filereader *FileReader) GetDiskSize() int64 {
	return filereader.size
}
