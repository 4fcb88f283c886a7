package img

import (
	"path"
	"strings"
)

// DiskReader hands fixed length reads at arbitrary offsets to the scanner.
// Implementations cover flat $MFT extracts, EWF and VMDK evidence
// containers and raw devices.
type DiskReader interface {
	CreateHandler() error
	CloseHandler()
	ReadFile(offset int64, length int) []byte
	GetDiskSize() int64
}

// GetHandler selects a reader by the source path. Evidence containers are
// recognized by extension, device paths by their platform prefix, anything
// else is treated as a flat file.
func GetHandler(pathToSource string) (DiskReader, error) {
	var dr DiskReader

	extension := strings.ToLower(path.Ext(pathToSource))
	switch {
	case extension == ".e01":
		dr = &ImageReader{PathToEvidenceFiles: pathToSource}
	case extension == ".vmdk":
		dr = &VMDKReader{PathToEvidenceFiles: pathToSource}
	case strings.HasPrefix(pathToSource, `\\.\`) || strings.HasPrefix(pathToSource, "/dev/"):
		dr = newDeviceReader(pathToSource)
	default:
		dr = &FileReader{PathToFile: pathToSource}
	}

	if err := dr.CreateHandler(); err != nil {
		return nil, err
	}
	return dr, nil
}
