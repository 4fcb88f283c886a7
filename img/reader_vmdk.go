package img

import (
	"path/filepath"

	extent "github.com/aarsakian/VMDK_Reader/extent"
)

// VMDKReader serves reads from a VMDK sparse image.
type VMDKReader struct {
	PathToEvidenceFiles string
	fd                  extent.Extents
}

func (imgreader *VMDKReader) CreateHandler() error {
	imgreader.fd = extent.ProcessExtents(imgreader.PathToEvidenceFiles)
	return nil
}

func (imgreader *VMDKReader) CloseHandler() {

}

func (imgreader *VMDKReader) ReadFile(physicalOffset int64, length int) []byte {
	return imgreader.fd.RetrieveData(filepath.Dir(imgreader.PathToEvidenceFiles), physicalOffset, int64(length))
}

func (imgreader *VMDKReader) GetDiskSize() int64 {
	return imgreader.fd.GetHDSize()
}
