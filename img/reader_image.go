package img

import (
	ewfLib "github.com/aarsakian/EWF_Reader/ewf"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// ImageReader serves reads from an EWF (E01) acquisition, so a $MFT carved
// to an evidence container can be analyzed without re-extracting it.
type ImageReader struct {
	PathToEvidenceFiles string
	fd                  ewfLib.EWF_Image
}

func (imgreader *ImageReader) CreateHandler() error {
	filenames := utils.FindEvidenceFiles(imgreader.PathToEvidenceFiles)

	imgreader.fd.ParseEvidence(filenames)
	return nil
}

func (imgreader *ImageReader) CloseHandler() {

}

func (imgreader *ImageReader) ReadFile(physicalOffset int64, length int) []byte {
	return imgreader.fd.RetrieveData(physicalOffset, int64(length))
}

func (imgreader *ImageReader) GetDiskSize() int64 {
	return int64(imgreader.fd.Chunksize) * int64(imgreader.fd.NofChunks)
}
