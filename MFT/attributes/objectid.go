package attributes

import (
	"fmt"

	"github.com/rowingdude/analyzeMFT-sub000/utils"
)

// ObjectID carries up to four GUIDs. Only the object id itself is mandatory
// on disk, the birth ids are present when the link tracking service filled
// them in.
type ObjectID struct {
	ObjID     [16]byte //object id
	OrigVolID [16]byte //birth volume id
	OrigObjID [16]byte //birth object id
	OrigDomID [16]byte //birth domain id
	Header    *AttributeHeader
}

func (objectId *ObjectID) SetHeader(header *AttributeHeader) {
	objectId.Header = header
}

func (objectId ObjectID) GetHeader() AttributeHeader {
	return *objectId.Header
}

func (objectId *ObjectID) Parse(data []byte) error {
	if len(data) < 16 {
		return fmt.Errorf("object id attribute truncated, %d bytes", len(data))
	}
	copy(objectId.ObjID[:], data[0:16])
	if len(data) >= 32 {
		copy(objectId.OrigVolID[:], data[16:32])
	}
	if len(data) >= 48 {
		copy(objectId.OrigObjID[:], data[32:48])
	}
	if len(data) >= 64 {
		copy(objectId.OrigDomID[:], data[48:64])
	}
	return nil
}

func (objectId ObjectID) ObjIDString() string {
	return utils.StringifyGUID(objectId.ObjID[:])
}

func (objectId ObjectID) OrigVolIDString() string {
	if objectId.OrigVolID == [16]byte{} {
		return ""
	}
	return utils.StringifyGUID(objectId.OrigVolID[:])
}

func (objectId ObjectID) OrigObjIDString() string {
	if objectId.OrigObjID == [16]byte{} {
		return ""
	}
	return utils.StringifyGUID(objectId.OrigObjID[:])
}

func (objectId ObjectID) OrigDomIDString() string {
	if objectId.OrigDomID == [16]byte{} {
		return ""
	}
	return utils.StringifyGUID(objectId.OrigDomID[:])
}

func (objectId ObjectID) FindType() string {
	return objectId.Header.GetType()
}

func (objectId ObjectID) IsNoNResident() bool {
	return objectId.Header.IsNoNResident()
}

func (objectId ObjectID) ShowInfo() {
	fmt.Printf("type %s object id %s\n", objectId.FindType(), objectId.ObjIDString())
}
