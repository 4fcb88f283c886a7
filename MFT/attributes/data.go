package attributes

import "fmt"

// DATA keeps resident content verbatim. Non resident $DATA is recorded by
// its VCN range only, data runs are never followed.
type DATA struct {
	Content []byte
	Header  *AttributeHeader
}

func (data *DATA) SetHeader(header *AttributeHeader) {
	data.Header = header
}

func (data DATA) GetHeader() AttributeHeader {
	return *data.Header
}

func (data *DATA) Parse(content []byte) error {
	data.Content = content
	return nil
}

func (data DATA) FindType() string {
	return data.Header.GetType()
}

func (data DATA) IsNoNResident() bool {
	return data.Header.IsNoNResident()
}

func (data DATA) ShowInfo() {
	if data.IsNoNResident() {
		nonres := data.Header.ATRrecordNoNResident
		fmt.Printf("type %s non resident start vcn %d last vcn %d\n",
			data.FindType(), nonres.StartVcn, nonres.LastVcn)
	} else {
		fmt.Printf("type %s resident %d bytes\n", data.FindType(), len(data.Content))
	}
}
