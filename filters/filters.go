package filters

import "github.com/rowingdude/analyzeMFT-sub000/MFT"

type Filter interface {
	Execute(records MFT.Records) MFT.Records
}

type PathFilter struct {
	NamePath string
}

func (pathFilter PathFilter) Execute(records MFT.Records) MFT.Records {
	return records.FilterByPath(pathFilter.NamePath)
}

type ExtensionsFilter struct {
	Extensions []string
}

func (extensionsFilter ExtensionsFilter) Execute(records MFT.Records) MFT.Records {
	return records.FilterByExtensions(extensionsFilter.Extensions)
}

type OrphansFilter struct {
	Include bool
}

func (orphansFilter OrphansFilter) Execute(records MFT.Records) MFT.Records {
	if orphansFilter.Include {
		return records.FilterOrphans()
	}
	return records
}

type DeletedFilter struct {
	Include bool
}

func (deletedFilter DeletedFilter) Execute(records MFT.Records) MFT.Records {
	if deletedFilter.Include {
		return records.FilterDeleted()
	}
	return records
}

// AnomaliesFilter keeps only records with a raised timestomp indicator.
type AnomaliesFilter struct {
	Include bool
}

func (anomaliesFilter AnomaliesFilter) Execute(records MFT.Records) MFT.Records {
	if anomaliesFilter.Include {
		return records.FilterAnomalous()
	}
	return records
}

type FoldersFilter struct {
	Include bool
}

func (foldersFilter FoldersFilter) Execute(records MFT.Records) MFT.Records {
	if !foldersFilter.Include {
		return records.FilterOutFolders()
	}
	return records
}
