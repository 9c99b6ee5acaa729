package common

// FileEntryTypeFolder is the entry type used by the index for sub-folders
const FileEntryTypeFolder = "folder"

// FolderListing is the content of a remote folder, as reported by the index
type FolderListing struct {
	ServerHost string
	Entries    []FileEntry
}

// FileEntry is a remote file of a FolderListing
type FileEntry struct {
	RemoteID string
	Name     string
	Size     int64
	Type     string
}

// IsFolder returns true if the entry is a sub-folder (nothing to download)
func (entry FileEntry) IsFolder() bool {
	return entry.Type == FileEntryTypeFolder
}

// TotalSize returns the sum of all entry sizes
func (listing *FolderListing) TotalSize() int64 {
	var total int64
	for _, entry := range listing.Entries {
		total += entry.Size
	}
	return total
}
