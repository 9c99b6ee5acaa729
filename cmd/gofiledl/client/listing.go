package client

import (
	"io"
	"os"
	"path/filepath"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/c2h5oh/datasize"
	"github.com/olekukonko/tablewriter"
)

// LocalFile is a file found in a local directory
type LocalFile struct {
	Name string
	Size int64
}

// ListDirectory returns the files of dir (sub-directories excluded),
// sorted by name. It reads the filesystem, so files not written by
// this run are listed too.
func ListDirectory(dir string) ([]LocalFile, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]LocalFile, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		// Info() does not follow symlinks, Stat() does
		stat, err := os.Stat(filepath.Join(dir, dirEntry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, LocalFile{
			Name: dirEntry.Name(),
			Size: stat.Size(),
		})
	}
	return files, nil
}

func humanSize(size int64) string {
	return (datasize.ByteSize(size) * datasize.B).HR()
}

func renderTable(out io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(data)
	table.Render()
}

// RenderFileTable writes files as a Name/Size table
func RenderFileTable(out io.Writer, files []LocalFile) {
	strData := [][]string{}
	for _, file := range files {
		strData = append(strData, []string{
			file.Name,
			humanSize(file.Size),
		})
	}
	renderTable(out, []string{"Name", "Size"}, strData)
}

// RenderEntryTable writes entries of a listing as an ID/Name/Size table
func RenderEntryTable(out io.Writer, entries []common.FileEntry) {
	strData := [][]string{}
	for _, entry := range entries {
		size := humanSize(entry.Size)
		if entry.IsFolder() {
			size = "(folder)"
		}
		strData = append(strData, []string{
			entry.RemoteID,
			entry.Name,
			size,
		})
	}
	renderTable(out, []string{"ID", "Name", "Size"}, strData)
}
