package client

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/m-mizutani/goerr/v2"
)

// ErrDownloadFailed is returned when an entry can't be downloaded, all
// remaining entries are then abandoned
var ErrDownloadFailed = errors.New("download failed")

// Downloader runs the whole sequence: index, then each file in order,
// then the output directory listing
type Downloader struct {
	API       *API
	Retriever *Retriever
	Log       *Log
	Filter    *Filter      // optional
	Mirror    *SwiftMirror // optional
}

// Report is the result of a successful Run
type Report struct {
	Listing    *common.FolderListing
	Downloaded []common.FileEntry
	Files      []LocalFile
}

// NewDownloader create a new Downloader
func NewDownloader(api *API, retriever *Retriever, log *Log) *Downloader {
	return &Downloader{
		API:       api,
		Retriever: retriever,
		Log:       log,
	}
}

// SelectEntries returns downloadable entries of listing: folders are
// skipped, and so are entries rejected by filter (if not nil)
func SelectEntries(listing *common.FolderListing, filter *Filter, log *Log) ([]common.FileEntry, error) {
	entries := make([]common.FileEntry, 0, len(listing.Entries))
	for _, entry := range listing.Entries {
		if entry.IsFolder() {
			log.Warningf("skipping folder '%s' (sub-folders are not downloaded)", entry.Name)
			continue
		}
		if filter != nil {
			match, err := filter.Match(entry)
			if err != nil {
				return nil, err
			}
			if !match {
				log.Tracef("'%s' excluded by filter", entry.Name)
				continue
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Run downloads all files of folder code into outputDir. The first
// failure stops the run, files already downloaded are left in place.
func (d *Downloader) Run(ctx context.Context, code string, outputDir string) (*Report, error) {
	d.Log.Infof("code: %s", code)
	d.Log.Infof("output: %s", outputDir)

	if err := common.CreateDirIfNeeded(outputDir); err != nil {
		return nil, goerr.Wrap(err, "cannot create output directory", goerr.V("path", outputDir))
	}

	stop := d.Log.Spin("requesting folder index…")
	listing, err := d.API.GetContent(ctx, code)
	stop()
	if err != nil {
		return nil, err
	}
	d.Log.Successf("server: %s", listing.ServerHost)

	entries, err := SelectEntries(listing, d.Filter, d.Log)
	if err != nil {
		return nil, err
	}
	d.Log.Infof("found %d files", len(entries))

	report := &Report{
		Listing:    listing,
		Downloaded: make([]common.FileEntry, 0, len(entries)),
	}

	for idx, entry := range entries {
		d.Log.Infof("[%d/%d] downloading %s (%s)", idx+1, len(entries), entry.Name, humanSize(entry.Size))
		d.Log.Tracef("URL: %s", d.API.DownloadURL(listing.ServerHost, entry))

		written, err := d.Retriever.Retrieve(ctx, listing.ServerHost, entry, outputDir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDownloadFailed, entry.Name, err)
		}

		if d.Mirror != nil {
			filename, _ := common.LocalFileName(entry.Name)
			objectName := code + "/" + filename
			err = d.Mirror.Push(ctx, filepath.Join(outputDir, filename), objectName)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrDownloadFailed, entry.Name, err)
			}
			d.Log.Tracef("mirrored to %s/%s", d.Mirror.Config.Container, objectName)
		}

		d.Log.Successf("saved %s (%s)", entry.Name, humanSize(written))
		report.Downloaded = append(report.Downloaded, entry)
	}

	d.Log.Success("all downloads completed")

	report.Files, err = ListDirectory(outputDir)
	if err != nil {
		return nil, goerr.Wrap(err, "cannot list output directory", goerr.V("path", outputDir))
	}

	d.Log.Info("downloaded files:")
	RenderFileTable(d.Log.Writer(), report.Files)

	return report, nil
}
