package client

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// DefaultChunkSize is the read size used while streaming a file to disk
const DefaultChunkSize = 1024

// Progress receives the bytes of one transfer, as they are written
type Progress interface {
	io.Writer
	Finish() error
}

// ProgressFunc creates the Progress of a transfer. total is -1 when
// the server did not send a content length.
type ProgressFunc func(name string, total int64) Progress

type discardProgress struct{}

func (discardProgress) Write(p []byte) (int, error) { return len(p), nil }
func (discardProgress) Finish() error               { return nil }

// TerminalProgress shows a progress bar on terminals, nothing otherwise
func TerminalProgress(name string, total int64) Progress {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return discardProgress{}
	}
	return progressbar.DefaultBytes(total, name)
}

// Retriever downloads entries of a FolderListing to a local directory
type Retriever struct {
	API         *API
	ChunkSize   int
	NewProgress ProgressFunc
}

// NewRetriever create a new Retriever
func NewRetriever(api *API, chunkSize int) *Retriever {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Retriever{
		API:         api,
		ChunkSize:   chunkSize,
		NewProgress: TerminalProgress,
	}
}

// Retrieve downloads entry from server into outputDir and returns the
// number of bytes written. The local file is truncated first; on error,
// what was already written stays on disk.
func (r *Retriever) Retrieve(ctx context.Context, server string, entry common.FileEntry, outputDir string) (int64, error) {
	filename, err := common.LocalFileName(entry.Name)
	if err != nil {
		return 0, goerr.Wrap(err, "cannot use entry name", goerr.V("id", entry.RemoteID))
	}
	localPath := filepath.Join(outputDir, filename)
	downloadURL := r.API.DownloadURL(server, entry)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return 0, goerr.Wrap(err, "cannot create request", goerr.V("url", downloadURL))
	}
	req.Header.Set("User-Agent", "gofiledl/"+common.ClientVersion)

	resp, err := r.API.client().Do(req)
	if err != nil {
		return 0, goerr.Wrap(err, "download request failed", goerr.V("url", downloadURL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, goerr.New("unexpected download status: "+resp.Status,
			goerr.V("url", downloadURL),
			goerr.V("code", strconv.Itoa(resp.StatusCode)),
		)
	}

	file, err := os.Create(localPath)
	if err != nil {
		return 0, goerr.Wrap(err, "cannot create local file", goerr.V("path", localPath))
	}

	progress := r.progress(filename, resp.ContentLength)
	written, err := r.copy(file, resp.Body, progress)
	// a broken progress display never fails the transfer
	_ = progress.Finish()

	closeErr := file.Close()
	if err != nil {
		return written, goerr.Wrap(err, "transfer interrupted", goerr.V("path", localPath), goerr.V("written", written))
	}
	if closeErr != nil {
		return written, goerr.Wrap(closeErr, "cannot close local file", goerr.V("path", localPath))
	}

	return written, nil
}

func (r *Retriever) progress(name string, total int64) Progress {
	if r.NewProgress == nil {
		return discardProgress{}
	}
	return r.NewProgress(name, total)
}

// copy src to dst using ChunkSize reads, each written chunk is
// also sent to progress (its errors are ignored)
func (r *Retriever) copy(dst io.Writer, src io.Reader, progress Progress) (int64, error) {
	size := r.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	buf := make([]byte, size)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			nw, err := dst.Write(buf[:n])
			written += int64(nw)
			if err != nil {
				return written, err
			}
			_, _ = progress.Write(buf[:n])
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
