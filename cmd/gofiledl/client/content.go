package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
)

// ErrMetadataFailed is returned when the folder index can't be fetched
var ErrMetadataFailed = errors.New("metadata fetch failed")

// status marker of a successful index response
const apiStatusOK = "ok"

type apiContentResponse struct {
	Status string          `json:"status"`
	Data   *apiContentData `json:"data"`
}

type apiContentData struct {
	Server   string          `json:"server"`
	Contents json.RawMessage `json:"contents"`
}

// GetContent fetches the index of the folder identified by code. Any
// failure (network, HTTP status, decoding, status not "ok") is returned
// as an error wrapping ErrMetadataFailed.
func (api *API) GetContent(ctx context.Context, code string) (*common.FolderListing, error) {
	var listing *common.FolderListing

	call := api.NewCall("GET", "/getContent", map[string]string{
		"contentId": code,
	})
	call.JSONCallback = func(reader io.Reader, headers http.Header) error {
		var err error
		listing, err = decodeContent(reader)
		return err
	}

	if err := call.Do(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMetadataFailed, err)
	}
	return listing, nil
}

func decodeContent(reader io.Reader) (*common.FolderListing, error) {
	var data apiContentResponse
	dec := json.NewDecoder(reader)
	if err := dec.Decode(&data); err != nil {
		return nil, goerr.Wrap(err, "cannot decode index response")
	}

	if data.Status != apiStatusOK {
		return nil, goerr.New("index status is '"+data.Status+"'", goerr.V("status", data.Status))
	}

	if data.Data == nil || data.Data.Server == "" {
		return nil, goerr.New("no server in index response")
	}

	// contents is a JSON object; gjson walks it in document order,
	// a map would not
	contents := gjson.ParseBytes(data.Data.Contents)
	if !contents.IsObject() {
		return nil, goerr.New("no contents in index response")
	}

	listing := &common.FolderListing{
		ServerHost: data.Data.Server,
		Entries:    make([]common.FileEntry, 0),
	}

	var entryErr error
	contents.ForEach(func(key, value gjson.Result) bool {
		entry, err := decodeEntry(key.String(), value)
		if err != nil {
			entryErr = err
			return false
		}
		listing.Entries = append(listing.Entries, entry)
		return true
	})
	if entryErr != nil {
		return nil, entryErr
	}

	return listing, nil
}

func decodeEntry(id string, value gjson.Result) (common.FileEntry, error) {
	entry := common.FileEntry{
		RemoteID: id,
		Type:     value.Get("type").String(),
	}

	name := value.Get("name")
	if name.Type != gjson.String || name.String() == "" {
		return entry, goerr.New("entry without name", goerr.V("id", id))
	}
	entry.Name = name.String()

	size := value.Get("size")
	switch {
	case size.Type == gjson.Number:
		entry.Size = size.Int()
	case entry.IsFolder():
		// folders have no size
	default:
		return entry, goerr.New("entry without size", goerr.V("id", id), goerr.V("name", entry.Name))
	}

	return entry, nil
}
