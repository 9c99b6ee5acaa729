package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/OnitiFR/gofiledl/common"
	"github.com/m-mizutani/goerr/v2"
)

// Default values for the index API
const (
	DefaultAPIURL       = "https://api.gofile.io"
	DefaultToken        = "guest"
	DefaultWebsiteToken = "12345"
	DefaultFileHost     = "gofile.io"
)

// API describes the basic elements to call the index API
type API struct {
	ServerURL    string
	Token        string
	WebsiteToken string
	FileHost     string
	HTTPClient   *http.Client
}

// APICall describes a call to the API
type APICall struct {
	api          *API
	Method       string
	Path         string
	Args         map[string]string
	JSONCallback func(io.Reader, http.Header) error
}

// NewAPI create a new API instance
func NewAPI(server string, token string, websiteToken string, fileHost string) *API {
	return &API{
		ServerURL:    server,
		Token:        token,
		WebsiteToken: websiteToken,
		FileHost:     fileHost,
	}
}

// NewCall create a new APICall
func (api *API) NewCall(method string, path string, args map[string]string) *APICall {
	return &APICall{
		api:    api,
		Method: method,
		Path:   path,
		Args:   args,
	}
}

// DownloadURL returns the URL of an entry on the given file server
func (api *API) DownloadURL(server string, entry common.FileEntry) string {
	return fmt.Sprintf("https://%s.%s/download/%s/%s",
		server,
		api.FileHost,
		url.PathEscape(entry.RemoteID),
		url.PathEscape(entry.Name),
	)
}

func (api *API) client() *http.Client {
	if api.HTTPClient != nil {
		return api.HTTPClient
	}
	return http.DefaultClient
}

// Do the actual API call
func (call *APICall) Do(ctx context.Context) error {
	method := strings.ToUpper(call.Method)
	if method != http.MethodGet {
		return goerr.New("apicall does not support this method yet", goerr.V("method", method))
	}

	apiURL, err := common.CleanURL(call.api.ServerURL + "/" + call.Path)
	if err != nil {
		return goerr.Wrap(err, "invalid API URL", goerr.V("url", call.api.ServerURL))
	}

	data := url.Values{}
	for key, val := range call.Args {
		data.Add(key, val)
	}
	data.Add("token", call.api.Token)
	data.Add("websiteToken", call.api.WebsiteToken)

	finalURL := apiURL + "?" + data.Encode()
	req, err := http.NewRequestWithContext(ctx, method, finalURL, nil)
	if err != nil {
		return goerr.Wrap(err, "cannot create request", goerr.V("url", finalURL))
	}
	req.Header.Set("User-Agent", "gofiledl/"+common.ClientVersion)

	resp, err := call.api.client().Do(req)
	if err != nil {
		return goerr.Wrap(err, "API request failed", goerr.V("path", call.Path))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return goerr.New("unexpected API status: "+resp.Status,
			goerr.V("path", call.Path),
			goerr.V("body", string(body)),
		)
	}

	// the body decides: the index is sometimes served without a JSON
	// content type
	if call.JSONCallback == nil {
		return goerr.New("no JSON callback defined", goerr.V("path", call.Path))
	}
	return call.JSONCallback(resp.Body, resp.Header)
}
