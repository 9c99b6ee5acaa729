package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// rewriteTransport sends every request to target, keeping the original
// Host header, and records requested URLs
type rewriteTransport struct {
	target *url.URL

	mu        sync.Mutex
	requested []string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requested = append(t.requested, req.URL.String())
	t.mu.Unlock()

	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	out.Host = req.URL.Host
	return http.DefaultTransport.RoundTrip(out)
}

func (t *rewriteTransport) Requested() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.requested...)
}

func newTestAPI(t *testing.T, handler http.Handler) (*API, *rewriteTransport) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	target, err := url.Parse(server.URL)
	require.NoError(t, err)

	transport := &rewriteTransport{target: target}
	api := NewAPI(DefaultAPIURL, DefaultToken, DefaultWebsiteToken, DefaultFileHost)
	api.HTTPClient = &http.Client{Transport: transport}
	return api, transport
}

type fakeFile struct {
	id      string
	name    string
	content []byte
	folder  bool
}

// fakeGofile serves the index and the files of one folder
type fakeGofile struct {
	status     string
	server     string
	files      []fakeFile
	failOn     string // file id aborted in the middle of the transfer
	noLength   bool   // send files without Content-Length
	indexBody  string // raw index body, overrides the generated one
	indexCalls atomic.Int32
}

func (f *fakeGofile) indexJSON() string {
	if f.indexBody != "" {
		return f.indexBody
	}
	if f.status != "ok" {
		return fmt.Sprintf(`{"status":%q}`, f.status)
	}

	// built by hand, so key order is the order of f.files
	var contents []string
	for _, file := range f.files {
		name, _ := json.Marshal(file.name)
		if file.folder {
			contents = append(contents, fmt.Sprintf(`%q:{"name":%s,"type":"folder"}`, file.id, name))
			continue
		}
		contents = append(contents, fmt.Sprintf(`%q:{"name":%s,"size":%d,"type":"file"}`, file.id, name, len(file.content)))
	}
	return fmt.Sprintf(`{"status":"ok","data":{"server":%q,"contents":{%s}}}`, f.server, strings.Join(contents, ","))
}

func (f *fakeGofile) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Host == "api.gofile.io" && r.URL.Path == "/getContent" {
		f.indexCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, f.indexJSON())
		return
	}

	if r.Host != f.server+".gofile.io" || !strings.HasPrefix(r.URL.Path, "/download/") {
		http.NotFound(w, r)
		return
	}

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/download/"), "/", 2)
	if len(parts) != 2 {
		http.NotFound(w, r)
		return
	}

	for _, file := range f.files {
		if file.id != parts[0] || file.name != parts[1] {
			continue
		}

		w.Header().Set("Content-Type", "application/octet-stream")

		if file.id == f.failOn {
			w.Header().Set("Content-Length", strconv.Itoa(len(file.content)))
			w.WriteHeader(http.StatusOK)
			w.Write(file.content[:len(file.content)/2])
			w.(http.Flusher).Flush()
			panic(http.ErrAbortHandler)
		}

		if f.noLength {
			w.WriteHeader(http.StatusOK)
			w.(http.Flusher).Flush()
			w.Write(file.content)
			return
		}

		w.Header().Set("Content-Length", strconv.Itoa(len(file.content)))
		w.Write(file.content)
		return
	}
	http.NotFound(w, r)
}

// recordProgress stores what a Retriever reports
type recordProgress struct {
	mu     sync.Mutex
	totals map[string]int64
	bytes  map[string]int64
	done   map[string]bool
}

func newRecordProgress() *recordProgress {
	return &recordProgress{
		totals: make(map[string]int64),
		bytes:  make(map[string]int64),
		done:   make(map[string]bool),
	}
}

type recordTransfer struct {
	rec  *recordProgress
	name string
}

func (p *recordProgress) New(name string, total int64) Progress {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.totals[name] = total
	return &recordTransfer{rec: p, name: name}
}

func (tr *recordTransfer) Write(b []byte) (int, error) {
	tr.rec.mu.Lock()
	defer tr.rec.mu.Unlock()
	tr.rec.bytes[tr.name] += int64(len(b))
	return len(b), nil
}

func (tr *recordTransfer) Finish() error {
	tr.rec.mu.Lock()
	defer tr.rec.mu.Unlock()
	tr.rec.done[tr.name] = true
	return nil
}

func pattern(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}
