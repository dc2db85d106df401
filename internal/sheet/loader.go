// Package sheet loads job postings from a Google Sheets gviz endpoint.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/fr4nk3nst1ner/jobads/internal/client"
	"github.com/fr4nk3nst1ner/jobads/internal/models"
	"github.com/pterm/pterm"
)

// DefaultSheetID is the public job sheet the board reads from.
const DefaultSheetID = "1_n6qYGMfMG2xNVkCzbr71Jjl4NfTSyV0aaas_tXgGIg"

// UserMessage is shown in place of the board when loading fails.
const UserMessage = "❌ Failed to load jobs."

// ErrLoadFailure wraps every fetch, read and parse failure.
var ErrLoadFailure = errors.New("failed to load jobs")

// SheetURL returns the gviz JSON endpoint for a sheet id.
func SheetURL(sheetID string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/gviz/tq?tqx=out:json", sheetID)
}

// Loader fetches and parses the job sheet.
type Loader struct {
	URL    string
	Client *http.Client
	Logger *pterm.Logger

	// Progress draws a download bar on ProgressOut (stderr when nil).
	Progress    bool
	ProgressOut io.Writer
}

// NewLoader constructs a loader. A nil client gets the package default and
// a nil logger discards output.
func NewLoader(url string, httpClient *http.Client, logger *pterm.Logger) *Loader {
	if httpClient == nil {
		httpClient = client.CreateHTTPClient(client.Options{})
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &Loader{URL: url, Client: httpClient, Logger: logger}
}

// Load performs one GET of the sheet and returns its rows as records.
// Any failure is reported as ErrLoadFailure; there are no retries.
func (l *Loader) Load(ctx context.Context) ([]models.JobRecord, error) {
	l.Logger.Debug("fetching job sheet", l.Logger.Args("url", l.URL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrLoadFailure, err)
	}
	for key, values := range client.GetHeaders() {
		req.Header[key] = values
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch sheet: %v", ErrLoadFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: received non-200 status code: %d", ErrLoadFailure, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if l.Progress {
		bar := l.startBar(resp.ContentLength)
		defer bar.Finish()
		body = bar.NewProxyReader(resp.Body)
	}

	raw, err := client.ReadResponseBody(resp, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrLoadFailure, err)
	}
	l.Logger.Debug("sheet downloaded", l.Logger.Args("bytes", len(raw)))

	records, err := Parse(string(raw))
	if err != nil {
		return nil, err
	}
	l.Logger.Debug("sheet parsed", l.Logger.Args("rows", len(records)))
	return records, nil
}

func (l *Loader) startBar(size int64) *pb.ProgressBar {
	if size < 0 {
		size = 0
	}
	out := l.ProgressOut
	if out == nil {
		out = os.Stderr
	}
	bar := pb.New64(size)
	bar.SetTemplate(pb.Simple)
	bar.Set(pb.Bytes, true)
	bar.SetWriter(out)
	return bar.Start()
}
