package procstatus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// maxPayload bounds the status body read from the server.
const maxPayload = 1 << 20

// Fetcher retrieves the status of one process.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (Status, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) (Status, error)

// Fetch calls f(ctx, id).
func (f FetcherFunc) Fetch(ctx context.Context, id string) (Status, error) {
	return f(ctx, id)
}

// HTTPFetcher reads GET {BaseURL}/process/{id}.
type HTTPFetcher struct {
	BaseURL string
	// Client defaults to http.DefaultClient. The monitor bounds every
	// request by its stall deadline either way.
	Client *http.Client
}

// Fetch implements Fetcher. Every failure, including a non-2xx response or
// a body that is not a status object, is returned as a *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, id string) (Status, error) {
	fail := func(code int, err error) (Status, error) {
		return Status{}, &FetchError{ID: id, StatusCode: code, Err: err}
	}

	endpoint, err := url.JoinPath(f.BaseURL, "process", id)
	if err != nil {
		return fail(0, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return fail(resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, fmt.Errorf("unexpected response %s", resp.Status))
	}

	st, err := ParseStatus(body)
	if err != nil {
		return fail(resp.StatusCode, err)
	}
	return st, nil
}

// ParseStatus decodes a status payload. Both snake_case and camelCase
// field names are accepted. A payload that is not an object, or an
// unfinished process without a string status, is an error.
func ParseStatus(body []byte) (Status, error) {
	if !gjson.ValidBytes(body) {
		return Status{}, errors.New("malformed status payload")
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return Status{}, errors.New("status payload is not an object")
	}

	st := Status{
		IsComplete:    lookup(doc, "is_complete", "isComplete").Bool(),
		WasSuccessful: lookup(doc, "was_successful", "wasSuccessful").Bool(),
	}
	status := lookup(doc, "status")
	switch {
	case status.Type == gjson.String:
		st.Status = status.String()
	case !st.IsComplete:
		return Status{}, errors.New("status payload has no status text")
	}
	return st, nil
}

func lookup(doc gjson.Result, names ...string) gjson.Result {
	for _, name := range names {
		if r := doc.Get(name); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
