// Package httpfallback resolves a task executor's registration by asking
// the executor's own admin HTTP endpoint directly, for use when the
// cluster's push-based membership feed has no entry for a hostname the
// cancellation pipeline needs to resolve. Grounded on
// snapshot/store/http_store.go's pester-backed HTTP client.
package httpfallback

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"

	"github.com/scootdev/dispatch/dispatch"
)

// DefaultTries bounds total attempts across pester's exponential backoff,
// matching the teacher's HTTP store client.
const DefaultTries = 7

// MakePesterClient returns an *http.Client-compatible client that retries
// with exponential backoff, logging each retry.
func MakePesterClient() *pester.Client {
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = DefaultTries
	client.LogHook = func(e pester.ErrEntry) {
		log.Errorf("httpfallback: retrying after failed attempt: %+v", e)
	}
	return client
}

// Client is the subset of *http.Client (or *pester.Client) this package
// needs, so tests can substitute a fake.
type Client interface {
	Get(url string) (*http.Response, error)
}

// Fallback queries hostname's admin HTTP endpoint for its current
// registration when no cached or push-fed entry exists.
type Fallback struct {
	client Client
	path   string
}

// NewFallback builds a Fallback that GETs path (e.g. "/registration") on
// each candidate hostname.
func NewFallback(client Client, path string) *Fallback {
	return &Fallback{client: client, path: path}
}

// Resolve fetches hostname's registration over HTTP.
func (f *Fallback) Resolve(hostname string) (dispatch.TaskExecutorRegistration, error) {
	url := fmt.Sprintf("http://%s%s", hostname, f.path)
	resp, err := f.client.Get(url)
	if err != nil {
		return dispatch.TaskExecutorRegistration{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return dispatch.TaskExecutorRegistration{}, fmt.Errorf("httpfallback: %s returned %s", url, resp.Status)
	}
	var reg dispatch.TaskExecutorRegistration
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		return dispatch.TaskExecutorRegistration{}, err
	}
	return reg, nil
}
