package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoFinalizedTerm is returned when the term index has no finalized term.
var ErrNoFinalizedTerm = errors.New("no finalized term")

// Term is one entry of the upstream term index. The index is assumed to be
// ordered oldest to newest; nothing upstream guarantees it.
type Term struct {
	Term      string `json:"term"`
	Finalized bool   `json:"finalized"`
}

// CourseClient reads static term and course metadata published by the course crawler.
type CourseClient struct {
	TermsURL   string // term index document
	CatalogURL string // catalog document, one %s replaced by the term
	HTTP       *http.Client
	Timeout    time.Duration
}

// NewCourseClient returns a client using its own http.Client.
func NewCourseClient(termsURL, catalogURL string, timeout time.Duration) *CourseClient {
	return &CourseClient{
		TermsURL:   termsURL,
		CatalogURL: catalogURL,
		HTTP:       &http.Client{},
		Timeout:    timeout,
	}
}

// LatestFinalizedTerm scans from the end of terms and returns the first finalized one.
func LatestFinalizedTerm(terms []Term) (Term, bool) {
	for i := len(terms) - 1; i >= 0; i-- {
		if terms[i].Finalized {
			return terms[i], true
		}
	}
	return Term{}, false
}

// ListCourses returns the course identifiers of the most recent finalized term.
func (c *CourseClient) ListCourses(ctx context.Context) ([]string, error) {
	if c.TermsURL == "" || !strings.Contains(c.CatalogURL, "%s") {
		return nil, fmt.Errorf("course endpoints not configured")
	}

	var index json.RawMessage
	if err := c.getJSON(ctx, c.TermsURL, &index); err != nil {
		return nil, fmt.Errorf("fetch term index: %w", err)
	}
	terms, err := decodeTerms(index)
	if err != nil {
		return nil, err
	}

	term, ok := LatestFinalizedTerm(terms)
	if !ok {
		return nil, ErrNoFinalizedTerm
	}

	var catalog struct {
		Courses []json.RawMessage `json:"courses"`
	}
	catalogURL := strings.Replace(c.CatalogURL, "%s", url.PathEscape(term.Term), 1)
	if err := c.getJSON(ctx, catalogURL, &catalog); err != nil {
		return nil, fmt.Errorf("fetch catalog for %s: %w", term.Term, err)
	}
	if catalog.Courses == nil {
		return nil, fmt.Errorf("catalog for %s has no courses field", term.Term)
	}

	courses := make([]string, 0, len(catalog.Courses))
	for _, raw := range catalog.Courses {
		id, err := courseID(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog for %s: %w", term.Term, err)
		}
		courses = append(courses, id)
	}
	return courses, nil
}

// decodeTerms accepts either a bare array or {"terms": [...]}.
func decodeTerms(raw json.RawMessage) ([]Term, error) {
	var terms []Term
	if err := json.Unmarshal(raw, &terms); err == nil {
		return terms, nil
	}

	var wrapped struct {
		Terms []Term `json:"terms"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil || wrapped.Terms == nil {
		return nil, fmt.Errorf("unexpected term index shape")
	}
	return wrapped.Terms, nil
}

// courseID accepts "CS 101" or {"id": "CS 101"}.
func courseID(raw json.RawMessage) (string, error) {
	var id *string
	if err := json.Unmarshal(raw, &id); err == nil {
		if id == nil || *id == "" {
			return "", fmt.Errorf("empty course entry %s", string(raw))
		}
		return *id, nil
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.ID == "" {
		return "", fmt.Errorf("unexpected course entry %s", string(raw))
	}
	return obj.ID, nil
}

func (c *CourseClient) getJSON(ctx context.Context, target string, out interface{}) error {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("upstream returned %s", resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
