package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream serves a term index and per-term catalogs.
func upstream(t *testing.T, index string, catalogs map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/terms.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(index))
	})
	mux.HandleFunc("/catalog/", func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Path[len("/catalog/"):]
		body, ok := catalogs[term]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server) *CourseClient {
	return NewCourseClient(srv.URL+"/terms.json", srv.URL+"/catalog/%s", 2*time.Second)
}

func TestLatestFinalizedTerm(t *testing.T) {
	term, ok := LatestFinalizedTerm([]Term{{Term: "A", Finalized: true}, {Term: "B", Finalized: false}})
	require.True(t, ok)
	assert.Equal(t, "A", term.Term)

	term, ok = LatestFinalizedTerm([]Term{{Term: "A", Finalized: true}, {Term: "B", Finalized: true}})
	require.True(t, ok)
	assert.Equal(t, "B", term.Term)

	_, ok = LatestFinalizedTerm([]Term{{Term: "A"}})
	assert.False(t, ok)

	_, ok = LatestFinalizedTerm(nil)
	assert.False(t, ok)
}

func TestListCoursesSkipsUnfinalizedLatestTerm(t *testing.T) {
	srv := upstream(t,
		`[{"term":"A","finalized":true},{"term":"B","finalized":false}]`,
		map[string]string{
			"A": `{"courses":["CS 101","MATH 221"]}`,
			"B": `{"courses":["WRONG 000"]}`,
		})

	courses, err := newClient(srv).ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS 101", "MATH 221"}, courses)
}

func TestListCoursesAcceptsWrappedIndexAndObjectEntries(t *testing.T) {
	srv := upstream(t,
		`{"terms":[{"term":"FA24","finalized":true}]}`,
		map[string]string{"FA24": `{"courses":[{"id":"CS 101"},"ENGL 100"]}`})

	courses, err := newClient(srv).ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS 101", "ENGL 100"}, courses)
}

func TestListCoursesPercentEncodedCatalogTemplate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/terms.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"term":"FA24","finalized":true}]`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/static%20data/FA24/courses.json" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"courses":["CS 101"]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewCourseClient(srv.URL+"/terms.json", srv.URL+"/static%20data/%s/courses.json", 2*time.Second)
	courses, err := client.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"CS 101"}, courses)
}

func TestListCoursesFailures(t *testing.T) {
	cases := []struct {
		name     string
		index    string
		catalogs map[string]string
	}{
		{"no finalized term", `[{"term":"A","finalized":false}]`, nil},
		{"malformed index", `{"oops":true}`, nil},
		{"catalog missing", `[{"term":"A","finalized":true}]`, map[string]string{}},
		{"catalog wrong shape", `[{"term":"A","finalized":true}]`, map[string]string{"A": `{"classes":[]}`}},
		{"bad course entry", `[{"term":"A","finalized":true}]`, map[string]string{"A": `{"courses":[42]}`}},
		{"null course entry", `[{"term":"A","finalized":true}]`, map[string]string{"A": `{"courses":["CS 101",null]}`}},
		{"empty course entry", `[{"term":"A","finalized":true}]`, map[string]string{"A": `{"courses":[""]}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := upstream(t, tc.index, tc.catalogs)
			_, err := newClient(srv).ListCourses(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestListCoursesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client := newClient(srv)
	srv.Close()

	_, err := client.ListCourses(context.Background())
	assert.Error(t, err)

	_, err = NewCourseClient("", "", time.Second).ListCourses(context.Background())
	assert.Error(t, err)
}
