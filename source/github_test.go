package source

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/POBrien333/csl-translation-status/term"
)

// newLocaleServer serves a contents-API listing plus raw documents for
// the given code -> document map.
func newLocaleServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/repos/csl/locales/contents/", func(w http.ResponseWriter, r *http.Request) {
		var listing []contentEntry
		for code := range docs {
			name := "locales-" + code + ".xml"
			listing = append(listing, contentEntry{
				Name:        name,
				Type:        "file",
				DownloadURL: server.URL + "/raw/" + name,
			})
		}
		listing = append(listing, contentEntry{Name: "README.md", Type: "file"})
		listing = append(listing, contentEntry{Name: "fixtures", Type: "dir"})
		json.NewEncoder(w).Encode(listing)
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		for code, doc := range docs {
			if r.URL.Path == "/raw/locales-"+code+".xml" {
				fmt.Fprint(w, doc)
				return
			}
		}
		http.NotFound(w, r)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestGitHub(serverURL string) *GitHubSource {
	src := NewGitHub("csl", "locales", "", "master", "en-US", "")
	src.APIBase = serverURL
	return src
}

func TestGitHubSourceListing(t *testing.T) {
	server := newLocaleServer(t, map[string]string{
		"en-US": enUSDoc,
		"de-DE": deDEDoc,
		"fr-FR": `<locale><terms><term name="page">p.</term></terms></locale>`,
	})
	src := newTestGitHub(server.URL)

	codes, err := src.Locales()
	if err != nil {
		t.Fatalf("Locales error: %v", err)
	}
	if !reflect.DeepEqual(codes, []string{"de-DE", "fr-FR"}) {
		t.Fatalf("Locales = %v (sorted, baseline and non-locale files excluded)", codes)
	}
}

func TestGitHubSourceFetch(t *testing.T) {
	server := newLocaleServer(t, map[string]string{
		"en-US": enUSDoc,
		"de-DE": deDEDoc,
	})
	src := newTestGitHub(server.URL)

	baseline, err := src.Baseline()
	if err != nil {
		t.Fatalf("Baseline error: %v", err)
	}
	if v, _ := baseline.Get(term.Key{Name: "page"}); v.Text() != "p." {
		t.Fatalf("baseline page = %q", v.Text())
	}

	de, err := src.Fetch("de-DE")
	if err != nil {
		t.Fatalf("Fetch(de-DE) error: %v", err)
	}
	if v, _ := de.Get(term.Key{Name: "page"}); v.Text() != "S." {
		t.Fatalf("de-DE page = %q", v.Text())
	}

	if _, err := src.Fetch("zz-ZZ"); err == nil {
		t.Fatal("Fetch of unlisted locale succeeded")
	}
}

func TestGitHubSourceListingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	src := newTestGitHub(server.URL)
	if _, err := src.Locales(); err == nil {
		t.Fatal("listing failure not reported")
	}
}

func TestGitHubSourceSendsToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]contentEntry{})
	}))
	defer server.Close()

	src := NewGitHub("csl", "locales", "", "master", "en-US", "secret")
	src.APIBase = server.URL
	if _, err := src.Locales(); err != nil {
		t.Fatalf("Locales error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("Authorization = %q, want Bearer secret", gotAuth)
	}
}
