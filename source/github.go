package source

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/POBrien333/csl-translation-status/cslxml"
	"github.com/POBrien333/csl-translation-status/term"
)

// defaultAPIBase is the GitHub REST API endpoint.
const defaultAPIBase = "https://api.github.com"

// contentEntry is one file in a contents-API directory listing.
type contentEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// GitHubSource lists locale documents in a repository directory via the
// contents API and fetches them through their download URLs. There is
// no retry or pagination handling; the locales directory is flat and
// small, and a failed locale is simply skipped by the caller.
type GitHubSource struct {
	Owner        string
	Repo         string
	Path         string
	Ref          string
	BaselineCode string

	// Token is sent as a bearer token when set, which raises the
	// unauthenticated rate limit.
	Token string

	// APIBase overrides the API endpoint, used by tests.
	APIBase string

	client  *http.Client
	entries map[string]contentEntry // filename -> entry, filled by list
}

// NewGitHub creates a remote locale-document source.
func NewGitHub(owner, repo, path, ref, baseline, token string) *GitHubSource {
	return &GitHubSource{
		Owner:        owner,
		Repo:         repo,
		Path:         path,
		Ref:          ref,
		BaselineCode: baseline,
		Token:        token,
		client:       &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *GitHubSource) get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp, nil
}

// list fetches the directory listing once and caches it for Fetch.
func (s *GitHubSource) list() (map[string]contentEntry, error) {
	if s.entries != nil {
		return s.entries, nil
	}

	base := s.APIBase
	if base == "" {
		base = defaultAPIBase
	}
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s", base, s.Owner, s.Repo, s.Path, s.Ref)

	resp, err := s.get(url)
	if err != nil {
		return nil, fmt.Errorf("listing locale repository: %w", err)
	}
	defer resp.Body.Close()

	var listing []contentEntry
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decoding repository listing: %w", err)
	}

	s.entries = make(map[string]contentEntry, len(listing))
	for _, e := range listing {
		if e.Type != "" && e.Type != "file" {
			continue
		}
		s.entries[e.Name] = e
	}
	return s.entries, nil
}

func (s *GitHubSource) Locales() ([]string, error) {
	entries, err := s.list()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var codes []string
	for name := range entries {
		m := localeFile.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		code := m[1]
		if code == s.BaselineCode || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func (s *GitHubSource) Baseline() (*term.Set, error) {
	return s.Fetch(s.BaselineCode)
}

func (s *GitHubSource) Fetch(code string) (*term.Set, error) {
	entries, err := s.list()
	if err != nil {
		return nil, err
	}
	entry, ok := entries["locales-"+code+".xml"]
	if !ok {
		return nil, fmt.Errorf("locale %q not present in repository listing", code)
	}
	if entry.DownloadURL == "" {
		return nil, fmt.Errorf("locale %q has no download URL", code)
	}

	resp, err := s.get(entry.DownloadURL)
	if err != nil {
		return nil, fmt.Errorf("fetching locale %q: %w", code, err)
	}
	defer resp.Body.Close()

	set, err := cslxml.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", code, err)
	}
	return set, nil
}
