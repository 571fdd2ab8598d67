// Package source provides the term origins: gettext catalogs on disk,
// a local directory of CSL locale documents, and a GitHub-hosted locale
// repository. All origins produce term sets through one interface, so
// the diff engine never knows where a locale came from.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/POBrien333/csl-translation-status/cslxml"
	"github.com/POBrien333/csl-translation-status/pofile"
	"github.com/POBrien333/csl-translation-status/term"
)

// Source enumerates candidate locales and fetches their term sets.
type Source interface {
	// Locales returns the candidate locale codes, deduplicated and
	// sorted, with the baseline excluded.
	Locales() ([]string, error)
	// Baseline returns the reference (English) term set. A failure
	// here is fatal for the whole run.
	Baseline() (*term.Set, error)
	// Fetch returns one candidate locale's term set. A failure means
	// the locale is skipped, not that the run aborts.
	Fetch(code string) (*term.Set, error)
}

// localeFile matches locale document names and captures the code.
var localeFile = regexp.MustCompile(`^locales-([A-Za-z0-9_-]+)\.xml$`)

// ---------------------------------------------------------------------------
// PO catalog origin
// ---------------------------------------------------------------------------

// POSource finds gettext catalogs by glob. The locale code is the
// directory component holding LC_MESSAGES, following the usual
// locales/<code>/LC_MESSAGES/messages.po layout.
type POSource struct {
	Glob string
}

// NewPO creates a catalog source for the given glob pattern.
func NewPO(glob string) *POSource {
	return &POSource{Glob: glob}
}

// catalogs maps locale codes to catalog paths.
func (s *POSource) catalogs() (map[string]string, error) {
	paths, err := filepath.Glob(s.Glob)
	if err != nil {
		return nil, fmt.Errorf("bad catalog glob %q: %w", s.Glob, err)
	}
	byCode := make(map[string]string, len(paths))
	for _, p := range paths {
		// locales/<code>/LC_MESSAGES/messages.po; for a flat po/<code>.po
		// layout the filename stem carries the code instead.
		code := filepath.Base(filepath.Dir(filepath.Dir(p)))
		if code == "." || code == string(filepath.Separator) {
			base := filepath.Base(p)
			code = strings.TrimSuffix(base, filepath.Ext(base))
		}
		byCode[code] = p
	}
	return byCode, nil
}

func (s *POSource) Locales() ([]string, error) {
	byCode, err := s.catalogs()
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Baseline builds the English reference from the catalogs' msgids:
// each msgid is its own English text. Catalogs are merged in sorted
// code order; in practice every catalog shares the same template, so
// the union preserves the template's entry order.
func (s *POSource) Baseline() (*term.Set, error) {
	byCode, err := s.catalogs()
	if err != nil {
		return nil, err
	}
	if len(byCode) == 0 {
		return nil, fmt.Errorf("no catalogs match %q", s.Glob)
	}

	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	baseline := term.NewSet()
	for _, code := range codes {
		f, err := pofile.ParseFile(byCode[code])
		if err != nil {
			continue
		}
		ref := f.Reference()
		for _, key := range ref.Keys() {
			if _, ok := baseline.Get(key); !ok {
				v, _ := ref.Get(key)
				baseline.Put(key, v)
			}
		}
	}
	if baseline.Len() == 0 {
		return nil, fmt.Errorf("no parseable catalogs match %q", s.Glob)
	}
	return baseline, nil
}

func (s *POSource) Fetch(code string) (*term.Set, error) {
	byCode, err := s.catalogs()
	if err != nil {
		return nil, err
	}
	path, ok := byCode[code]
	if !ok {
		return nil, fmt.Errorf("no catalog for locale %q", code)
	}
	f, err := pofile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f.Translated(), nil
}

// ---------------------------------------------------------------------------
// Local locale-document origin
// ---------------------------------------------------------------------------

// XMLDirSource reads locales-<code>.xml documents from one directory.
type XMLDirSource struct {
	Dir          string
	BaselineCode string
}

// NewXMLDir creates a local locale-document source.
func NewXMLDir(dir, baseline string) *XMLDirSource {
	return &XMLDirSource{Dir: dir, BaselineCode: baseline}
}

func (s *XMLDirSource) Locales() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.Dir, err)
	}
	seen := make(map[string]bool)
	var codes []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := localeFile.FindStringSubmatch(e.Name())
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

func (s *XMLDirSource) Baseline() (*term.Set, error) {
	return s.Fetch(s.BaselineCode)
}

func (s *XMLDirSource) Fetch(code string) (*term.Set, error) {
	path := filepath.Join(s.Dir, "locales-"+code+".xml")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	set, err := cslxml.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return set, nil
}
