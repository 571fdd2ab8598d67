package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/POBrien333/csl-translation-status/config"
	"github.com/POBrien333/csl-translation-status/source"
)

func TestBuildSourceSelectsOrigin(t *testing.T) {
	cases := []struct {
		origin string
		want   string
	}{
		{origin: config.OriginPO, want: "*source.POSource"},
		{origin: config.OriginXMLDir, want: "*source.XMLDirSource"},
		{origin: config.OriginGitHub, want: "*source.GitHubSource"},
	}
	for _, tc := range cases {
		cfg := config.Default()
		cfg.Origin = tc.origin
		cfg.XMLDir = "locales"
		src, err := buildSource(cfg)
		if err != nil {
			t.Fatalf("buildSource(%s) error: %v", tc.origin, err)
		}
		var got string
		switch src.(type) {
		case *source.POSource:
			got = "*source.POSource"
		case *source.XMLDirSource:
			got = "*source.XMLDirSource"
		case *source.GitHubSource:
			got = "*source.GitHubSource"
		}
		if got != tc.want {
			t.Fatalf("buildSource(%s) = %s, want %s", tc.origin, got, tc.want)
		}
	}

	cfg := config.Default()
	cfg.Origin = "bogus"
	if _, err := buildSource(cfg); err == nil {
		t.Fatal("bogus origin accepted")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRunReportEndToEnd(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "xml")

	writeFile(t, filepath.Join(root, config.Name),
		"origin: xmldir\nxml_dir: "+localesDir+"\n")
	writeFile(t, filepath.Join(localesDir, "locales-en-US.xml"),
		`<locale><terms>
		  <term name="page">p.</term>
		  <term name="volume">vol.</term>
		</terms></locale>`)
	// Fully translated locale.
	writeFile(t, filepath.Join(localesDir, "locales-de-DE.xml"),
		`<locale><terms>
		  <term name="page">S.</term>
		  <term name="volume">Bd.</term>
		</terms></locale>`)
	// Half translated locale.
	writeFile(t, filepath.Join(localesDir, "locales-fr-FR.xml"),
		`<locale><terms>
		  <term name="page">p.</term>
		  <term name="volume">tome</term>
		</terms></locale>`)
	// Malformed locale, must be skipped without failing the run.
	writeFile(t, filepath.Join(localesDir, "locales-xx-XX.xml"), "<locale><terms>")

	outDir := filepath.Join(root, "docs")
	if err := runReport(root, outDir); err != nil {
		t.Fatalf("runReport error: %v", err)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("overview not written: %v", err)
	}
	html := string(index)

	if !strings.Contains(html, "Total locales analyzed: 2") {
		t.Fatalf("expected 2 locales in overview (malformed skipped):\n%s", html)
	}
	// de-DE (100%) must sort above fr-FR (50%).
	if de, fr := strings.Index(html, "de-DE"), strings.Index(html, "fr-FR"); de < 0 || fr < 0 || de > fr {
		t.Fatalf("overview rows not sorted by completion: de at %d, fr at %d", de, fr)
	}

	for _, code := range []string{"de-DE", "fr-FR"} {
		if _, err := os.Stat(filepath.Join(outDir, "locales", code+".html")); err != nil {
			t.Fatalf("detail page for %s missing: %v", code, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "locales", "xx-XX.html")); err == nil {
		t.Fatal("skipped locale still produced a detail page")
	}

	detail, err := os.ReadFile(filepath.Join(outDir, "locales", "fr-FR.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(detail), "Showing 1 untranslated terms out of 2 total terms") {
		t.Fatalf("fr-FR detail page wrong:\n%s", detail)
	}
}

func TestRunReportMissingBaselineIsFatal(t *testing.T) {
	root := t.TempDir()
	localesDir := filepath.Join(root, "xml")
	writeFile(t, filepath.Join(root, config.Name),
		"origin: xmldir\nxml_dir: "+localesDir+"\n")
	writeFile(t, filepath.Join(localesDir, "locales-de-DE.xml"),
		`<locale><terms><term name="page">S.</term></terms></locale>`)

	outDir := filepath.Join(root, "docs")
	if err := runReport(root, outDir); err == nil {
		t.Fatal("missing baseline did not abort the run")
	}
	if _, err := os.Stat(filepath.Join(outDir, "index.html")); err == nil {
		t.Fatal("output written despite missing baseline")
	}
}
