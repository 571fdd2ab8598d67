// Package htmlreport renders the static report tree: an overview page,
// one detail page per locale, and the stylesheet they link. Every run
// regenerates all files; paths are deterministic (index.html,
// locales/<code>.html).
package htmlreport

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/POBrien333/csl-translation-status/diff"
)

const overviewTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Translation Coverage Report</title>
  <link rel="stylesheet" href="style.css">
</head>
<body>
  <h1>Translation Coverage Overview</h1>
  <p>Generated from the locale sources. Last updated: {{.Updated}}.</p>
  <table>
    <tr>
      <th>Locale</th>
      <th>Language</th>
      <th>Completion %</th>
      <th>Untranslated</th>
      <th>Total Terms</th>
      <th>Details</th>
    </tr>
{{- range .Results}}
    <tr>
      <td>{{.Code}}</td>
      <td>{{.DisplayName}}</td>
      <td>{{printf "%.2f" .Percentage}}%</td>
      <td>{{.Untranslated}}</td>
      <td>{{.Total}}</td>
      <td><a href="locales/{{.Code}}.html">View</a></td>
    </tr>
{{- end}}
  </table>
  <p class="updated">Total locales analyzed: {{len .Results}}</p>
</body>
</html>
`

const localeTmpl = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>{{.DisplayName}} Translation Report</title>
  <link rel="stylesheet" href="../style.css">
</head>
<body>
  <h1>{{.DisplayName}} ({{.Code}}) Translation Report</h1>
  <p>Showing {{.Untranslated}} untranslated terms out of {{.Total}} total terms.
  Last updated: {{.Updated}}.</p>
  <ul>
{{- range .Terms}}
    <li><code>{{.Key.Name}}</code>{{if .Key.Form}} <em>({{.Key.Form}})</em>{{end}}: {{.Value.Canonical}}</li>
{{- end}}
  </ul>
  <p><a href="../index.html">Back to Overview</a></p>
</body>
</html>
`

const styleCSS = `body {
  font-family: sans-serif;
  margin: 2rem auto;
  max-width: 60rem;
  padding: 0 1rem;
}
table {
  border-collapse: collapse;
  width: 100%;
}
th, td {
  border: 1px solid #ccc;
  padding: 0.4rem 0.6rem;
  text-align: left;
}
th {
  background: #f0f0f0;
}
.updated {
  color: #666;
  font-size: 0.9rem;
}
`

var (
	overview = template.Must(template.New("overview").Parse(overviewTmpl))
	locale   = template.Must(template.New("locale").Parse(localeTmpl))
)

type overviewData struct {
	Updated string
	Results []diff.Result
}

type localeData struct {
	Code         string
	DisplayName  string
	Untranslated int
	Total        int
	Updated      string
	Terms        []diff.Term
}

// dateFormat matches the original report's "Month DD, YYYY".
const dateFormat = "January 02, 2006"

// Render writes the full report tree under dir.
func Render(dir string, results []diff.Result, now time.Time) error {
	localesDir := filepath.Join(dir, "locales")
	if err := os.MkdirAll(localesDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "style.css"), []byte(styleCSS), 0o644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	updated := now.Format(dateFormat)

	if err := writeTemplate(filepath.Join(dir, "index.html"), overview, overviewData{
		Updated: updated,
		Results: results,
	}); err != nil {
		return err
	}

	for _, r := range results {
		data := localeData{
			Code:         r.Code,
			DisplayName:  r.DisplayName,
			Untranslated: r.Untranslated,
			Total:        r.Total(),
			Updated:      updated,
			Terms:        r.UntranslatedTerms,
		}
		path := filepath.Join(localesDir, r.Code+".html")
		if err := writeTemplate(path, locale, data); err != nil {
			return err
		}
	}
	return nil
}

func writeTemplate(path string, tmpl *template.Template, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}
