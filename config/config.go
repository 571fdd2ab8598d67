// Package config — .cslstatus.yaml configuration file support.
//
// When a .cslstatus.yaml exists in the project root it configures the
// term origin, the baseline locale, the output directory, and display
// name overrides. Without one, the CLI runs on flag defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Origin types.
const (
	OriginPO     = "po"     // gettext catalogs found by glob
	OriginXMLDir = "xmldir" // local directory of locales-<code>.xml
	OriginGitHub = "github" // remote repository listing
)

// File is the top-level .cslstatus.yaml structure.
type File struct {
	// Origin selects the term source: "po", "xmldir" or "github".
	Origin string `yaml:"origin"`
	// Baseline is the reference locale code (default "en-US").
	Baseline string `yaml:"baseline,omitempty"`
	// OutputDir is where the HTML tree is written (default "docs").
	OutputDir string `yaml:"output_dir,omitempty"`

	// POGlob locates catalogs for the po origin
	// (default "locales/*/LC_MESSAGES/messages.po").
	POGlob string `yaml:"po_glob,omitempty"`

	// XMLDir is the local locale-document directory for the xmldir origin.
	XMLDir string `yaml:"xml_dir,omitempty"`

	// GitHub configures the github origin.
	GitHub GitHub `yaml:"github,omitempty"`

	// DisplayNames overrides locale display names, keyed by locale code.
	DisplayNames map[string]string `yaml:"display_names,omitempty"`
}

// GitHub identifies the repository directory holding locale documents.
type GitHub struct {
	Owner string `yaml:"owner,omitempty"`
	Repo  string `yaml:"repo,omitempty"`
	// Path is the directory within the repository ("" for the root).
	Path string `yaml:"path,omitempty"`
	// Ref is the branch or tag to list (default "master").
	Ref string `yaml:"ref,omitempty"`
}

// Name is the default config file name.
const Name = ".cslstatus.yaml"

// Default returns the configuration used when no file is present:
// the CSL locales repository on GitHub, reported into docs/.
func Default() *File {
	f := &File{Origin: OriginGitHub}
	f.applyDefaults()
	return f
}

// Load reads and validates .cslstatus.yaml from the given directory.
// Returns Default() if no file exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, Name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if f.Origin == "" {
		f.Origin = OriginGitHub
	}
	switch f.Origin {
	case OriginPO, OriginXMLDir, OriginGitHub:
	default:
		return nil, fmt.Errorf("%s: unknown origin %q (valid: po, xmldir, github)", path, f.Origin)
	}
	if f.Origin == OriginXMLDir && f.XMLDir == "" {
		return nil, fmt.Errorf("%s: origin xmldir requires xml_dir", path)
	}

	f.applyDefaults()
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.Baseline == "" {
		f.Baseline = "en-US"
	}
	if f.OutputDir == "" {
		f.OutputDir = "docs"
	}
	if f.POGlob == "" {
		f.POGlob = filepath.Join("locales", "*", "LC_MESSAGES", "messages.po")
	}
	if f.GitHub.Owner == "" {
		f.GitHub.Owner = "citation-style-language"
	}
	if f.GitHub.Repo == "" {
		f.GitHub.Repo = "locales"
	}
	if f.GitHub.Ref == "" {
		f.GitHub.Ref = "master"
	}
}
