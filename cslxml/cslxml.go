// Package cslxml parses CSL locale documents (locales-<code>.xml), the
// structured-document term origin.
//
// Schema, as far as the report cares:
//
//	<locale xml:lang="de-DE">
//	  <terms>
//	    <term name="accessed">abgerufen</term>
//	    <term name="ordinal-01" form="long">
//	      <single>st</single>
//	      <multiple>nd</multiple>
//	    </term>
//	  </terms>
//	</locale>
package cslxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/POBrien333/csl-translation-status/term"
)

type document struct {
	XMLName xml.Name  `xml:"locale"`
	Terms   []element `xml:"terms>term"`
}

type element struct {
	Name string `xml:"name,attr"`
	Form string `xml:"form,attr"`
	// Pointers so an absent child is distinguishable from an empty one.
	Single   *string `xml:"single"`
	Multiple *string `xml:"multiple"`
	Text     string  `xml:",chardata"`
}

// Parse reads one locale document and returns its terms in document
// order. A term with both <single> and <multiple> children becomes a
// pair value; anything else uses the element's own trimmed text.
// Unparseable input returns an error so the caller can log and skip
// the locale.
func Parse(r io.Reader) (*term.Set, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding locale document: %w", err)
	}

	set := term.NewSet()
	for _, el := range doc.Terms {
		if el.Name == "" {
			continue
		}
		key := term.Key{Name: el.Name, Form: el.Form}
		if el.Single != nil && el.Multiple != nil {
			set.Put(key, term.Pair(strings.TrimSpace(*el.Single), strings.TrimSpace(*el.Multiple)))
		} else {
			set.Put(key, term.Plain(strings.TrimSpace(el.Text)))
		}
	}
	return set, nil
}
