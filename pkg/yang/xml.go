// Copyright 2021 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// This file reads the YIN (XML) encoding of a YANG module, described in
// RFC 7950 section 14, and turns it into the same *Statement tree that the
// compact-notation parser in parse.go produces, so that everything past
// parsing (BuildAST, Process, ToEntry) is shared between the two source
// forms. We use encoding/xml.Decoder purely as a tokenizer: the mapping
// from YIN elements/attributes to statement keyword/argument pairs is
// YANG-specific and is implemented here.

// yinNamespace is the XML namespace every native YIN statement element
// belongs to.
const yinNamespace = "urn:ietf:params:xml:ns:yang:yin:1"

// yinArgAttr maps a statement keyword to the name of the XML attribute
// that carries its argument, for every keyword whose argument is not
// carried in the default "name" attribute. Keywords not present here, but
// that do take an argument, use "name".
var yinArgAttr = map[string]string{
	"augment":          "target-node",
	"deviation":        "target-node",
	"refine":           "target-node",
	"import":           "module",
	"include":          "module",
	"belongs-to":       "module",
	"revision":         "date",
	"revision-date":    "date",
	"namespace":        "uri",
	"when":             "condition",
	"must":             "condition",
	"key":              "value",
	"path":             "value",
	"prefix":           "value",
	"yang-version":     "value",
	"mandatory":        "value",
	"config":           "value",
	"status":           "value",
	"ordered-by":       "value",
	"require-instance": "value",
	"yin-element":      "value",
	"position":         "value",
	"fraction-digits":  "value",
	"min-elements":     "value",
	"max-elements":     "value",
	"default":          "value",
	"value":            "value",
	"error-app-tag":    "value",
	"length":           "value",
	"range":            "value",
	"pattern":          "value",
	"unique":           "tag",
	"if-feature":       "name",
}

// yinTextElementArg is the set of statement keywords whose argument is
// carried in a required child <text> element rather than an attribute.
var yinTextElementArg = map[string]bool{
	"description":  true,
	"reference":    true,
	"organization": true,
	"contact":      true,
}

// looksLikeXML reports whether data's first non-whitespace byte opens an
// XML document, which is enough to distinguish the YIN encoding from the
// compact YANG notation (which never legally starts with '<').
func looksLikeXML(data string) bool {
	trimmed := strings.TrimLeft(data, " \t\r\n")
	return strings.HasPrefix(trimmed, "<")
}

// ParseXML parses the YIN (XML) encoding of a YANG module or submodule,
// returning the same []*Statement shape that Parse returns for the
// compact notation.
func ParseXML(data []byte, path string) ([]*Statement, error) {
	dec := xml.NewDecoder(strings.NewReader(string(data)))

	var root *Statement
	var stack []*Statement
	// uriPrefix tracks the most recently observed xmlns:prefix="uri"
	// binding for a non-YIN namespace, so that an extension statement
	// can be rendered back into the "prefix:name" form the compact
	// parser would have produced for it.
	uriPrefix := map[string]string{}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" {
					uriPrefix[a.Value] = a.Name.Local
				}
			}

			keyword := yinKeyword(t.Name, uriPrefix)
			s := &Statement{Keyword: keyword, file: path}

			if arg, ok := yinArgument(keyword, t.Attr); ok {
				s.HasArgument = true
				s.Argument = arg
			}

			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.statements = append(parent.statements, s)
			} else {
				root = s
			}
			stack = append(stack, s)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%s: unbalanced XML", path)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			if yinTextElementArg[cur.Keyword] || cur.Keyword == "text" || cur.Keyword == "value" && !cur.HasArgument {
				cur.HasArgument = true
				cur.Argument += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%s: empty XML document", path)
	}

	// description/reference/organization/contact/error-message carry
	// their argument in a <text>/<value> child rather than an attribute;
	// hoist it up now that the child has been fully read, and drop the
	// synthetic child so the resulting tree matches what the compact
	// parser would have produced.
	hoistYINTextChildren(root)

	return []*Statement{root}, nil
}

// yinKeyword derives a statement keyword from an XML element name. An
// element in the YIN namespace maps directly to its local name; an
// element in any other namespace is an extension statement, rendered as
// "prefix:local" using the closest in-scope xmlns binding for that
// namespace (or the raw namespace URI if none was observed, which is
// enough for the dispatcher to still treat it as foreign).
func yinKeyword(name xml.Name, uriPrefix map[string]string) string {
	if name.Space == "" || name.Space == yinNamespace {
		return name.Local
	}
	if prefix, ok := uriPrefix[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	return name.Space + ":" + name.Local
}

// yinArgument extracts the argument for a statement with the given
// keyword from its start element's attributes.
func yinArgument(keyword string, attrs []xml.Attr) (string, bool) {
	if yinTextElementArg[keyword] || keyword == "error-message" {
		// Carried in a child element instead; see hoistYINTextChildren.
		return "", false
	}
	attrName := yinArgAttr[keyword]
	if attrName == "" {
		attrName = "name"
	}
	for _, a := range attrs {
		if a.Name.Local == attrName {
			return a.Value, true
		}
	}
	return "", false
}

// hoistYINTextChildren walks s and its descendants, and for every
// description/reference/organization/contact statement (argument in a
// <text> child) or error-message statement (argument in a <value> child)
// moves the child's accumulated character data up onto the parent and
// removes the child from the tree.
func hoistYINTextChildren(s *Statement) {
	var kept []*Statement
	for _, ch := range s.statements {
		if (yinTextElementArg[s.Keyword] && ch.Keyword == "text") ||
			(s.Keyword == "error-message" && ch.Keyword == "value") {
			s.HasArgument = true
			s.Argument = ch.Argument
			continue
		}
		hoistYINTextChildren(ch)
		kept = append(kept, ch)
	}
	s.statements = kept
}
