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
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// This file translates YANG "pattern" statement arguments, which are XSD
// regular expressions (https://www.w3.org/TR/xmlschema11-2/#regexs), into
// the RE2 syntax used by Go's regexp package, and caches the compiled
// result so that repeated default/leaf validation does not re-translate
// and re-compile the same pattern over and over.

var (
	patternCacheMu sync.Mutex
	patternCache   = map[string]*regexp.Regexp{}
)

// xsdCharClassRepl maps the XSD multi-character escapes that RE2 does not
// understand to an RE2-compatible equivalent.
var xsdCharClassRepl = strings.NewReplacer(
	`\i`, `[a-zA-Z_:]`,
	`\I`, `[^a-zA-Z_:]`,
	`\c`, `[a-zA-Z0-9_.:-]`,
	`\C`, `[^a-zA-Z0-9_.:-]`,
)

// translatePattern converts an XSD regular expression into RE2 syntax,
// anchoring it so that it matches the entire string the way XSD
// patterns always do.
func translatePattern(xsd string) (string, error) {
	s := xsdCharClassRepl.Replace(xsd)
	// XSD has no concept of Go's RE2 \A \z; the pattern already implicitly
	// matches the whole string, which we make explicit with ^(?:...)$.
	return "^(?:" + s + ")$", nil
}

// compilePattern compiles an XSD pattern argument into a *regexp.Regexp,
// caching compiled patterns across calls.
func compilePattern(xsd string) (*regexp.Regexp, error) {
	patternCacheMu.Lock()
	defer patternCacheMu.Unlock()

	if re, ok := patternCache[xsd]; ok {
		return re, nil
	}

	translated, err := translatePattern(xsd)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %v", xsd, err)
	}
	patternCache[xsd] = re
	return re, nil
}

// matchesPatterns reports whether val satisfies every pattern in patterns
// (YANG ANDs multiple pattern statements together per RFC 7950 9.4.6).
func matchesPatterns(patterns []string, val string) error {
	for _, p := range patterns {
		re, err := compilePattern(p)
		if err != nil {
			return err
		}
		if !re.MatchString(val) {
			return fmt.Errorf("value %q does not match pattern %q", val, p)
		}
	}
	return nil
}

// matchesPOSIXPatterns reports whether val satisfies every POSIX ERE
// pattern in patterns, compiled with regexp/syntax's POSIX flag semantics
// via regexp.CompilePOSIX.
func matchesPOSIXPatterns(patterns []string, val string) error {
	for _, p := range patterns {
		re, err := regexp.CompilePOSIX("^(?:" + p + ")$")
		if err != nil {
			return fmt.Errorf("invalid posix-pattern %q: %v", p, err)
		}
		if !re.MatchString(val) {
			return fmt.Errorf("value %q does not match posix-pattern %q", val, p)
		}
	}
	return nil
}
