// Copyright 2015 Google Inc.
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
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a Diagnostic by the nature of the failure that produced
// it, so a caller can decide whether a failure is worth retrying, worth
// surfacing to a user verbatim, or a sign of a library bug.
type Kind int

const (
	// KNone is the zero Kind; no Diagnostic should ever carry it.
	KNone Kind = iota
	// KMemory is an allocation failure. Always fatal to the operation.
	KMemory
	// KSyntax is malformed input in either surface form.
	KSyntax
	// KValidation is well-formed input that violates a YANG rule.
	KValidation
	// KUnresolved is a reference that could not be bound.
	KUnresolved
	// KDenied is legal YANG shape that is semantically rejected.
	KDenied
	// KInternal indicates an invariant violated inside the library itself.
	KInternal
)

func (k Kind) String() string {
	switch k {
	case KMemory:
		return "memory"
	case KSyntax:
		return "syntax"
	case KValidation:
		return "validation"
	case KUnresolved:
		return "unresolved"
	case KDenied:
		return "denied"
	case KInternal:
		return "internal"
	default:
		return "none"
	}
}

// Diagnostic is an error that carries a Kind, a schema-path breadcrumb
// (when known), and a message. The errors this package returns from
// parsing and Process are plain fmt.Errorf values, not Diagnostics; the
// constructors below are not called anywhere in the package.
type Diagnostic struct {
	Kind    Kind
	Path    string
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Path == "" {
		return d.Message
	}
	return d.Path + ": " + d.Message
}

func newDiag(k Kind, path, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Kind: k, Path: path, Message: fmt.Sprintf(format, args...)}
}

func newSyntaxError(path, format string, args ...interface{}) *Diagnostic {
	return newDiag(KSyntax, path, format, args...)
}

func newValidationError(path, format string, args ...interface{}) *Diagnostic {
	return newDiag(KValidation, path, format, args...)
}

func newUnresolvedError(path, format string, args ...interface{}) *Diagnostic {
	return newDiag(KUnresolved, path, format, args...)
}

func newDeniedError(path, format string, args ...interface{}) *Diagnostic {
	return newDiag(KDenied, path, format, args...)
}

func newInternalError(path, format string, args ...interface{}) *Diagnostic {
	return newDiag(KInternal, path, format, args...)
}

// nless returns -1 if a is less than b, 0 if a == b, and 1 if a > b.
// Numeric strings are compared as numbers, everything else lexically.
// This mirrors the ordering used to dedup and sort diagnostics by their
// file:line:col breadcrumb.
func nless(a, b string) int {
	an, ae := strconv.Atoi(a)
	bn, be := strconv.Atoi(b)
	switch {
	case ae == nil && be == nil:
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

type sortableErrors []error

func (s sortableErrors) Len() int      { return len(s) }
func (s sortableErrors) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s sortableErrors) Less(i, j int) bool {
	fi := strings.SplitN(s[i].Error(), ":", 4)
	fj := strings.SplitN(s[j].Error(), ":", 4)
	for x := 0; x < 3 && x < len(fi) && x < len(fj); x++ {
		switch nless(fi[x], fj[x]) {
		case -1:
			return true
		case 1:
			return false
		}
	}
	return false
}

// errorSort sorts errors assuming each begins with a file:line:col
// breadcrumb, sorting line/column numerically, and removes duplicates
// (by identical message text).
func errorSort(errs []error) []error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs
	}
	sorted := make(sortableErrors, len(errs))
	copy(sorted, errs)
	sort.Sort(sorted)
	out := make([]error, 0, len(sorted))
	seen := map[string]bool{}
	for _, err := range sorted {
		if seen[err.Error()] {
			continue
		}
		seen[err.Error()] = true
		out = append(out, err)
	}
	return out
}
