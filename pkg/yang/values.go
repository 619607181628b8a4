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
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// This file implements Store, Duplicate and Compare: the value-handling
// primitives that let a caller take the lexical (string) representation
// of a leaf value, as found in a "default" statement or instance data,
// and turn it into a typed Go value that has already been checked against
// the type's range, length and pattern restrictions.

// Store parses text as a value of type t, validating it against t's
// range, length, pattern and enumeration restrictions along the way. The
// concrete type of the returned value depends on t.Kind:
//
//	Yint8..Yint64, Yuint8..Yuint64     Number
//	Ydecimal64                         Number
//	Ystring, Yenum, Yidentityref,
//	Yleafref, YinstanceIdentifier      string
//	Ybool                              bool
//	Yempty                             nil
//	Ybinary                            []byte
//	Ybits                              []string
//	Yunion                             whatever the matching member returns
func Store(t *YangType, text string) (interface{}, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot store value against a nil type")
	}
	switch t.Kind {
	case Yint8, Yint16, Yint32, Yint64, Yuint8, Yuint16, Yuint32, Yuint64:
		return storeInt(t, text)
	case Ydecimal64:
		return storeDecimal(t, text)
	case Ystring:
		return storeString(t, text)
	case Ybool:
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return nil, fmt.Errorf("invalid boolean %q", text)
		}
	case Yempty:
		if text != "" {
			return nil, fmt.Errorf("empty type cannot have a value, got %q", text)
		}
		return nil, nil
	case Yenum:
		return storeEnum(t, text)
	case Ybits:
		return storeBits(t, text)
	case Ybinary:
		return storeBinary(t, text)
	case Yidentityref:
		return storeIdentityref(t, text)
	case Yleafref, YinstanceIdentifier:
		// Resolving the referenced node is a property of the data tree the
		// schema is being applied to, not of the schema itself, so we only
		// validate that the text is non-empty and keep it as-is.
		if text == "" {
			return nil, fmt.Errorf("%s value cannot be empty", t.Kind)
		}
		return text, nil
	case Yunion:
		return storeUnion(t, text)
	default:
		return nil, fmt.Errorf("cannot store a value of type %s", t.Kind)
	}
}

func storeInt(t *YangType, text string) (interface{}, error) {
	n, err := ParseInt(text)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %v", t.Kind, text, err)
	}
	if err := checkIntWidth(t.Kind, n); err != nil {
		return nil, err
	}
	if len(t.Range) > 0 && !t.Range.Contains(YangRange{{n, n}}) {
		return nil, fmt.Errorf("value %s is not in range %s", n, t.Range)
	}
	return n, nil
}

func checkIntWidth(k TypeKind, n Number) error {
	i, err := n.Int()
	if err != nil {
		return fmt.Errorf("invalid %s value: %v", k, err)
	}
	var lo, hi int64
	var uhi uint64
	switch k {
	case Yint8:
		lo, hi = -128, 127
	case Yint16:
		lo, hi = -32768, 32767
	case Yint32:
		lo, hi = -2147483648, 2147483647
	case Yint64:
		lo, hi = -9223372036854775808, 9223372036854775807
	case Yuint8:
		lo, uhi = 0, 255
	case Yuint16:
		lo, uhi = 0, 65535
	case Yuint32:
		lo, uhi = 0, 4294967295
	case Yuint64:
		lo, uhi = 0, 18446744073709551615
	default:
		return nil
	}
	if n.Kind == Negative || n.Kind == Positive {
		switch k {
		case Yuint8, Yuint16, Yuint32, Yuint64:
			if i < 0 {
				return fmt.Errorf("value %d out of range for %s", i, k)
			}
			if uint64(i) > uhi {
				return fmt.Errorf("value %d out of range for %s", i, k)
			}
		default:
			if i < lo || i > hi {
				return fmt.Errorf("value %d out of range for %s", i, k)
			}
		}
	}
	return nil
}

func storeDecimal(t *YangType, text string) (interface{}, error) {
	n, err := ParseDecimal(text, uint8(t.FractionDigits))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal64 value %q: %v", text, err)
	}
	if len(t.Range) > 0 && !t.Range.Contains(YangRange{{n, n}}) {
		return nil, fmt.Errorf("value %s is not in range %s", n, t.Range)
	}
	return n, nil
}

func storeString(t *YangType, text string) (interface{}, error) {
	if len(t.Length) > 0 {
		n := FromInt(int64(utf8.RuneCountInString(text)))
		if !t.Length.Contains(YangRange{{n, n}}) {
			return nil, fmt.Errorf("string %q has length %d, not in %s", text, utf8.RuneCountInString(text), t.Length)
		}
	}
	if err := matchesPatterns(t.Pattern, text); err != nil {
		return nil, err
	}
	if err := matchesPOSIXPatterns(t.POSIXPattern, text); err != nil {
		return nil, err
	}
	return text, nil
}

func storeEnum(t *YangType, text string) (interface{}, error) {
	if t.Enum == nil || !t.Enum.IsDefined(text) {
		return nil, fmt.Errorf("%q is not a defined enum value", text)
	}
	return text, nil
}

func storeBits(t *YangType, text string) (interface{}, error) {
	var names []string
	for _, f := range strings.Fields(text) {
		if t.Bit == nil || !t.Bit.IsDefined(f) {
			return nil, fmt.Errorf("%q is not a defined bit", f)
		}
		names = append(names, f)
	}
	return names, nil
}

func storeBinary(t *YangType, text string) (interface{}, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 binary value: %v", err)
	}
	if len(t.Length) > 0 {
		n := FromInt(int64(len(data)))
		if !t.Length.Contains(YangRange{{n, n}}) {
			return nil, fmt.Errorf("binary value has length %d, not in %s", len(data), t.Length)
		}
	}
	return data, nil
}

func storeIdentityref(t *YangType, text string) (interface{}, error) {
	if text == "" {
		return nil, fmt.Errorf("identityref value cannot be empty")
	}
	if t.IdentityBase == nil {
		// The base could not be resolved at schema-compile time; accept the
		// syntactic value rather than fail a default that a stricter schema
		// elsewhere may still reject.
		return text, nil
	}
	_, name := getPrefix(text)
	if name == t.IdentityBase.Name || identityHasDescendant(t.IdentityBase, name) {
		return text, nil
	}
	return nil, fmt.Errorf("%q is not a known identity derived from %s", text, t.IdentityBase.Name)
}

func identityHasDescendant(base *Identity, name string) bool {
	for _, v := range base.Values {
		if v.Name == name || identityHasDescendant(v, name) {
			return true
		}
	}
	return false
}

func storeUnion(t *YangType, text string) (interface{}, error) {
	var errs []string
	for _, sub := range t.Type {
		v, err := Store(sub, text)
		if err == nil {
			return v, nil
		}
		errs = append(errs, err.Error())
	}
	return nil, fmt.Errorf("value %q did not match any member of union (%s)", text, strings.Join(errs, "; "))
}

// validateDefaults walks the Entry tree rooted at e and, for every leaf or
// leaf-list carrying a default, invokes Store on its compiled type to
// confirm the default text actually fits the type. A leaf-list's default
// applies to each of its members individually (RFC 7950 7.7.2), so each is
// stored independently.
func (c *Context) validateDefaults(e *Entry) []error {
	var errs []error
	if e.Kind == LeafEntry && e.Type != nil && e.Default != "" {
		if _, err := Store(e.Type, e.Default); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid default - value does not fit the type (%v)", Source(e.Node), err))
		}
	}
	for _, ch := range e.Dir {
		errs = append(errs, c.validateDefaults(ch)...)
	}
	return errs
}

// Duplicate returns a value equal to v but sharing no mutable state with
// it, so that callers can hand out a stored value without the receiver
// being able to corrupt the original via a slice it holds.
func Duplicate(v interface{}) interface{} {
	switch x := v.(type) {
	case []byte:
		dup := make([]byte, len(x))
		copy(dup, x)
		return dup
	case []string:
		dup := make([]string, len(x))
		copy(dup, x)
		return dup
	default:
		// Number, string, bool and nil are already immutable value types.
		return v
	}
}

// Compare returns -1, 0 or 1 according to whether a is less than, equal
// to, or greater than b, the way (*Number).Less and (*Number).Equal do for
// numeric values. Values of type []byte and []string compare as their
// string forms; any other pair of equal dynamic type compares via
// fmt.Sprint equality, with ties broken lexically.
func Compare(a, b interface{}) int {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		if !ok {
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		}
		switch {
		case x.Equal(y):
			return 0
		case x.Less(y):
			return -1
		default:
			return 1
		}
	case []byte:
		return strings.Compare(string(x), fmt.Sprint(b))
	case []string:
		return strings.Compare(strings.Join(x, " "), fmt.Sprint(b))
	case bool:
		y, ok := b.(bool)
		if !ok || x == y {
			return 0
		}
		if !x && y {
			return -1
		}
		return 1
	default:
		as, bs := fmt.Sprint(a), fmt.Sprint(b)
		return strings.Compare(as, bs)
	}
}
