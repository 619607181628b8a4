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

// This file builds the parsed-tree Node types (see nodes.go) from a
// Statement tree.  Each YANG keyword has an explicit, typed build function;
// unknown prefixed keywords (module:extension-name) are collected as
// extensions, anything else is a syntax error.

import (
	"fmt"
	"strings"
)

// aliases maps "aliased" keywords, two keywords that build (nearly) the
// same structure.
var aliases = map[string]string{
	"submodule": "module",
}

// BuildAST is a package-level convenience wrapper around
// (*Context).BuildAST for callers that only want the parsed-tree Node for
// a single statement and have no Context of their own (e.g. to inspect a
// module's AST without running it through Process). Typedefs collected
// while building are kept in a throwaway Context-local dictionary; they
// are not visible to any other Context.
func BuildAST(s *Statement) (Node, error) {
	return NewContext().BuildAST(s)
}

// BuildAST builds a parsed-tree Node from the top level statement s, which
// must be a "module" or "submodule" statement.
func (c *Context) BuildAST(s *Statement) (Node, error) {
	kind := s.Keyword
	if k := aliases[kind]; k != "" {
		kind = k
	}
	switch kind {
	case "module":
		return c.buildModule(s, nil)
	default:
		return nil, fmt.Errorf("%s: unknown top-level statement: %s", s.Location(), s.Keyword)
	}
}

// isExtension reports whether keyword looks like "prefix:name", the only
// legal form for an unrecognized YANG keyword.
func isExtension(keyword string) bool {
	return strings.Contains(keyword, ":")
}

func unknownField(s *Statement, ss *Statement) error {
	return fmt.Errorf("%s: unknown %s field: %s", ss.Location(), s.Keyword, ss.Keyword)
}

func alreadySet(ss *Statement) error {
	return fmt.Errorf("%s: %s already set", ss.Location(), ss.Keyword)
}

// newValue builds a *Value from a simple substatement.  Value substatements
// (most commonly a nested "description") are captured; any other
// substatement is ignored other than being recorded as an extension if it
// carries a module prefix.
func newValue(ss *Statement, parent Node) *Value {
	v := &Value{
		Name:   ss.Argument,
		Source: ss,
		Parent: parent,
	}
	for _, sub := range ss.statements {
		switch {
		case sub.Keyword == "description":
			v.Description = newValue(sub, v)
		case isExtension(sub.Keyword):
			v.Extensions = append(v.Extensions, sub)
		}
	}
	return v
}

// buildModule builds a Module (or submodule) from s.
func (c *Context) buildModule(s *Statement, parent Node) (*Module, error) {
	m := &Module{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var n *AnyData
			if n, err = c.buildAnyData(ss, m); err == nil {
				m.Anydata = append(m.Anydata, n)
			}
		case "anyxml":
			var n *AnyXML
			if n, err = c.buildAnyXML(ss, m); err == nil {
				m.Anyxml = append(m.Anyxml, n)
			}
		case "augment":
			var n *Augment
			if n, err = c.buildAugment(ss, m); err == nil {
				m.Augment = append(m.Augment, n)
			}
		case "belongs-to":
			if m.BelongsTo != nil {
				err = alreadySet(ss)
			} else {
				m.BelongsTo, err = c.buildBelongsTo(ss, m)
			}
		case "choice":
			var n *Choice
			if n, err = c.buildChoice(ss, m); err == nil {
				m.Choice = append(m.Choice, n)
			}
		case "contact":
			if m.Contact != nil {
				err = alreadySet(ss)
			} else {
				m.Contact = newValue(ss, m)
			}
		case "container":
			var n *Container
			if n, err = c.buildContainer(ss, m); err == nil {
				m.Container = append(m.Container, n)
			}
		case "description":
			if m.Description != nil {
				err = alreadySet(ss)
			} else {
				m.Description = newValue(ss, m)
			}
		case "deviation":
			var n *Deviation
			if n, err = c.buildDeviation(ss, m); err == nil {
				m.Deviation = append(m.Deviation, n)
			}
		case "extension":
			var n *Extension
			if n, err = c.buildExtension(ss, m); err == nil {
				m.Extension = append(m.Extension, n)
			}
		case "feature":
			var n *Feature
			if n, err = c.buildFeature(ss, m); err == nil {
				m.Feature = append(m.Feature, n)
			}
		case "grouping":
			var n *Grouping
			if n, err = c.buildGrouping(ss, m); err == nil {
				m.Grouping = append(m.Grouping, n)
			}
		case "identity":
			var n *Identity
			if n, err = c.buildIdentity(ss, m); err == nil {
				m.Identity = append(m.Identity, n)
			}
		case "import":
			var n *Import
			if n, err = c.buildImport(ss, m); err == nil {
				m.Import = append(m.Import, n)
			}
		case "include":
			var n *Include
			if n, err = c.buildInclude(ss, m); err == nil {
				m.Include = append(m.Include, n)
			}
		case "leaf":
			var n *Leaf
			if n, err = c.buildLeaf(ss, m); err == nil {
				m.Leaf = append(m.Leaf, n)
			}
		case "leaf-list":
			var n *LeafList
			if n, err = c.buildLeafList(ss, m); err == nil {
				m.LeafList = append(m.LeafList, n)
			}
		case "list":
			var n *List
			if n, err = c.buildList(ss, m); err == nil {
				m.List = append(m.List, n)
			}
		case "namespace":
			if m.Namespace != nil {
				err = alreadySet(ss)
			} else {
				m.Namespace = newValue(ss, m)
			}
		case "notification":
			var n *Notification
			if n, err = c.buildNotification(ss, m); err == nil {
				m.Notification = append(m.Notification, n)
			}
		case "organization":
			if m.Organization != nil {
				err = alreadySet(ss)
			} else {
				m.Organization = newValue(ss, m)
			}
		case "prefix":
			if m.Prefix != nil {
				err = alreadySet(ss)
			} else {
				m.Prefix = newValue(ss, m)
			}
		case "reference":
			if m.Reference != nil {
				err = alreadySet(ss)
			} else {
				m.Reference = newValue(ss, m)
			}
		case "revision":
			var n *Revision
			if n, err = c.buildRevision(ss, m); err == nil {
				m.Revision = append(m.Revision, n)
			}
		case "rpc":
			var n *RPC
			if n, err = c.buildRPC(ss, m); err == nil {
				m.RPC = append(m.RPC, n)
			}
		case "typedef":
			var n *Typedef
			if n, err = c.buildTypedef(ss, m); err == nil {
				m.Typedef = append(m.Typedef, n)
			}
		case "uses":
			var n *Uses
			if n, err = c.buildUses(ss, m); err == nil {
				m.Uses = append(m.Uses, n)
			}
		case "yang-version":
			if m.YangVersion != nil {
				err = alreadySet(ss)
			} else {
				m.YangVersion = newValue(ss, m)
			}
		default:
			if isExtension(ss.Keyword) {
				m.Extensions = append(m.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	switch s.Keyword {
	case "submodule":
		if m.BelongsTo == nil {
			return nil, fmt.Errorf("%s: missing required module field: belongs-to", s.Location())
		}
	default:
		if m.Namespace == nil {
			return nil, fmt.Errorf("%s: missing required module field: namespace", s.Location())
		}
		if m.Prefix == nil {
			return nil, fmt.Errorf("%s: missing required module field: prefix", s.Location())
		}
	}

	c.typeDict.addTypedefs(m)
	return m, nil
}

func (c *Context) buildImport(s *Statement, parent Node) (*Import, error) {
	n := &Import{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "prefix":
			if n.Prefix != nil {
				return nil, alreadySet(ss)
			}
			n.Prefix = newValue(ss, n)
		case "revision-date":
			if n.RevisionDate != nil {
				return nil, alreadySet(ss)
			}
			n.RevisionDate = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildInclude(s *Statement, parent Node) (*Include, error) {
	n := &Include{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "revision-date":
			if n.RevisionDate != nil {
				return nil, alreadySet(ss)
			}
			n.RevisionDate = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildRevision(s *Statement, parent Node) (*Revision, error) {
	n := &Revision{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildBelongsTo(s *Statement, parent Node) (*BelongsTo, error) {
	n := &BelongsTo{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "prefix":
			n.Prefix = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildTypedef(s *Statement, parent Node) (*Typedef, error) {
	n := &Typedef{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "default":
			n.Default = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "type":
			if n.Type != nil {
				err = alreadySet(ss)
			} else {
				n.Type, err = c.buildType(ss, n)
			}
		case "units":
			n.Units = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if n.Type == nil {
		return nil, fmt.Errorf("%s: missing required typedef field: type", s.Location())
	}
	return n, nil
}

func (c *Context) buildType(s *Statement, parent Node) (*Type, error) {
	n := &Type{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "base":
			n.IdentityBase = newValue(ss, n)
		case "bit":
			var b *Bit
			if b, err = c.buildBit(ss, n); err == nil {
				n.Bit = append(n.Bit, b)
			}
		case "enum":
			var e *Enum
			if e, err = c.buildEnum(ss, n); err == nil {
				n.Enum = append(n.Enum, e)
			}
		case "fraction-digits":
			n.FractionDigits = newValue(ss, n)
		case "length":
			if n.Length != nil {
				err = alreadySet(ss)
			} else {
				n.Length, err = c.buildLength(ss, n)
			}
		case "path":
			n.Path = newValue(ss, n)
		case "pattern":
			var p *Pattern
			if p, err = c.buildPattern(ss, n); err == nil {
				n.Pattern = append(n.Pattern, p)
			}
		case "range":
			if n.Range != nil {
				err = alreadySet(ss)
			} else {
				n.Range, err = c.buildRange(ss, n)
			}
		case "require-instance":
			n.RequireInstance = newValue(ss, n)
		case "type":
			var t *Type
			if t, err = c.buildType(ss, n); err == nil {
				n.Type = append(n.Type, t)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildMust(s *Statement, parent Node) (*Must, error) {
	n := &Must{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "error-app-tag":
			n.ErrorAppTag = newValue(ss, n)
		case "error-message":
			n.ErrorMessage = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildContainer(s *Statement, parent Node) (*Container, error) {
	n := &Container{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "action":
			var a *Action
			if a, err = c.buildAction(ss, n); err == nil {
				n.Action = append(n.Action, a)
			}
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "config":
			n.Config = newValue(ss, n)
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "presence":
			n.Presence = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildLeaf(s *Statement, parent Node) (*Leaf, error) {
	n := &Leaf{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "default":
			n.Default = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "type":
			if n.Type != nil {
				err = alreadySet(ss)
			} else {
				n.Type, err = c.buildType(ss, n)
			}
		case "units":
			n.Units = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if n.Type == nil {
		return nil, fmt.Errorf("%s: missing required leaf field: type", s.Location())
	}
	return n, nil
}

func (c *Context) buildLeafList(s *Statement, parent Node) (*LeafList, error) {
	n := &LeafList{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "max-elements":
			n.MaxElements = newValue(ss, n)
		case "min-elements":
			n.MinElements = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "ordered-by":
			n.OrderedBy = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "type":
			if n.Type != nil {
				err = alreadySet(ss)
			} else {
				n.Type, err = c.buildType(ss, n)
			}
		case "units":
			n.Units = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	if n.Type == nil {
		return nil, fmt.Errorf("%s: missing required leaf-list field: type", s.Location())
	}
	return n, nil
}

func (c *Context) buildList(s *Statement, parent Node) (*List, error) {
	n := &List{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "action":
			var a *Action
			if a, err = c.buildAction(ss, n); err == nil {
				n.Action = append(n.Action, a)
			}
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "config":
			n.Config = newValue(ss, n)
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "key":
			n.Key = newValue(ss, n)
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "max-elements":
			n.MaxElements = newValue(ss, n)
		case "min-elements":
			n.MinElements = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "ordered-by":
			n.OrderedBy = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "unique":
			n.Unique = append(n.Unique, newValue(ss, n))
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildChoice(s *Statement, parent Node) (*Choice, error) {
	n := &Choice{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "case":
			var a *Case
			if a, err = c.buildCase(ss, n); err == nil {
				n.Case = append(n.Case, a)
			}
		case "config":
			n.Config = newValue(ss, n)
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "default":
			n.Default = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildCase(s *Statement, parent Node) (*Case, error) {
	n := &Case{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildAnyXML(s *Statement, parent Node) (*AnyXML, error) {
	n := &AnyXML{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildAnyData(s *Statement, parent Node) (*AnyData, error) {
	n := &AnyData{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildGrouping(s *Statement, parent Node) (*Grouping, error) {
	n := &Grouping{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "action":
			var a *Action
			if a, err = c.buildAction(ss, n); err == nil {
				n.Action = append(n.Action, a)
			}
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildUses(s *Statement, parent Node) (*Uses, error) {
	n := &Uses{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "augment":
			if n.Augment != nil {
				err = alreadySet(ss)
			} else {
				n.Augment, err = c.buildAugment(ss, n)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "refine":
			var a *Refine
			if a, err = c.buildRefine(ss, n); err == nil {
				n.Refine = append(n.Refine, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildRefine(s *Statement, parent Node) (*Refine, error) {
	n := &Refine{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "default":
			n.Default = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "max-elements":
			n.MaxElements = newValue(ss, n)
		case "min-elements":
			n.MinElements = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "presence":
			n.Presence = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildRPC(s *Statement, parent Node) (*RPC, error) {
	n := &RPC{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "input":
			if n.Input != nil {
				err = alreadySet(ss)
			} else {
				n.Input, err = c.buildInput(ss, n)
			}
		case "output":
			if n.Output != nil {
				err = alreadySet(ss)
			} else {
				n.Output, err = c.buildOutput(ss, n)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildAction(s *Statement, parent Node) (*Action, error) {
	n := &Action{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "input":
			if n.Input != nil {
				err = alreadySet(ss)
			} else {
				n.Input, err = c.buildInput(ss, n)
			}
		case "output":
			if n.Output != nil {
				err = alreadySet(ss)
			} else {
				n.Output, err = c.buildOutput(ss, n)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildInput(s *Statement, parent Node) (*Input, error) {
	n := &Input{Name: "input", Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildOutput(s *Statement, parent Node) (*Output, error) {
	n := &Output{Name: "output", Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildNotification(s *Statement, parent Node) (*Notification, error) {
	n := &Notification{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "grouping":
			var a *Grouping
			if a, err = c.buildGrouping(ss, n); err == nil {
				n.Grouping = append(n.Grouping, a)
			}
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "typedef":
			var a *Typedef
			if a, err = c.buildTypedef(ss, n); err == nil {
				n.Typedef = append(n.Typedef, a)
			}
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	c.typeDict.addTypedefs(n)
	return n, nil
}

func (c *Context) buildAugment(s *Statement, parent Node) (*Augment, error) {
	n := &Augment{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "action":
			var a *Action
			if a, err = c.buildAction(ss, n); err == nil {
				n.Action = append(n.Action, a)
			}
		case "anydata":
			var a *AnyData
			if a, err = c.buildAnyData(ss, n); err == nil {
				n.Anydata = append(n.Anydata, a)
			}
		case "anyxml":
			var a *AnyXML
			if a, err = c.buildAnyXML(ss, n); err == nil {
				n.Anyxml = append(n.Anyxml, a)
			}
		case "case":
			var a *Case
			if a, err = c.buildCase(ss, n); err == nil {
				n.Case = append(n.Case, a)
			}
		case "choice":
			var a *Choice
			if a, err = c.buildChoice(ss, n); err == nil {
				n.Choice = append(n.Choice, a)
			}
		case "container":
			var a *Container
			if a, err = c.buildContainer(ss, n); err == nil {
				n.Container = append(n.Container, a)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "leaf":
			var a *Leaf
			if a, err = c.buildLeaf(ss, n); err == nil {
				n.Leaf = append(n.Leaf, a)
			}
		case "leaf-list":
			var a *LeafList
			if a, err = c.buildLeafList(ss, n); err == nil {
				n.LeafList = append(n.LeafList, a)
			}
		case "list":
			var a *List
			if a, err = c.buildList(ss, n); err == nil {
				n.List = append(n.List, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "uses":
			var a *Uses
			if a, err = c.buildUses(ss, n); err == nil {
				n.Uses = append(n.Uses, a)
			}
		case "when":
			n.When = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildIdentity(s *Statement, parent Node) (*Identity, error) {
	n := &Identity{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "base":
			n.Base = newValue(ss, n)
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildExtension(s *Statement, parent Node) (*Extension, error) {
	n := &Extension{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "argument":
			if n.Argument != nil {
				err = alreadySet(ss)
			} else {
				n.Argument, err = c.buildArgument(ss, n)
			}
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildArgument(s *Statement, parent Node) (*Argument, error) {
	n := &Argument{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "yin-element":
			n.YinElement = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildFeature(s *Statement, parent Node) (*Feature, error) {
	n := &Feature{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, newValue(ss, n))
		case "status":
			n.Status = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildDeviation(s *Statement, parent Node) (*Deviation, error) {
	n := &Deviation{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "deviate":
			var a *Deviate
			if a, err = c.buildDeviate(ss, n); err == nil {
				n.Deviate = append(n.Deviate, a)
			}
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (c *Context) buildDeviate(s *Statement, parent Node) (*Deviate, error) {
	n := &Deviate{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		var err error
		switch ss.Keyword {
		case "config":
			n.Config = newValue(ss, n)
		case "default":
			n.Default = newValue(ss, n)
		case "mandatory":
			n.Mandatory = newValue(ss, n)
		case "max-elements":
			n.MaxElements = newValue(ss, n)
		case "min-elements":
			n.MinElements = newValue(ss, n)
		case "must":
			var a *Must
			if a, err = c.buildMust(ss, n); err == nil {
				n.Must = append(n.Must, a)
			}
		case "type":
			if n.Type != nil {
				err = alreadySet(ss)
			} else {
				n.Type, err = c.buildType(ss, n)
			}
		case "unique":
			n.Unique = append(n.Unique, newValue(ss, n))
		case "units":
			n.Units = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				err = unknownField(s, ss)
			}
		}
		if err != nil {
			return nil, err
		}
	}
	switch n.Name {
	case "not-supported", "add", "replace", "delete":
	default:
		return nil, fmt.Errorf("%s: invalid deviate argument: %s", s.Location(), n.Name)
	}
	return n, nil
}

func (c *Context) buildEnum(s *Statement, parent Node) (*Enum, error) {
	n := &Enum{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "value":
			n.Value = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildBit(s *Statement, parent Node) (*Bit, error) {
	n := &Bit{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		case "status":
			n.Status = newValue(ss, n)
		case "position":
			n.Position = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildRange(s *Statement, parent Node) (*Range, error) {
	n := &Range{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "error-app-tag":
			n.ErrorAppTag = newValue(ss, n)
		case "error-message":
			n.ErrorMessage = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildLength(s *Statement, parent Node) (*Length, error) {
	n := &Length{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "error-app-tag":
			n.ErrorAppTag = newValue(ss, n)
		case "error-message":
			n.ErrorMessage = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}

func (c *Context) buildPattern(s *Statement, parent Node) (*Pattern, error) {
	n := &Pattern{Name: s.Argument, Source: s, Parent: parent}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = newValue(ss, n)
		case "error-app-tag":
			n.ErrorAppTag = newValue(ss, n)
		case "error-message":
			n.ErrorMessage = newValue(ss, n)
		case "reference":
			n.Reference = newValue(ss, n)
		default:
			if isExtension(ss.Keyword) {
				n.Extensions = append(n.Extensions, ss)
			} else {
				return nil, unknownField(s, ss)
			}
		}
	}
	return n, nil
}
