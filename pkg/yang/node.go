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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/openyang/yangcore/pkg/indent"
)

// A Node contains a yang statement and all attributes and sub-statements.
// Only pointers to structures should implement Node.
type Node interface {
	// Kind returns the kind of yang statement (the keyword).
	Kind() string
	// NName returns the node's name (the argument)
	NName() string
	// Statement returns the original Statement of this Node.
	Statement() *Statement
	// ParentNode returns the parent of this Node, or nil if the
	// Node has no parent.
	ParentNode() Node
	// Exts returns the list of extension statements found.
	Exts() []*Statement
}

// A Typedefer is a Node that defines typedefs.
type Typedefer interface {
	Node
	Typedefs() []*Typedef
}

// A Groupinger is a Node that defines groupings.
type Groupinger interface {
	Node
	Groupings() []*Grouping
}

// An ErrorNode is a node that only contains an error.
type ErrorNode struct {
	Parent Node
	Error  error
}

func (ErrorNode) Kind() string             { return "error" }
func (s *ErrorNode) ParentNode() Node      { return s.Parent }
func (s *ErrorNode) NName() string         { return "error" }
func (s *ErrorNode) Statement() *Statement { return &Statement{} }
func (s *ErrorNode) Exts() []*Statement    { return nil }

// isRPCNode is returned by FindNode when path walks into an rpc's
// input/output, which FindNode does not resolve into.
var isRPCNode = &ErrorNode{Error: errors.New("rpc is unsupported")}

// Source returns the location of the source where n was defined.
func Source(n Node) string {
	if n != nil && n.Statement() != nil {
		return n.Statement().Location()
	}
	return "unknown"
}

// getPrefix returns the prefix and base name of s.  If s has no prefix
// then the returned prefix is "".
func getPrefix(s string) (string, string) {
	f := strings.SplitN(s, ":", 2)
	if len(f) == 1 {
		return "", s
	}
	return f[0], f[1]
}

// Prefix notes for types:
//
// If there is prefix, look in nodes ancestors.
//
// If prefix matches the module's prefix statement, look in nodes ancestors.
//
// If prefix matches the submodule's belongs-to statement, look in nodes
// ancestors.
//
// Finally, look in the module imported with prefix.

// FindModuleByPrefix finds the module or submodule with the provided prefix
// relative to where n was defined.  If the prefix cannot be resolved then nil
// is returned.
func FindModuleByPrefix(n Node, prefix string) *Module {
	if n == nil {
		return nil
	}
	mod := RootNode(n)
	if mod == nil {
		return nil
	}

	if prefix == "" || prefix == mod.GetPrefix() {
		return mod
	}

	for _, i := range mod.Import {
		if i.Prefix != nil && prefix == i.Prefix.Name {
			return mod.ctx.FindModule(i)
		}
	}
	return nil
}

// MatchingExtensions returns the subset of the given node's extensions
// that match the given module and identifier.
func MatchingExtensions(n Node, module, identifier string) ([]*Statement, error) {
	return matchingExtensions(n, n.Exts(), module, identifier)
}

// MatchingEntryExtensions returns the subset of the given entry's extensions
// that match the given module and identifier.
func MatchingEntryExtensions(e *Entry, module, identifier string) ([]*Statement, error) {
	return matchingExtensions(e.Node, e.Exts, module, identifier)
}

// matchingExtensions returns the subset of exts that match the given module
// and identifier, as seen from n.
func matchingExtensions(n Node, exts []*Statement, module, identifier string) ([]*Statement, error) {
	var matching []*Statement
	for _, ext := range exts {
		names := strings.SplitN(ext.Keyword, ":", 2)
		mod := FindModuleByPrefix(n, names[0])
		if mod == nil {
			return nil, fmt.Errorf("matchingExtensions: module prefix %q not found", names[0])
		}
		if len(names) == 2 && names[1] == identifier && mod.Name == module {
			matching = append(matching, ext)
		}
	}
	return matching, nil
}

// RootNode returns the submodule or module that n was defined in.
func RootNode(n Node) *Module {
	for n != nil && n.ParentNode() != nil {
		n = n.ParentNode()
	}
	if mod, ok := n.(*Module); ok {
		return mod
	}
	return nil
}

// owningModule returns the Module to which n belongs. If n resides in a
// submodule, the belonging module is returned instead. Returns nil if n is
// nil or the owning module cannot be found.
func owningModule(n Node) *Module {
	m := RootNode(n)
	if m == nil {
		return nil
	}
	if m.Kind() == "submodule" && m.BelongsTo != nil && m.ctx != nil {
		if b := m.ctx.Modules[m.BelongsTo.Name]; b != nil {
			return b
		}
	}
	return m
}

// NodePath returns the full path of the node from the module name.
func NodePath(n Node) string {
	var path string
	for n != nil {
		path = "/" + n.NName() + path
		n = n.ParentNode()
	}
	return path
}

// FindNode finds the node referenced by path relative to n.  If path does not
// reference a node then nil is returned (i.e. path not found).  The path looks
// similar to an XPath but currently has no wildcarding.  For example:
// "/if:interfaces/if:interface" and "../config".
func FindNode(n Node, path string) (Node, error) {
	if path == "" {
		return n, nil
	}
	if path == "/" {
		return nil, fmt.Errorf("invalid path %q", path)
	}
	if path[len(path)-1] == '/' {
		return nil, fmt.Errorf("invalid path %q", path)
	}

	parts := strings.Split(path, "/")

	// An absolute path has a leading component of "".  We need to
	// discover which module it is part of based on our imports.
	if parts[0] == "" {
		parts = parts[1:]

		mod := RootNode(n)
		n = mod
		prefix, _ := getPrefix(parts[0])
		if mod.Kind() == "submodule" {
			m := owningModule(mod)
			if m == nil {
				return nil, fmt.Errorf("%s: unknown owning module", mod.BelongsTo.Name)
			}
			if prefix == "" || (mod.BelongsTo.Prefix != nil && prefix == mod.BelongsTo.Prefix.Name) {
				goto processing
			}
			mod = m
		}

		if prefix == "" || (mod.Prefix != nil && prefix == mod.Prefix.Name) {
			goto processing
		}

		for _, i := range mod.Import {
			if i.Prefix != nil && prefix == i.Prefix.Name {
				n = i.Module
				goto processing
			}
		}
		return nil, fmt.Errorf("unknown prefix: %q", prefix)
	processing:
	}

	for _, part := range parts {
		if n.Kind() == "rpc" {
			return isRPCNode, nil
		}
		if part == ".." {
		Loop:
			for {
				n = n.ParentNode()
				if n == nil {
					return nil, fmt.Errorf(".. with no parent")
				}
				switch n.Kind() {
				case "choice", "leaf", "case":
				default:
					break Loop
				}
			}
			continue
		}
		_, spart := getPrefix(part)
		n = ChildNode(n, spart)
		if n == nil {
			return nil, fmt.Errorf("%s: no such element", part)
		}
	}
	return n, nil
}

// children returns the direct Node children of n, in schema order, without
// reflection: every node type that can hold children enumerates its own.
func children(n Node) []Node {
	switch s := n.(type) {
	case *Module:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		for _, x := range s.RPC {
			c = append(c, x)
		}
		for _, x := range s.Notification {
			c = append(c, x)
		}
		for _, x := range s.Augment {
			c = append(c, x)
		}
		return c
	case *Container:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		for _, x := range s.Action {
			c = append(c, x)
		}
		return c
	case *List:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		for _, x := range s.Action {
			c = append(c, x)
		}
		return c
	case *Choice:
		var c []Node
		for _, x := range s.Case {
			c = append(c, x)
		}
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		return c
	case *Case:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		return c
	case *Grouping:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		for _, x := range s.Action {
			c = append(c, x)
		}
		return c
	case *Augment:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Case {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Action {
			c = append(c, x)
		}
		return c
	case *Input:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		return c
	case *Output:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		return c
	case *Notification:
		var c []Node
		for _, x := range s.Container {
			c = append(c, x)
		}
		for _, x := range s.Leaf {
			c = append(c, x)
		}
		for _, x := range s.LeafList {
			c = append(c, x)
		}
		for _, x := range s.List {
			c = append(c, x)
		}
		for _, x := range s.Choice {
			c = append(c, x)
		}
		for _, x := range s.Anydata {
			c = append(c, x)
		}
		for _, x := range s.Anyxml {
			c = append(c, x)
		}
		for _, x := range s.Uses {
			c = append(c, x)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		return c
	case *RPC:
		var c []Node
		if s.Input != nil {
			c = append(c, s.Input)
		}
		if s.Output != nil {
			c = append(c, s.Output)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		return c
	case *Action:
		var c []Node
		if s.Input != nil {
			c = append(c, s.Input)
		}
		if s.Output != nil {
			c = append(c, s.Output)
		}
		for _, x := range s.Grouping {
			c = append(c, x)
		}
		return c
	}
	return nil
}

// ChildNode finds n's child node named name.  It returns nil if the node
// could not be found.  Names must be non-ambiguous, otherwise ChildNode has
// a non-deterministic result.
func ChildNode(n Node, name string) Node {
	for _, c := range children(n) {
		if c.NName() == name {
			return c
		}
		if u, ok := c.(*Uses); ok {
			if found := findInUses(u, name); found != nil {
				return found
			}
		}
	}
	return nil
}

// findInUses resolves u's grouping and looks for a child named name in it.
func findInUses(u *Uses, name string) Node {
	uname := u.NName()
	if !strings.HasPrefix(uname, "/") {
		uname = "/" + uname
	}
	g, _ := FindNode(u, uname)
	if g == nil {
		return nil
	}
	return ChildNode(g, name)
}

// PrintNode prints node n to w, recursively, for debugging and the tree
// dump formatter.
func PrintNode(w io.Writer, n Node) {
	fmt.Fprintf(w, "%s [%s]\n", n.NName(), n.Kind())
	for _, c := range children(n) {
		PrintNode(indent.NewWriter(w, "    "), c)
	}
}
