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

// This file converts a parsed Node tree into the compiled Entry tree via
// (*Context).ToEntry.  The compiled tree, once fully resolved, is the
// product of this package.

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/openyang/yangcore/pkg/indent"
)

// A TriState may be true, false, or unset
type TriState int

// The possible states of a TriState.
const (
	TSUnset = TriState(iota)
	TSTrue
	TSFalse
)

// Value returns the value of t as a boolean.  Unset is returned as false.
func (t TriState) Value() bool {
	return t == TSTrue
}

// String displays t as a string.
func (t TriState) String() string {
	switch t {
	case TSUnset:
		return "unset"
	case TSTrue:
		return "true"
	case TSFalse:
		return "false"
	default:
		return fmt.Sprintf("ts-%d", t)
	}
}

// An Entry represents a single node (directory or leaf) created from the
// schema tree.  Directory entries have a non-nil Dir entry.  Leaf nodes have
// a nil Dir entry.  If Errors is not nil then the only other valid field is
// Node.
type Entry struct {
	Parent      *Entry
	Node        Node      // the base node this Entry was derived from.
	Name        string    // our name, same as the key in our parent Dirs
	Description string    // description from node, if any
	Default     string    // default from node, if any
	Errors      []error   // list of errors encounterd on this node
	Kind        EntryKind // kind of Entry
	Config      TriState  // config state of this entry, if known
	Mandatory   TriState  // mandatory state of this entry, if known
	Prefix      *Value    // prefix to use from this point down

	// Fields associated with directory nodes
	Dir map[string]*Entry
	Key string // Optional key name for lists (i.e., maps)

	// Fields associated with leaf nodes
	Type *YangType
	Exts []*Statement // extensions found

	// Fields associated with list nodes (both lists and leaf-lists)
	ListAttr *ListAttr

	RPC *RPCEntry // set if we are an RPC

	// Identities that are defined in this context, this is set if the Entry
	// is a module only.
	Identities []*Identity

	Augments []*Entry // Augments associated with this entry

	// Extra maps unstructured fields (must, when, if-feature, etc.) to
	// their raw values, for callers that need them beyond the Dir tree.
	Extra map[string][]interface{}
}

// An RPCEntry contains information related to an RPC Node.
type RPCEntry struct {
	Input  *Entry
	Output *Entry
}

// Context returns the Context that e is part of.  This is needed when
// looking for rooted nodes not part of this Entry tree.
func (e *Entry) Context() *Context {
	for e.Parent != nil {
		e = e.Parent
	}
	m, ok := e.Node.(*Module)
	if !ok {
		return nil
	}
	return m.ctx
}

// A ListAttr is associated with an Entry that represents a List node
type ListAttr struct {
	MinElements *Value // leaf-list or list MUST have at least min-elements
	MaxElements *Value // leaf-list or list has at most max-elements
	OrderedBy   *Value // order of entries determined by "system" or "user"
}

// Print prints e to w in human readable form.
func (e *Entry) Print(w io.Writer) {
	if e.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(indent.NewWriter(w, "// "), e.Description)
	}
	if e.ReadOnly() {
		fmt.Fprintf(w, "RO: ")
	} else {
		fmt.Fprintf(w, "rw: ")
	}
	if e.Type != nil {
		fmt.Fprintf(w, "%s ", e.Type.Name)
	}
	switch {
	case e.Dir == nil && e.ListAttr != nil:
		fmt.Fprintf(w, "[]%s\n", e.Name)
		return
	case e.Dir == nil:
		fmt.Fprintf(w, "%s\n", e.Name)
		return
	case e.ListAttr != nil:
		fmt.Fprintf(w, "[%s]%s {\n", e.Key, e.Name) //}
	default:
		fmt.Fprintf(w, "%s {\n", e.Name) //}
	}
	var names []string
	for k := range e.Dir {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		e.Dir[k].Print(indent.NewWriter(w, "  "))
	}
	// { to match the brace below to keep brace matching working
	fmt.Fprintln(w, "}")
}

// An EntryKind is the kind of node an Entry is.  All leaf nodes are of kind
// LeafEntry.  A LeafList is also considered a leaf node.  All other kinds are
// directory nodes.
type EntryKind int

// Enumeration of the types of entries.
const (
	LeafEntry = EntryKind(iota)
	DirectoryEntry
	AnyXMLEntry
	CaseEntry
	ChoiceEntry
	InputEntry
	NotificationEntry
	OutputEntry
)

// EntryKindToName maps EntryKind to their names
var EntryKindToName = map[EntryKind]string{
	LeafEntry:         "Leaf",
	DirectoryEntry:    "Directory",
	AnyXMLEntry:       "AnyXML",
	CaseEntry:         "Case",
	ChoiceEntry:       "Choice",
	InputEntry:        "Input",
	NotificationEntry: "Notification",
	OutputEntry:       "Output",
}

func (k EntryKind) String() string {
	if s := EntryKindToName[k]; s != "" {
		return s
	}
	return fmt.Sprintf("unknown-entry-%d", k)
}

// newDirectory returns an empty directory Entry.
func newDirectory(n Node) *Entry {
	return &Entry{
		Kind:  DirectoryEntry,
		Dir:   make(map[string]*Entry),
		Node:  n,
		Name:  n.NName(),
		Extra: map[string][]interface{}{},
	}
}

// newLeaf returns an empty leaf Entry.
func newLeaf(n Node) *Entry {
	return &Entry{
		Kind:  LeafEntry,
		Node:  n,
		Name:  n.NName(),
		Extra: map[string][]interface{}{},
	}
}

// newError returns an error node using format and v to create the error
// contained in the node.  The location of the error is prepended.
func newError(n Node, format string, v ...interface{}) *Entry {
	e := &Entry{Node: n}
	e.errorf("%s: "+format, append([]interface{}{Source(n)}, v...)...)
	return e
}

// errorf appends the entry constructed from string and v to the list of errors
// on e.
func (e *Entry) errorf(format string, v ...interface{}) {
	e.Errors = append(e.Errors, fmt.Errorf(format, v...))
}

// addError appends err to the list of errors on e if err is not nil.
func (e *Entry) addError(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// importErrors imports all the errors from c and its children into e.
func (e *Entry) importErrors(c *Entry) {
	if c == nil {
		return
	}
	for _, err := range c.Errors {
		e.addError(err)
	}
	for _, ce := range c.Dir {
		e.importErrors(ce)
	}
}

// checkErrors calls f on every error found in the tree e and its children.
func (e *Entry) checkErrors(f func(error)) {
	if e == nil {
		return
	}
	for _, e := range e.Dir {
		e.checkErrors(f)
	}
	for _, err := range e.Errors {
		f(err)
	}
}

// GetErrors returns a sorted list of errors found in e.
func (e *Entry) GetErrors() []error {
	// seen eliminates duplicate errors: some entries are processed more
	// than once (groupings in particular), which can duplicate errors.
	seen := map[error]bool{}
	var errs []error
	e.checkErrors(func(err error) {
		if !seen[err] {
			errs = append(errs, err)
			seen[err] = true
		}
	})
	return errorSort(errs)
}

// asKind sets the kind of e to k and returns e.
func (e *Entry) asKind(k EntryKind) *Entry {
	e.Kind = k
	return e
}

// add adds the directory entry key assigned to the provided value.
func (e *Entry) add(key string, value *Entry) *Entry {
	value.Parent = e
	if e.Dir[key] != nil {
		e.errorf("%s: duplicate key from %s: %s", Source(e.Node), Source(value.Node), key)
		return e
	}
	e.Dir[key] = value
	return e
}

// configValue returns TSTrue if v holds "true", TSFalse if v holds "false",
// and TSUnset if v is nil.  An error is returned for any other value.
func configValue(n Node, v *Value) (TriState, error) {
	if v == nil {
		return TSUnset, nil
	}
	switch v.Name {
	case "true":
		return TSTrue, nil
	case "false":
		return TSFalse, nil
	default:
		return TSUnset, fmt.Errorf("%s: invalid config value: %s", Source(n), v.Name)
	}
}

// ToEntry is a package-level convenience wrapper around (*Context).ToEntry
// for callers that already have a Node rooted in a processed module and so
// don't need to carry the Context around explicitly.
func ToEntry(n Node) *Entry {
	if n == nil {
		err := errors.New("ToEntry called on nil AST node")
		return &Entry{
			Node:   &ErrorNode{Error: err},
			Errors: []error{err},
		}
	}
	mod := RootNode(n)
	if mod == nil || mod.ctx == nil {
		err := fmt.Errorf("%s: ToEntry called on a node with no owning Context", Source(n))
		return &Entry{
			Node:   &ErrorNode{Error: err},
			Errors: []error{err},
		}
	}
	return mod.ctx.ToEntry(n)
}

// ToEntry expands node n into a directory Entry, resolving typedefs against
// c's typedef dictionary.  ToEntry must only be used with nodes that are
// directories, such as top level modules and sub-modules.  ToEntry never
// returns nil.  Any errors encountered are found in the Errors field of the
// returned Entry and its children.  Use GetErrors to determine if there were
// any errors.
func (c *Context) ToEntry(n Node) (e *Entry) {
	if n == nil {
		err := errors.New("ToEntry called with nil")
		return &Entry{
			Node:   &ErrorNode{Error: err},
			Errors: []error{err},
		}
	}
	if e := c.entryCache[n]; e != nil {
		return e
	}
	defer func() {
		c.entryCache[n] = e
	}()

	defer func(n Node) {
		if e != nil {
			e.Exts = append(e.Exts, n.Exts()...)
		}
	}(n)

	switch s := n.(type) {
	case *Leaf:
		return c.toLeafEntry(s)
	case *LeafList:
		leaf := &Leaf{
			Name:        s.Name,
			Source:      s.Source,
			Parent:      s.Parent,
			Extensions:  s.Extensions,
			Config:      s.Config,
			Description: s.Description,
			IfFeature:   s.IfFeature,
			Must:        s.Must,
			Reference:   s.Reference,
			Status:      s.Status,
			Type:        s.Type,
			Units:       s.Units,
			When:        s.When,
		}
		le := c.ToEntry(leaf)
		le.ListAttr = &ListAttr{
			MinElements: s.MinElements,
			MaxElements: s.MaxElements,
			OrderedBy:   s.OrderedBy,
		}
		return le
	case *Uses:
		g := FindGrouping(s, s.Name, map[string]bool{})
		if g == nil {
			return newError(n, "unknown group: %s", s.Name)
		}
		// Return a duplicate so each use of a grouping resolves
		// independently (e.g. leafrefs that point outside the group).
		return c.ToEntry(g).dup()
	}

	switch s := n.(type) {
	case *Module:
		return c.toModuleEntry(s)
	case *Container:
		return c.toContainerEntry(s)
	case *List:
		return c.toListEntry(s)
	case *Choice:
		return c.toChoiceEntry(s)
	case *Case:
		return c.toCaseEntry(s)
	case *AnyXML:
		return c.toAnyXMLEntry(s)
	case *AnyData:
		return c.toAnyDataEntry(s)
	case *Grouping:
		return c.toGroupingEntry(s)
	case *Input:
		return c.toInputOutputEntry(s, InputEntry, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses, s.Grouping)
	case *Output:
		return c.toInputOutputEntry(s, OutputEntry, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses, s.Grouping)
	case *Notification:
		return c.toNotificationEntry(s)
	case *RPC:
		return c.toRPCEntry(s)
	case *Action:
		return c.toActionEntry(s)
	case *Augment:
		return c.toAugmentEntry(s)
	}
	return newError(n, "%T: cannot be converted to a *Entry", n)
}

func (c *Context) toLeafEntry(s *Leaf) *Entry {
	e := newLeaf(s)
	if errs := s.Type.resolve(c.typeDict); errs != nil {
		e.Errors = errs
	}
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	if s.Default != nil {
		e.Default = s.Default.Name
	}
	e.Type = s.Type.YangType
	c.entryCache[s] = e
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	mand, merr := configValue(s, s.Mandatory)
	e.Mandatory = mand
	e.addError(merr)
	e.extra(s.When, s.Must, s.IfFeature, s.Mandatory, nil, nil, nil, nil)
	if s.Status != nil {
		e.Extra["status"] = append(e.Extra["status"], s.Status)
	}
	if s.Reference != nil {
		e.Extra["reference"] = append(e.Extra["reference"], s.Reference)
	}
	return e
}

// extra is a small helper that funnels the common set of unstructured
// per-node substatements into Entry.Extra, matching what the tree/type
// dump formatters look at.
func (e *Entry) extra(when *Value, must []*Must, ifFeature []*Value, mandatory, maxElements, minElements, orderedBy, presence *Value) {
	if when != nil {
		e.Extra["when"] = append(e.Extra["when"], when)
	}
	for _, m := range must {
		e.Extra["must"] = append(e.Extra["must"], m)
	}
	for _, f := range ifFeature {
		e.Extra["if-feature"] = append(e.Extra["if-feature"], f)
	}
	if mandatory != nil {
		e.Extra["mandatory"] = append(e.Extra["mandatory"], mandatory)
	}
	if maxElements != nil {
		e.Extra["max-elements"] = append(e.Extra["max-elements"], maxElements)
	}
	if minElements != nil {
		e.Extra["min-elements"] = append(e.Extra["min-elements"], minElements)
	}
	if orderedBy != nil {
		e.Extra["ordered-by"] = append(e.Extra["ordered-by"], orderedBy)
	}
	if presence != nil {
		e.Extra["presence"] = append(e.Extra["presence"], presence)
	}
}

// addDataChildren adds the set of schema-data substatements shared by
// container-like nodes (container, list, case, input, output, grouping,
// notification, augment, action input/output) to e.
func (c *Context) addDataChildren(e *Entry, anydata []*AnyData, anyxml []*AnyXML, choice []*Choice, container []*Container, leaf []*Leaf, leafList []*LeafList, list []*List, uses []*Uses) {
	for _, a := range anydata {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range anyxml {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range choice {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range container {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range leaf {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range leafList {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range list {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range uses {
		e.merge(nil, c.ToEntry(a))
	}
}

// addGroupings imports the errors (only) found from resolving groupings
// local to a directory node; the grouping's actual contents only appear in
// the tree via the corresponding uses statement.
func (c *Context) addGroupings(e *Entry, groupings []*Grouping) {
	for _, g := range groupings {
		e.importErrors(c.ToEntry(g))
	}
}

func (c *Context) toContainerEntry(s *Container) *Entry {
	e := newDirectory(s)
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	c.addGroupings(e, s.Grouping)
	for _, a := range s.Action {
		e.add(a.Name, c.ToEntry(a))
	}
	e.extra(s.When, s.Must, s.IfFeature, nil, nil, nil, nil, s.Presence)
	if s.Status != nil {
		e.Extra["status"] = append(e.Extra["status"], s.Status)
	}
	return e
}

func (c *Context) toListEntry(s *List) *Entry {
	e := newDirectory(s)
	e.ListAttr = &ListAttr{
		MinElements: s.MinElements,
		MaxElements: s.MaxElements,
		OrderedBy:   s.OrderedBy,
	}
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	if s.Key != nil {
		e.Key = s.Key.Name
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	c.addGroupings(e, s.Grouping)
	for _, a := range s.Action {
		e.add(a.Name, c.ToEntry(a))
	}
	e.extra(s.When, s.Must, s.IfFeature, nil, s.MaxElements, s.MinElements, s.OrderedBy, nil)
	for _, u := range s.Unique {
		e.Extra["unique"] = append(e.Extra["unique"], u)
	}
	return e
}

func (c *Context) toChoiceEntry(s *Choice) *Entry {
	e := newDirectory(s).asKind(ChoiceEntry)
	if s.Default != nil {
		e.Default = s.Default.Name
	}
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	mand, merr := configValue(s, s.Mandatory)
	e.Mandatory = mand
	e.addError(merr)
	for _, a := range s.Case {
		e.add(a.Name, c.ToEntry(a))
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, nil, s.Container, s.Leaf, s.LeafList, s.List, nil)
	e.extra(s.When, nil, s.IfFeature, s.Mandatory, nil, nil, nil, nil)
	return e
}

func (c *Context) toCaseEntry(s *Case) *Entry {
	e := newDirectory(s).asKind(CaseEntry)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	for _, a := range s.Choice {
		e.add(a.Name, c.ToEntry(a))
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, nil, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	e.extra(s.When, nil, s.IfFeature, nil, nil, nil, nil, nil)
	return e
}

func (c *Context) toAnyXMLEntry(s *AnyXML) *Entry {
	e := newLeaf(s).asKind(AnyXMLEntry)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	mand, merr := configValue(s, s.Mandatory)
	e.Mandatory = mand
	e.addError(merr)
	e.extra(s.When, s.Must, s.IfFeature, s.Mandatory, nil, nil, nil, nil)
	return e
}

func (c *Context) toAnyDataEntry(s *AnyData) *Entry {
	e := newLeaf(s).asKind(AnyXMLEntry)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	cfg, err := configValue(s, s.Config)
	e.Config = cfg
	e.addError(err)
	mand, merr := configValue(s, s.Mandatory)
	e.Mandatory = mand
	e.addError(merr)
	e.extra(s.When, s.Must, s.IfFeature, s.Mandatory, nil, nil, nil, nil)
	return e
}

func (c *Context) toGroupingEntry(s *Grouping) *Entry {
	e := newDirectory(s)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	c.addGroupings(e, s.Grouping)
	for _, a := range s.Action {
		e.add(a.Name, c.ToEntry(a))
	}
	return e
}

func (c *Context) toInputOutputEntry(n Node, kind EntryKind, anydata []*AnyData, anyxml []*AnyXML, choice []*Choice, container []*Container, leaf []*Leaf, leafList []*LeafList, list []*List, uses []*Uses, grouping []*Grouping) *Entry {
	e := newDirectory(n).asKind(kind)
	c.addDataChildren(e, anydata, anyxml, choice, container, leaf, leafList, list, uses)
	c.addGroupings(e, grouping)
	return e
}

func (c *Context) toNotificationEntry(s *Notification) *Entry {
	e := newDirectory(s).asKind(NotificationEntry)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	c.addGroupings(e, s.Grouping)
	e.extra(nil, nil, s.IfFeature, nil, nil, nil, nil, nil)
	return e
}

func (c *Context) toRPCEntry(s *RPC) *Entry {
	e := newDirectory(s)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	c.addGroupings(e, s.Grouping)
	if s.Input != nil {
		e.RPC = &RPCEntry{}
		e.RPC.Input = c.ToEntry(s.Input)
		e.RPC.Input.Name = "input"
		e.RPC.Input.Kind = InputEntry
	}
	if s.Output != nil {
		if e.RPC == nil {
			e.RPC = &RPCEntry{}
		}
		e.RPC.Output = c.ToEntry(s.Output)
		e.RPC.Output.Name = "output"
		e.RPC.Output.Kind = OutputEntry
	}
	e.extra(nil, nil, s.IfFeature, nil, nil, nil, nil, nil)
	return e
}

func (c *Context) toActionEntry(s *Action) *Entry {
	e := newDirectory(s)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	c.addGroupings(e, s.Grouping)
	if s.Input != nil {
		e.RPC = &RPCEntry{}
		e.RPC.Input = c.ToEntry(s.Input)
		e.RPC.Input.Name = "input"
		e.RPC.Input.Kind = InputEntry
	}
	if s.Output != nil {
		if e.RPC == nil {
			e.RPC = &RPCEntry{}
		}
		e.RPC.Output = c.ToEntry(s.Output)
		e.RPC.Output.Name = "output"
		e.RPC.Output.Kind = OutputEntry
	}
	e.extra(nil, nil, s.IfFeature, nil, nil, nil, nil, nil)
	return e
}

func (c *Context) toAugmentEntry(s *Augment) *Entry {
	e := newDirectory(s)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	for _, a := range s.Case {
		e.add(a.Name, c.ToEntry(a))
	}
	c.addDataChildren(e, s.Anydata, s.Anyxml, s.Choice, s.Container, s.Leaf, s.LeafList, s.List, s.Uses)
	for _, a := range s.Action {
		e.add(a.Name, c.ToEntry(a))
	}
	e.extra(s.When, nil, s.IfFeature, nil, nil, nil, nil, nil)
	return e
}

func (c *Context) toModuleEntry(s *Module) *Entry {
	e := newDirectory(s)
	if s.Description != nil {
		e.Description = s.Description.Name
	}
	if s.Prefix != nil {
		e.Prefix = s.Prefix
	} else if s.BelongsTo != nil {
		e.Prefix = s.BelongsTo.Prefix
	}

	for _, a := range s.Augment {
		ne := c.ToEntry(a)
		ne.Parent = e
		e.Augments = append(e.Augments, ne)
	}
	for _, a := range s.Anyxml {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.Anydata {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.Choice {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.Container {
		e.add(a.Name, c.ToEntry(a))
	}
	c.addGroupings(e, s.Grouping)
	for _, a := range s.Leaf {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.LeafList {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.List {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, a := range s.Notification {
		e.add(a.Name, c.ToEntry(a))
	}
	for _, r := range s.RPC {
		e.add(r.Name, c.ToEntry(r))
	}
	for _, a := range s.Uses {
		e.merge(nil, c.ToEntry(a))
	}
	if len(s.Identity) > 0 {
		e.Identities = s.Identity
	}

	// Merge in included submodules.  Guards against circular include
	// graphs via c.mergedSubmodule, keyed by included:including (and by
	// included:belongs-to).
	for _, inc := range s.Include {
		if inc.Module == nil {
			continue
		}
		key := inc.Module.Name + ":" + s.NName()
		if c.mergedSubmodule[key] {
			continue
		}
		if inc.Module.NName() == s.NName() {
			if c.ParseOptions.IgnoreSubmoduleCircularDependencies {
				continue
			}
			e.addError(fmt.Errorf("%s: has a circular dependency, importing %s", s.NName(), inc.Module.NName()))
			continue
		}
		parentkey := inc.Module.Name + ":" + inc.Module.BelongsTo.Name
		if c.mergedSubmodule[parentkey] {
			continue
		}
		c.mergedSubmodule[key] = true
		c.mergedSubmodule[parentkey] = true
		e.merge(inc.Module.Prefix, c.ToEntry(inc.Module))
	}

	// Resolve deviate type overrides inline, same as other types.
	for _, d := range s.Deviation {
		for _, sd := range d.Deviate {
			if sd.Type != nil {
				sd.Type.resolve(c.typeDict)
			}
		}
	}

	e.Extra["namespace"] = listIfNotNil(s.Namespace)
	e.Extra["organization"] = listIfNotNil(s.Organization)
	e.Extra["contact"] = listIfNotNil(s.Contact)
	e.Extra["yang-version"] = listIfNotNil(s.YangVersion)
	for _, r := range s.Revision {
		e.Extra["revision"] = append(e.Extra["revision"], r)
	}
	for _, f := range s.Feature {
		e.Extra["feature"] = append(e.Extra["feature"], f)
	}
	for _, x := range s.Extension {
		e.Extra["extension"] = append(e.Extra["extension"], x)
	}

	if e.Prefix == nil {
		if m := RootNode(e.Node); m != nil {
			e.Prefix = m.getPrefix()
		}
	}
	return e
}

func listIfNotNil(v *Value) []interface{} {
	if v == nil {
		return nil
	}
	return []interface{}{v}
}

// Augment processes augments in e, return the number of augments processed
// and the augments skipped.  If addErrors is true then missing augments will
// generate errors.
func (e *Entry) Augment(addErrors bool) (processed, skipped int) {
	var sa []*Entry
	for _, a := range e.Augments {
		ae := a.Find(a.Name)
		if ae == nil {
			if addErrors {
				e.errorf("%s: augment %s not found", Source(a.Node), a.Name)
			}
			skipped++
			sa = append(sa, a)
			continue
		}
		// Augments do not have a prefix we merge in, just a node.
		processed++
		ae.merge(nil, a)
	}
	e.Augments = sa
	return processed, skipped
}

// FixChoice inserts missing Case entries in a choice
func (e *Entry) FixChoice() {
	if e.Kind == ChoiceEntry && len(e.Errors) == 0 {
		for k, ce := range e.Dir {
			if ce.Kind != CaseEntry {
				ne := &Entry{
					Parent: e,
					Node:   ce.Node,
					Name:   ce.Name,
					Kind:   CaseEntry,
					Config: ce.Config,
					Prefix: ce.Prefix,
					Dir:    map[string]*Entry{ce.Name: ce},
					Extra:  map[string][]interface{}{},
				}
				ce.Parent = ne
				e.Dir[k] = ne
			}
		}
	}
	for _, ce := range e.Dir {
		ce.FixChoice()
	}
}

// ReadOnly returns true if e is a read-only variable (config == false).
// If Config is unset in e, then false is returned if e has no parent,
// otherwise the value parent's ReadOnly is returned.
func (e *Entry) ReadOnly() bool {
	switch {
	case e == nil:
		return false
	case e.Kind == OutputEntry:
		return true
	case e.Config == TSUnset:
		return e.Parent.ReadOnly()
	default:
		return !e.Config.Value()
	}
}

// IsLeaf returns true if e is a leaf (not a leaf-list).
func (e *Entry) IsLeaf() bool {
	return e.Kind == LeafEntry && e.ListAttr == nil
}

// IsLeafList returns true if e is a leaf-list.
func (e *Entry) IsLeafList() bool {
	return e.Kind == LeafEntry && e.ListAttr != nil
}

// IsContainer returns true if e is a container (not a list).
func (e *Entry) IsContainer() bool {
	return e.Kind == DirectoryEntry && e.ListAttr == nil
}

// IsList returns true if e is a list.
func (e *Entry) IsList() bool {
	return e.Kind == DirectoryEntry && e.ListAttr != nil
}

// IsChoice returns true if e is a choice.
func (e *Entry) IsChoice() bool {
	return e.Kind == ChoiceEntry
}

// IsCase returns true if e is a case within a choice.
func (e *Entry) IsCase() bool {
	return e.Kind == CaseEntry
}

// Find finds the Entry named by name relative to e.
func (e *Entry) Find(name string) *Entry {
	if e == nil || name == "" {
		return nil
	}
	parts := strings.Split(name, "/")

	if parts[0] == "" {
		for e.Parent != nil {
			e = e.Parent
		}
		parts = parts[1:]

		if prefix, _ := getPrefix(parts[0]); prefix != "" {
			m := FindModuleByPrefix(e.Node, prefix)
			if m == nil {
				e.addError(fmt.Errorf("%s: no such prefix", prefix))
				return nil
			}
			if e.Node.(*Module) != m {
				e = e.Context().ToEntry(m)
			}
		}
	}

	for _, part := range parts {
		switch {
		case e == nil:
			return nil
		case part == ".":
		case part == "..":
			e = e.Parent
		default:
			_, part = getPrefix(part)
			switch part {
			case ".":
			case "", "..":
				return nil
			default:
				e = e.Dir[part]
			}
		}
	}
	return e
}

// Path returns the path to e. A nil Entry returns "".
func (e *Entry) Path() string {
	if e == nil {
		return ""
	}
	return e.Parent.Path() + "/" + e.Name
}

// Namespace returns the YANG/XML namespace Value for e as mounted in the Entry
// tree (e.g., as placed by grouping statements).
//
// Per RFC7950 section 7.13, the namespace on elements in the tree due to a
// "uses" statement is that of where the uses statement occurs, i.e. the
// user, rather than creator (grouping) of those elements, so we follow the
// usage (Entry) tree up to the parent before obtaining the (then adjacent)
// root node for its namespace Value.
func (e *Entry) Namespace() *Value {
	for ; e.Parent != nil; e = e.Parent {
	}
	if e != nil && e.Node != nil {
		if root := RootNode(e.Node); root != nil {
			return root.Namespace
		}
	}
	return new(Value)
}

// dup makes a deep duplicate of e.
func (e *Entry) dup() *Entry {
	ne := *e
	if e.Dir != nil {
		ne.Dir = make(map[string]*Entry, len(e.Dir))
		for k, v := range e.Dir {
			de := v.dup()
			de.Parent = &ne
			ne.Dir[k] = de
		}
	}
	return &ne
}

// merge merges a duplicate of oe.Dir into e.Dir, setting the prefix of each
// element to prefix, if not nil.  It is an error if e and oe contain common
// elements.
func (e *Entry) merge(prefix *Value, oe *Entry) {
	e.importErrors(oe)
	for k, v := range oe.Dir {
		v := v.dup()
		if prefix != nil {
			v.Prefix = prefix
		}
		if se := e.Dir[k]; se != nil {
			er := newError(oe.Node, `Duplicate node %q in %q from:
   %s: %s
   %s: %s`, k, e.Name, Source(v.Node), v.Name, Source(se.Node), se.Name)
			e.addError(er.Errors[0])
		} else {
			v.Parent = e
			e.Dir[k] = v
		}
	}
}

// DefaultValue returns the schema default value for e, if any. If the leaf
// has no explicit default, its type default (if any) is used.
func (e *Entry) DefaultValue() string {
	if len(e.Default) > 0 {
		return e.Default
	} else if typ := e.Type; typ != nil {
		return typ.Default
	}
	return ""
}
