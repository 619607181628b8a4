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

// This file implements the Context type.  This includes the processing of
// include and import statements, which must be done prior to turning the
// module into an Entry tree.  A Context owns all the compilation state
// (the entry cache, the typedef and identity dictionaries) that used to
// live in package-level globals, so two Contexts never interfere with
// each other.

import "fmt"

// Context holds all the top level modules and submodules that have been
// read into it via its Read method, along with the state accumulated while
// compiling them into Entry trees.  The zero value is not usable; use
// NewContext.
type Context struct {
	Modules    map[string]*Module // All "module" nodes
	SubModules map[string]*Module // All "submodule" nodes
	includes   map[*Module]bool   // Modules we have already done include on
	byPrefix   map[string]*Module // Cache of prefix lookup
	byNS       map[string]*Module // Cache of namespace lookup

	// ParseOptions controls parsing and compiling behavior; see Options.
	ParseOptions Options

	entryCache      map[Node]*Entry
	mergedSubmodule map[string]bool
	identities      *identityDictionary
	typeDict        *typeDictionary
	features        *featureDictionary
}

// NewContext returns a newly created and initialized Context.
func NewContext() *Context {
	return &Context{
		Modules:         map[string]*Module{},
		SubModules:      map[string]*Module{},
		includes:        map[*Module]bool{},
		byPrefix:        map[string]*Module{},
		byNS:            map[string]*Module{},
		entryCache:      map[Node]*Entry{},
		mergedSubmodule: map[string]bool{},
		identities:      newIdentityDictionary(),
		typeDict:        newTypeDictionary(),
		features:        newFeatureDictionary(),
	}
}

// Read reads the named yang module into c.  The name can be the name of an
// actual .yang file or a module/submodule name (the base name of a .yang
// file, e.g., foo.yang is named foo).  An error is returned if the file is
// not found or there was an error parsing the file.
func (c *Context) Read(name string) error {
	name, data, err := findFile(name)
	if err != nil {
		return err
	}
	return c.Parse(string(data), name)
}

// Parse parses data as YANG source and adds it to c.  The name should
// reflect the source of data.  data may be in either the compact YANG
// notation or its YIN (XML) encoding; looksLikeXML dispatches between the
// two based on the first non-whitespace byte.
func (c *Context) Parse(data, name string) error {
	var ss []*Statement
	var err error
	if looksLikeXML(data) {
		ss, err = ParseXML([]byte(data), name)
	} else {
		ss, err = Parse(data, name)
	}
	if err != nil {
		return err
	}
	for _, s := range ss {
		n, err := c.BuildAST(s)
		if err != nil {
			return err
		}
		if err := c.add(n); err != nil {
			return err
		}
	}
	return nil
}

// GetModule returns the Entry of the module named by name.  GetModule will
// search for and read the file named name + ".yang" if it cannot satisfy the
// request from what it has currently read.
//
// GetModule is a convenience function for calling Read and Process, and
// then looking up the module name.  It is safe to call Read and Process
// prior to calling GetModule.
func (c *Context) GetModule(name string) (*Entry, []error) {
	if c.Modules[name] == nil {
		if err := c.Read(name); err != nil {
			return nil, []error{err}
		}
		if c.Modules[name] == nil {
			return nil, []error{fmt.Errorf("module not found: %s", name)}
		}
	}
	// Make sure that the modules have all been processed and have no
	// errors.
	if errs := c.Process(); len(errs) != 0 {
		return nil, errs
	}
	return c.ToEntry(c.Modules[name]), nil
}

// GetModule optionally reads in a set of YANG source files, named by
// sources, and then returns the Entry for the module named module.  If
// sources is missing, or the named module is not yet known, GetModule
// searches for name with the suffix ".yang".  GetModule either returns an
// Entry or returns one or more errors.
//
// GetModule is a convenience function for calling NewContext, Read, and
// Process, and then looking up the module name.
func GetModule(name string, sources ...string) (*Entry, []error) {
	var errs []error
	c := NewContext()
	for _, source := range sources {
		if err := c.Read(source); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return c.GetModule(name)
}

// add adds Node n to c.  n must be assignable to *Module (i.e., it is a
// "module" or "submodule").  An error is returned if n is a duplicate of a
// name already added, or n is not assignable to *Module.
func (c *Context) add(n Node) error {
	var m map[string]*Module

	name := n.NName()
	kind := n.Kind()
	switch kind {
	case "module":
		m = c.Modules
	case "submodule":
		m = c.SubModules
	default:
		return fmt.Errorf("not a module or submodule: %s is of type %s", name, kind)
	}

	mod := n.(*Module)
	fullName := mod.FullName()
	mod.ctx = c

	if o := m[fullName]; o != nil {
		return fmt.Errorf("duplicate %s %s at %s and %s", kind, fullName, Source(o), Source(n))
	}
	m[fullName] = mod
	if fullName == name {
		return nil
	}

	// Add us to the map if:
	// name has not been added before
	// fullname is a more recent version of the entry.
	if o := m[name]; o == nil || o.FullName() < fullName {
		m[name] = mod
	}
	return nil
}

// FindModule returns the Module/Submodule specified by n, which must be a
// *Include or *Import.  If n is a *Include then a submodule is returned.
// If n is a *Import then a module is returned.
func (c *Context) FindModule(n Node) *Module {
	name := n.NName()
	rev := name
	var m map[string]*Module

	switch i := n.(type) {
	case *Include:
		m = c.SubModules
		if i.RevisionDate != nil {
			rev = name + "@" + i.RevisionDate.Name
		}
	case *Import:
		m = c.Modules
		if i.RevisionDate != nil {
			rev = name + "@" + i.RevisionDate.Name
		}
	default:
		return nil
	}
	if n := m[rev]; n != nil {
		return n
	}
	if n := m[name]; n != nil {
		return n
	}

	// Try to read it in.
	if err := c.Read(name); err != nil {
		return nil
	}
	if n := m[rev]; n != nil {
		return n
	}
	return m[name]
}

// FindModuleByNamespace either returns the Module specified by the
// namespace or returns an error.
func (c *Context) FindModuleByNamespace(ns string) (*Module, error) {
	if m, ok := c.byNS[ns]; ok {
		if m == nil {
			return nil, fmt.Errorf("%q: no such namespace", ns)
		}
		return m, nil
	}
	var found *Module
	for _, m := range c.Modules {
		if m.Namespace.Name == ns {
			switch {
			case m == found:
			case found != nil:
				return nil, fmt.Errorf("namespace %s matches two or more modules (%s, %s)",
					ns, found.Name, m.Name)
			default:
				found = m
			}
		}
	}
	c.byNS[ns] = found
	if found == nil {
		return nil, fmt.Errorf("%q: no such namespace", ns)
	}
	return found, nil
}

// FindModuleByPrefix either returns the Module specified by prefix or
// returns an error.
func (c *Context) FindModuleByPrefix(prefix string) (*Module, error) {
	if m, ok := c.byPrefix[prefix]; ok {
		if m == nil {
			return nil, fmt.Errorf("%s: no such prefix", prefix)
		}
		return m, nil
	}
	var found *Module
	for _, m := range c.Modules {
		if m.Prefix.Name == prefix {
			switch {
			case m == found:
			case found != nil:
				return nil, fmt.Errorf("prefix %s matches two or more modules (%s, %s)", prefix, found.Name, m.Name)
			default:
				found = m
			}
		}
	}
	c.byPrefix[prefix] = found
	if found == nil {
		return nil, fmt.Errorf("%s: no such prefix", prefix)
	}
	return found, nil
}

// process satisfies all include and import statements and verifies that all
// link ref paths reference a known node.  If an import or include
// references a [sub]module that is not already known, process will search
// for a .yang file that contains it, returning an error if not found.  An
// error is also returned if there is an unknown link ref path or other
// parsing errors.
//
// process must be called once all the source modules have been read in and
// prior to converting the Node tree into an Entry tree.
func (c *Context) process() []error {
	var mods []*Module
	var errs []error

	// Collect the list of modules we know about now so when we range
	// below we don't pick up new modules.  We assume the user tells us
	// explicitly which modules they are interested in.
	for _, m := range c.Modules {
		mods = append(mods, m)
	}
	for _, m := range mods {
		if err := c.include(m); err != nil {
			errs = append(errs, err)
		}
	}

	// Resolve identities before resolving typedefs, otherwise when we
	// resolve a typedef that has an identityref within it, the identity
	// dictionary has not yet been built.
	errs = append(errs, c.resolveIdentities()...)
	// Append any errors found trying to resolve typedefs.
	errs = append(errs, c.typeDict.resolveTypedefs()...)

	return errs
}

// Process processes all the modules and submodules that have been read
// into c.  While processing, if an include or import is found for which
// there is no matching module, Process attempts to locate the source file
// (using Path) and automatically load them.  If a file cannot be found then
// an error is returned.  When looking for a source file, Process searches
// for a file using the module's or submodule's name with ".yang" appended.
// After searching the current directory, the directories in Path are
// searched.
//
// Process builds Entry trees for each module and submodule in c.  These
// trees are accessed using the ToEntry method.  Process does augmentation
// on Entry trees once all the modules and submodules in c have been built.
// Following augmentation, Process inserts implied case statements.  I.e.,
//
//	choice interface-type {
//	    container ethernet { ... }
//	}
//
// has a case statement inserted to become:
//
//	choice interface-type {
//	    case ethernet {
//	        container ethernet { ... }
//	    }
//	}
//
// Process may return multiple errors if multiple errors were encountered
// while processing.  Even though multiple errors may be returned, this does
// not mean these are all the errors.  Process will terminate processing
// early based on the type and location of the error.
func (c *Context) Process() []error {
	errs := c.process()
	if len(errs) > 0 {
		return errorSort(errs)
	}

	// Compile feature statements into their resolved enabled/disabled
	// state before building Entry trees, so if-feature guards attached to
	// any node can be evaluated as soon as that node exists.
	errs = append(errs, c.compileFeatures()...)
	if len(errs) > 0 {
		return errorSort(errs)
	}

	for _, m := range c.Modules {
		errs = append(errs, c.ToEntry(m).GetErrors()...)
	}
	for _, m := range c.SubModules {
		errs = append(errs, c.ToEntry(m).GetErrors()...)
	}

	if len(errs) > 0 {
		return errorSort(errs)
	}

	// Prune nodes guarded by a disabled feature before augments run, so
	// a disabled node's subtree neither receives augments nor contributes
	// to later validation.
	for _, m := range c.Modules {
		errs = append(errs, c.pruneDisabledFeatures(c.ToEntry(m))...)
	}
	for _, m := range c.SubModules {
		errs = append(errs, c.pruneDisabledFeatures(c.ToEntry(m))...)
	}
	if len(errs) > 0 {
		return errorSort(errs)
	}

	// Now handle all the augments.  We don't have a good way to know
	// what order to process them in, so repeat until no progress is made.
	mods := make([]*Module, 0, len(c.Modules)+len(c.SubModules))
	for _, m := range c.Modules {
		mods = append(mods, m)
	}
	for _, m := range c.SubModules {
		mods = append(mods, m)
	}
	for len(mods) > 0 {
		var processed int
		for i := 0; i < len(mods); {
			m := mods[i]
			p, s := c.ToEntry(m).Augment(false)
			processed += p
			if s == 0 {
				mods[i] = mods[len(mods)-1]
				mods = mods[:len(mods)-1]
				continue
			}
			i++
		}
		if processed == 0 {
			break
		}
	}

	// Now fix up all the choice statements to add in the missing case
	// statements.
	for _, m := range c.Modules {
		c.ToEntry(m).FixChoice()
	}
	for _, m := range c.SubModules {
		c.ToEntry(m).FixChoice()
	}

	// Go through any modules that have remaining augments and collect
	// the errors.
	for _, m := range mods {
		c.ToEntry(m).Augment(true)
		errs = append(errs, c.ToEntry(m).GetErrors()...)
	}

	// Validate every leaf/leaf-list default against its compiled type,
	// now that augments have finished shaping the tree but before
	// deviations (which may themselves replace a default) run.
	for _, m := range c.Modules {
		errs = append(errs, c.validateDefaults(c.ToEntry(m))...)
	}
	for _, m := range c.SubModules {
		errs = append(errs, c.validateDefaults(c.ToEntry(m))...)
	}

	// The deviation statement is only valid under a module or submodule,
	// which allows us to avoid having to process it within ToEntry, and
	// rather we can just walk all modules and submodules *after* entries
	// are resolved.  This means we do not need to concern ourselves that
	// an entry does not exist.
	dvP := map[string]bool{} // cache modules handled, keyed by modname (both name and name@revision-date map here)
	for _, devmods := range []map[string]*Module{c.Modules, c.SubModules} {
		for _, m := range devmods {
			e := c.ToEntry(m)
			if !dvP[e.Name] {
				errs = append(errs, c.ApplyDeviate(e)...)
				dvP[e.Name] = true
			}
		}
	}

	return errorSort(errs)
}

// include resolves all the include and import statements for m.  It
// returns an error if m, or recursively, any of the modules it includes or
// imports, reference a module that cannot be found.
func (c *Context) include(m *Module) error {
	if c.includes[m] {
		return nil
	}
	c.includes[m] = true

	// First process any includes in this module.
	for _, i := range m.Include {
		im := c.FindModule(i)
		if im == nil {
			return fmt.Errorf("no such submodule: %s", i.Name)
		}
		// Process the include statements in our included module.
		if err := c.include(im); err != nil {
			return err
		}
		i.Module = im
	}

	// Next process any imports in this module.  Imports are used when
	// searching.
	for _, i := range m.Import {
		im := c.FindModule(i)
		if im == nil {
			return fmt.Errorf("no such module: %s", i.Name)
		}
		// Process the include statements in our included module.
		if err := c.include(im); err != nil {
			return err
		}

		i.Module = im
	}
	return nil
}
