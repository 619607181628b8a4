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

// This file implements deviation application (RFC 7950 section 7.20.3).
// A deviation statement names a target schema node by absolute path and a
// list of deviate statements that add, replace, delete, or remove
// ("not-supported") properties of that node.

import "fmt"

// ApplyDeviate applies every deviation statement found in e's module (e must
// be the Entry for a *Module or *Module submodule) to its target Entry.  It
// returns a list of errors encountered while resolving deviation targets or
// applying individual deviate statements; per-deviate errors do not stop
// processing of the remaining deviations.
func (c *Context) ApplyDeviate(e *Entry) []error {
	m, ok := e.Node.(*Module)
	if !ok {
		return nil
	}

	var errs []error
	for _, d := range m.Deviation {
		target := e.Find(d.Name)
		if target == nil {
			errs = append(errs, fmt.Errorf("%s: deviation target not found: %s", Source(d), d.Name))
			continue
		}
		for _, dev := range d.Deviate {
			if err := c.applyDeviate(target, dev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}

func (c *Context) applyDeviate(e *Entry, dev *Deviate) error {
	switch dev.Name {
	case "not-supported":
		if e.Parent != nil && e.Parent.Dir != nil {
			delete(e.Parent.Dir, e.Name)
		}
		return nil
	case "add":
		return c.deviateAdd(e, dev)
	case "replace":
		return c.deviateReplace(e, dev)
	case "delete":
		return c.deviateDelete(e, dev)
	default:
		return fmt.Errorf("%s: unknown deviate argument: %s", Source(dev), dev.Name)
	}
}

func (c *Context) deviateAdd(e *Entry, dev *Deviate) error {
	if dev.Config != nil && e.Config == TSUnset {
		cfg, err := configValue(dev, dev.Config)
		if err != nil {
			return err
		}
		e.Config = cfg
	}
	if dev.Default != nil && e.Default == "" {
		e.Default = dev.Default.Name
	}
	if dev.Mandatory != nil && e.Mandatory == TSUnset {
		mand, err := configValue(dev, dev.Mandatory)
		if err != nil {
			return err
		}
		e.Mandatory = mand
		e.Extra["mandatory"] = append(e.Extra["mandatory"], dev.Mandatory)
	}
	if dev.MaxElements != nil || dev.MinElements != nil {
		if e.ListAttr == nil {
			e.ListAttr = &ListAttr{}
		}
		if dev.MaxElements != nil {
			e.ListAttr.MaxElements = dev.MaxElements
		}
		if dev.MinElements != nil {
			e.ListAttr.MinElements = dev.MinElements
		}
	}
	for _, must := range dev.Must {
		e.Extra["must"] = append(e.Extra["must"], must)
	}
	if dev.Type != nil {
		if errs := dev.Type.resolve(c.typeDict); errs != nil {
			return errs[0]
		}
		e.Type = dev.Type.YangType
	}
	for _, u := range dev.Unique {
		e.Extra["unique"] = append(e.Extra["unique"], u)
	}
	if dev.Units != nil {
		e.Extra["units"] = append(e.Extra["units"], dev.Units)
	}
	return nil
}

func (c *Context) deviateReplace(e *Entry, dev *Deviate) error {
	if dev.Config != nil {
		cfg, err := configValue(dev, dev.Config)
		if err != nil {
			return err
		}
		e.Config = cfg
	}
	if dev.Default != nil {
		e.Default = dev.Default.Name
	}
	if dev.Mandatory != nil {
		mand, err := configValue(dev, dev.Mandatory)
		if err != nil {
			return err
		}
		e.Mandatory = mand
	}
	if dev.MaxElements != nil || dev.MinElements != nil {
		if e.ListAttr == nil {
			e.ListAttr = &ListAttr{}
		}
		if dev.MaxElements != nil {
			e.ListAttr.MaxElements = dev.MaxElements
		}
		if dev.MinElements != nil {
			e.ListAttr.MinElements = dev.MinElements
		}
	}
	if dev.Type != nil {
		if errs := dev.Type.resolve(c.typeDict); errs != nil {
			return errs[0]
		}
		e.Type = dev.Type.YangType
	}
	if dev.Units != nil {
		e.Extra["units"] = []interface{}{dev.Units}
	}
	return nil
}

func (c *Context) deviateDelete(e *Entry, dev *Deviate) error {
	if dev.Default != nil && e.Default == dev.Default.Name {
		e.Default = ""
	}
	if len(dev.Must) > 0 {
		var names []string
		for _, m := range dev.Must {
			names = append(names, m.Name)
		}
		e.Extra["must"] = removeMatchingValues(e.Extra["must"], names)
	}
	if len(dev.Unique) > 0 {
		var names []string
		for _, u := range dev.Unique {
			names = append(names, u.Name)
		}
		e.Extra["unique"] = removeMatchingValues(e.Extra["unique"], names)
	}
	if dev.Units != nil {
		delete(e.Extra, "units")
	}
	return nil
}

// removeMatchingValues returns have with every *Must or *Value element whose
// Name appears in remove dropped.  deviateDelete calls it with the names of
// the deviation's must conditions and of its unique arguments.
func removeMatchingValues(have []interface{}, remove []string) []interface{} {
	var out []interface{}
	for _, h := range have {
		drop := false
		switch hv := h.(type) {
		case *Must:
			for _, r := range remove {
				if hv.Name == r {
					drop = true
					break
				}
			}
		case *Value:
			for _, r := range remove {
				if hv.Name == r {
					drop = true
					break
				}
			}
		}
		if !drop {
			out = append(out, h)
		}
	}
	return out
}
