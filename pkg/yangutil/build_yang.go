// Copyright 2020 Google Inc.
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

// Package yangutil contains high-level helpers for loading a set of YANG
// modules and compiling them down to yang.Entry trees, for callers that
// don't want to manage a yang.Context themselves.
package yangutil

import (
	"fmt"

	"github.com/openyang/yangcore/pkg/yang"
)

// ProcessModules takes a list of either .yang file paths or module/submodule
// names, and a list of include directories, and runs the parser and compiler
// against them, returning a map of top level module name to compiled
// yang.Entry.
func ProcessModules(yangfiles, path []string) (map[string]*yang.Entry, []error) {
	return Parse(yangfiles, path)
}

// Parse is ProcessModules under the name the caller more commonly reaches
// for when not carrying parse options.
func Parse(yangfiles, path []string) (map[string]*yang.Entry, []error) {
	return parse(yangfiles, path, yang.NewContext())
}

// ParseWithOptions is Parse, but with ctx.ParseOptions set to parseOptions
// before any file is read, so options like
// IgnoreSubmoduleCircularDependencies take effect.
func ParseWithOptions(yangfiles, path []string, parseOptions yang.Options) (map[string]*yang.Entry, []error) {
	ctx := yang.NewContext()
	ctx.ParseOptions = parseOptions
	return parse(yangfiles, path, ctx)
}

func parse(yangfiles, path []string, ctx *yang.Context) (map[string]*yang.Entry, []error) {
	for _, p := range path {
		yang.AddPath(fmt.Sprintf("%s/...", p))
	}

	var processErr []error
	for _, name := range yangfiles {
		if name == "" {
			continue
		}
		if err := ctx.Read(name); err != nil {
			processErr = append(processErr, err)
		}
	}

	if len(processErr) > 0 {
		return nil, processErr
	}

	if errs := ctx.Process(); len(errs) != 0 {
		return nil, errs
	}

	entries := make(map[string]*yang.Entry)
	for _, m := range ctx.Modules {
		e := yang.ToEntry(m)
		entries[e.Name] = e
	}

	return entries, nil
}
