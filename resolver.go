// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svelteast

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bufbuild/svelteast/svast"
)

// Resolver locates the inputs for a component.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is what a [Resolver] found for a component: its source, and
// the tree the Svelte compiler produced for it.
//
// Source is required. The tree may be given decoded, as Root, or encoded,
// as AST; if both are set, Root is used. Offsets in an encoded tree count
// UTF-16 code units, as the compiler emits them; offsets in a decoded tree
// must already be byte offsets.
type SearchResult struct {
	Source io.Reader
	AST    io.Reader
	Root   *svast.Root
}

// ResolverFunc is a simple function type that implements [Resolver].
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements [Resolver].
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver is a slice of resolvers, which are consulted in order
// until one can supply a result. If none of the constituent resolvers can
// supply a result, the error returned by the first resolver is returned. If
// the slice of resolvers is empty, all operations return [fs.ErrNotExist].
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements [Resolver].
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, fs.ErrNotExist
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// ASTSuffix is appended to a component's path to find the file holding its
// compiler output.
const ASTSuffix = ".json"

// SourceResolver loads a component's source from path, and the compiler's
// output for it from path + [ASTSuffix].
type SourceResolver struct {
	// Directories to search. If empty, paths are used as given.
	ImportPaths []string
	// Opens files. If nil, [os.Open] is used.
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements [Resolver].
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 {
		return r.open(path)
	}

	var e error
	for _, importPath := range r.ImportPaths {
		res, err := r.open(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return res, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) open(path string) (SearchResult, error) {
	accessor := r.Accessor
	if accessor == nil {
		accessor = func(path string) (io.ReadCloser, error) {
			return os.Open(path)
		}
	}
	src, err := accessor(path)
	if err != nil {
		return SearchResult{}, err
	}
	tree, err := accessor(path + ASTSuffix)
	if err != nil {
		_ = src.Close()
		return SearchResult{}, err
	}
	return SearchResult{Source: src, AST: tree}, nil
}
