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

// Package source provides the source text a conversion runs over, and the
// spans and locations that the converted tree reports.
//
// [File] is a source file's path and contents, plus the book-keeping needed
// to turn byte offsets into line/column locations. [Span] is a region of a
// [File]. Columns can be measured in several [Unit]s: the unified tree uses
// [UTF16] because that is what JavaScript tooling expects, while diagnostics
// use [TermWidth].
package source
