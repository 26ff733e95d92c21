/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package mapper resolves taxonomy kinds (and their reason
// sub-classifications) into HTTP and gRPC statuses.
//
// A mapper is built once from library defaults plus user options and then
// frozen: the resulting apis.Mapper is immutable and safe for concurrent use.
// Resolution precedence, highest to lowest:
//
//  1. exact per-kind override;
//  2. per-kind reason rule (exact reason match);
//  3. per-kind default (library or user overridden);
//  4. hardcoded ultimate fallback (500 / codes.Internal).
//
// The reason space of this taxonomy is flat (the closed set of domain
// reasons), so rules match reasons exactly rather than by hierarchical
// prefix.
package mapper
