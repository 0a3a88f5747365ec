/*
 * Copyright 2025 teknohq.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// QueryFilter describes a WHERE clause schema and its argument values.
// Filters are plain data; the repository layer interprets them against
// the active dialect.
type QueryFilter struct {
	Schema string
	Args   []interface{}
}

// NewQueryFilter creates a new query filter with schema and args.
func NewQueryFilter(schema string, args ...interface{}) *QueryFilter {
	return &QueryFilter{schema, args}
}

// ByID returns the id-equality filter used by every single-row lookup.
func ByID(id int64) *QueryFilter {
	return NewQueryFilter("?TableAlias.id = ?", id)
}

// Query bundles the options accepted by repository reads.
//
// Relations lists related entities to materialize in the same round trip
// (e.g. a job's "Location" and "Department"). Tracked controls whether
// returned rows are registered with the owning session; untracked reads
// (the default) are detached snapshots and never touch staged state.
type Query struct {
	Filter    *QueryFilter
	Relations []string
	Orders    []string // "code DESC", "title ASC"
	Limit     int
	Tracked   bool
}
