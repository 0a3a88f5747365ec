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

package repository

import (
	"context"
	"errors"

	"github.com/teknohq/jobcatalog/model"
	"github.com/teknohq/jobcatalog/types"
)

// ErrNotFound is returned by Get when no row matches the filter.
var ErrNotFound = errors.New("entity not found")

// Repository defines the uniform query/mutate surface over one entity type.
//
// Reads go straight to storage. Mutations only stage changes in the owning
// session; nothing is durable until the unit of work commits. Get treats
// the filter as unique: if more than one row matches, any one of them may
// be returned.
type Repository[T any] interface {
	// GetAll returns the rows matching q (nil q = all rows).
	GetAll(ctx context.Context, q *types.Query) ([]*T, error)

	// Get returns the single row matching q, or ErrNotFound.
	Get(ctx context.Context, q *types.Query) (*T, error)

	// Any reports whether at least one row matches the filter, without
	// materializing rows.
	Any(ctx context.Context, filter *types.QueryFilter) (bool, error)

	// Add stages an insert. The entity's id is assigned at commit.
	Add(entity *T)

	// Update stages an update for an entity whose fields the caller has
	// already mutated. Idempotent per entity instance.
	Update(entity *T)

	// Remove stages a delete.
	Remove(entity *T)
}

// DepartmentsRepository manages department rows.
type DepartmentsRepository interface {
	Repository[model.Department]
}

// LocationsRepository manages location rows.
type LocationsRepository interface {
	Repository[model.Location]
}

// JobsRepository manages job rows and allocates job codes.
type JobsRepository interface {
	Repository[model.Job]

	// NextCode returns the next sequential job code (JOB-01, JOB-02, ...).
	// Allocation is not serialized across units of work; the unique index
	// on jobs.code is the commit-time backstop.
	NextCode(ctx context.Context) (string, error)
}
