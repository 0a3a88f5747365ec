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

	"github.com/teknohq/jobcatalog/model"
	"github.com/uptrace/bun"
)

// UnitOfWork aggregates the catalog repositories behind one commit boundary.
//
// A unit of work is a short-lived value: create one per logical request,
// read and stage changes through its repositories, then call Commit once.
// All staged changes flush inside a single transaction, so one request's
// writes are all-or-nothing. Units of work share nothing across requests
// beyond the connection pool.
type UnitOfWork struct {
	session *session

	Jobs        JobsRepository
	Locations   LocationsRepository
	Departments DepartmentsRepository
}

// NewUnitOfWork creates a unit of work over the given database handle.
func NewUnitOfWork(db *bun.DB) *UnitOfWork {
	s := newSession(db)
	return &UnitOfWork{
		session:     s,
		Jobs:        &jobsRepository{newBaseRepository[model.Job](db, s)},
		Locations:   newBaseRepository[model.Location](db, s),
		Departments: newBaseRepository[model.Department](db, s),
	}
}

// Commit flushes all staged changes in staging order inside one
// transaction. On failure nothing is durable and the changes stay staged.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	return u.session.flush(ctx)
}

// Pending returns the number of staged, uncommitted changes.
func (u *UnitOfWork) Pending() int {
	return u.session.pending()
}

// Tracked reports whether the entity instance was loaded through a tracked
// read on this unit of work.
func (u *UnitOfWork) Tracked(entity interface{}) bool {
	return u.session.isTracked(entity)
}
