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

// Package model holds the catalog entities. Identity is an integer surrogate
// key assigned by storage on insert. The models register themselves for
// table creation; referenced tables carry lower priorities so they are
// created before the jobs table.
package model

import (
	"time"

	"github.com/teknohq/jobcatalog/database"
	"github.com/uptrace/bun"
)

// Department is a hiring organizational unit referenced by jobs.
type Department struct {
	bun.BaseModel `bun:"table:departments,alias:d"`

	ID    int64  `bun:"id,pk,autoincrement" json:"id"`
	Title string `bun:"title,notnull" json:"title"`
}

// Location is a posting site referenced by jobs.
type Location struct {
	bun.BaseModel `bun:"table:locations,alias:l"`

	ID          int64      `bun:"id,pk,autoincrement" json:"id"`
	Title       string     `bun:"title,notnull" json:"title"`
	Description string     `bun:"description" json:"description,omitempty"`
	City        string     `bun:"city" json:"city,omitempty"`
	State       string     `bun:"state" json:"state,omitempty"`
	Country     string     `bun:"country" json:"country,omitempty"`
	Zip         string     `bun:"zip" json:"zip,omitempty"`
	CreatedAt   *time.Time `bun:"created_at,nullzero" json:"created_at,omitempty"`
	UpdatedAt   *time.Time `bun:"updated_at,nullzero" json:"updated_at,omitempty"`
}

// Job is a posting. Code is unique, human readable (JOB-01, JOB-02, ...),
// and immutable after creation; code and posted date are assigned by the
// catalog, never by callers.
type Job struct {
	bun.BaseModel `bun:"table:jobs,alias:j"`

	ID           int64       `bun:"id,pk,autoincrement" json:"id"`
	Code         string      `bun:"code,notnull,unique" json:"code"`
	Title        string      `bun:"title" json:"title,omitempty"`
	Description  string      `bun:"description" json:"description,omitempty"`
	LocationID   int64       `bun:"location_id,notnull" json:"location_id"`
	Location     *Location   `bun:"rel:belongs-to,join:location_id=id" json:"location,omitempty"`
	PostedDate   *time.Time  `bun:"posted_date,nullzero" json:"posted_date,omitempty"`
	ClosingDate  *time.Time  `bun:"closing_date,nullzero" json:"closing_date,omitempty"`
	DepartmentID int64       `bun:"department_id,notnull" json:"department_id"`
	Department   *Department `bun:"rel:belongs-to,join:department_id=id" json:"department,omitempty"`
}

func init() {
	database.RegisteredModel(database.NewModelAdapter((*Department)(nil), 10))
	database.RegisteredModel(database.NewModelAdapter((*Location)(nil), 20))
	database.RegisteredModel(database.NewModelAdapter((*Job)(nil), 30))
}
