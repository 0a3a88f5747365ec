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

// Package jobcatalog implements the job-postings catalog: job, location,
// and department services over a staged-write unit of work, sequential job
// code allocation, and the in-memory listing pipeline.
package jobcatalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/teknohq/jobcatalog/database"
	"github.com/teknohq/jobcatalog/model"
	"github.com/teknohq/jobcatalog/repository"
	"github.com/teknohq/jobcatalog/types"
	"github.com/uptrace/bun"
)

var jobRelations = []string{"Location", "Department"}

// JobService manages job postings. Every call runs on its own unit of work.
type JobService struct {
	db   *bun.DB
	once sync.Once
}

// NewJobService returns a JobService bound to the global database.
func NewJobService() *JobService {
	return &JobService{}
}

// NewJobServiceWithDB returns a JobService bound to the given database.
func NewJobServiceWithDB(db *bun.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) handle() *bun.DB {
	s.once.Do(func() {
		if s.db == nil {
			s.db = database.GetDB()
		}
	})
	return s.db
}

// Create validates the request, allocates the next job code, and commits
// the new posting. The posted date mirrors the closing date on create.
func (s *JobService) Create(ctx context.Context, req *types.JobRequest) (*model.Job, error) {
	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	uow := repository.NewUnitOfWork(s.handle())
	if err := ensureJobReferences(ctx, uow, req); err != nil {
		return nil, err
	}

	code, err := uow.Jobs.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	job := &model.Job{
		Code:         code,
		Title:        req.Title,
		Description:  req.Description,
		LocationID:   req.LocationID,
		DepartmentID: req.DepartmentID,
		PostedDate:   req.ClosingDate,
		ClosingDate:  req.ClosingDate,
	}

	uow.Jobs.Add(job)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return job, nil
}

// Update applies the caller-mutable fields onto an existing job. The code
// is immutable; the posted date is reset to the update instant.
func (s *JobService) Update(ctx context.Context, id int64, req *types.JobRequest) (*model.Job, error) {
	if err := validateJobRequest(req); err != nil {
		return nil, err
	}

	uow := repository.NewUnitOfWork(s.handle())
	job, err := uow.Jobs.Get(ctx, &types.Query{Filter: types.ByID(id), Tracked: true})
	if err != nil {
		return nil, err
	}

	if err := ensureJobReferences(ctx, uow, req); err != nil {
		return nil, err
	}

	now := time.Now()
	job.Title = req.Title
	job.Description = req.Description
	job.LocationID = req.LocationID
	job.DepartmentID = req.DepartmentID
	job.ClosingDate = req.ClosingDate
	job.PostedDate = &now

	uow.Jobs.Update(job)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return job, nil
}

// Get returns the job with its location and department attached, or
// ErrNotFound.
func (s *JobService) Get(ctx context.Context, id int64) (*model.Job, error) {
	uow := repository.NewUnitOfWork(s.handle())
	return uow.Jobs.Get(ctx, &types.Query{
		Filter:    types.ByID(id),
		Relations: jobRelations,
	})
}

// List loads the candidate set with relations attached and runs the
// in-memory filter/sort/paginate pipeline over it.
func (s *JobService) List(ctx context.Context, req *types.JobListRequest) (*types.JobListResponse, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if req.PageNo < 1 || req.PageSize < 1 {
		return nil, &ValidationError{Field: "pageNo/pageSize", Reason: "must be greater than zero"}
	}

	uow := repository.NewUnitOfWork(s.handle())
	jobs, err := uow.Jobs.GetAll(ctx, &types.Query{Relations: jobRelations})
	if err != nil {
		return nil, err
	}
	return paginateJobs(jobs, req), nil
}

func validateJobRequest(req *types.JobRequest) error {
	if req == nil {
		return &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if req.LocationID <= 0 {
		return &ValidationError{Field: "locationId", Reason: "must be a valid id"}
	}
	if req.DepartmentID <= 0 {
		return &ValidationError{Field: "departmentId", Reason: "must be a valid id"}
	}
	return nil
}

// ensureJobReferences verifies the referenced location and department exist
// before any write is staged.
func ensureJobReferences(ctx context.Context, uow *repository.UnitOfWork, req *types.JobRequest) error {
	ok, err := uow.Locations.Any(ctx, types.ByID(req.LocationID))
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Field: "locationId", Reason: "does not exist"}
	}

	ok, err = uow.Departments.Any(ctx, types.ByID(req.DepartmentID))
	if err != nil {
		return err
	}
	if !ok {
		return &ValidationError{Field: "departmentId", Reason: "does not exist"}
	}
	return nil
}
