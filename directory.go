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

// LocationService manages the posting sites jobs reference. Locations are
// created and updated in place; the catalog never deletes them.
type LocationService struct {
	db   *bun.DB
	once sync.Once
}

// NewLocationService returns a LocationService bound to the global database.
func NewLocationService() *LocationService {
	return &LocationService{}
}

// NewLocationServiceWithDB returns a LocationService bound to the given database.
func NewLocationServiceWithDB(db *bun.DB) *LocationService {
	return &LocationService{db: db}
}

func (s *LocationService) handle() *bun.DB {
	s.once.Do(func() {
		if s.db == nil {
			s.db = database.GetDB()
		}
	})
	return s.db
}

// Create commits a new location.
func (s *LocationService) Create(ctx context.Context, req *types.LocationRequest) (*model.Location, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}

	now := time.Now()
	location := &model.Location{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Zip:         req.Zip,
		CreatedAt:   &now,
		UpdatedAt:   &now,
	}

	uow := repository.NewUnitOfWork(s.handle())
	uow.Locations.Add(location)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return location, nil
}

// Update applies the request fields onto an existing location, or returns
// ErrNotFound.
func (s *LocationService) Update(ctx context.Context, id int64, req *types.LocationRequest) (*model.Location, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}

	uow := repository.NewUnitOfWork(s.handle())
	location, err := uow.Locations.Get(ctx, &types.Query{Filter: types.ByID(id), Tracked: true})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	location.Title = req.Title
	location.Description = req.Description
	location.City = req.City
	location.State = req.State
	location.Country = req.Country
	location.Zip = req.Zip
	location.UpdatedAt = &now

	uow.Locations.Update(location)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return location, nil
}

// All returns every location.
func (s *LocationService) All(ctx context.Context) ([]*model.Location, error) {
	uow := repository.NewUnitOfWork(s.handle())
	return uow.Locations.GetAll(ctx, nil)
}

// DepartmentService manages the hiring units jobs reference.
type DepartmentService struct {
	db   *bun.DB
	once sync.Once
}

// NewDepartmentService returns a DepartmentService bound to the global database.
func NewDepartmentService() *DepartmentService {
	return &DepartmentService{}
}

// NewDepartmentServiceWithDB returns a DepartmentService bound to the given database.
func NewDepartmentServiceWithDB(db *bun.DB) *DepartmentService {
	return &DepartmentService{db: db}
}

func (s *DepartmentService) handle() *bun.DB {
	s.once.Do(func() {
		if s.db == nil {
			s.db = database.GetDB()
		}
	})
	return s.db
}

// Create commits a new department.
func (s *DepartmentService) Create(ctx context.Context, req *types.DepartmentRequest) (*model.Department, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}

	department := &model.Department{Title: req.Title}

	uow := repository.NewUnitOfWork(s.handle())
	uow.Departments.Add(department)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return department, nil
}

// Update renames an existing department, or returns ErrNotFound.
func (s *DepartmentService) Update(ctx context.Context, id int64, req *types.DepartmentRequest) (*model.Department, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}

	uow := repository.NewUnitOfWork(s.handle())
	department, err := uow.Departments.Get(ctx, &types.Query{Filter: types.ByID(id), Tracked: true})
	if err != nil {
		return nil, err
	}

	department.Title = req.Title
	uow.Departments.Update(department)
	if err := uow.Commit(ctx); err != nil {
		return nil, classifyCommit(err)
	}
	return department, nil
}

// All returns every department.
func (s *DepartmentService) All(ctx context.Context) ([]*model.Department, error) {
	uow := repository.NewUnitOfWork(s.handle())
	return uow.Departments.GetAll(ctx, nil)
}
