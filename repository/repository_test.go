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

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teknohq/jobcatalog/database"
	"github.com/teknohq/jobcatalog/model"
	"github.com/teknohq/jobcatalog/repository"
	"github.com/teknohq/jobcatalog/types"
	"github.com/uptrace/bun"
)

func newTestDB(t *testing.T, name string) *bun.DB {
	t.Helper()

	cfg := database.DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	// One shared in-memory database lives as long as its single connection.
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1

	manager := database.NewDatabaseManager(cfg)
	ctx := context.Background()
	require.NoError(t, manager.Connect(ctx))
	t.Cleanup(func() { _ = manager.Disconnect() })
	require.NoError(t, manager.RunMigrations(ctx))
	return manager.GetDB()
}

func seedReferences(t *testing.T, db *bun.DB) (*model.Location, *model.Department) {
	t.Helper()
	ctx := context.Background()

	location := &model.Location{Title: "Remote"}
	_, err := db.NewInsert().Model(location).Exec(ctx)
	require.NoError(t, err)

	department := &model.Department{Title: "Eng"}
	_, err = db.NewInsert().Model(department).Exec(ctx)
	require.NoError(t, err)

	return location, department
}

func seedJob(t *testing.T, db *bun.DB, code string, locationID, departmentID int64) *model.Job {
	t.Helper()
	posted := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	job := &model.Job{
		Code:         code,
		Title:        "Engineer",
		Description:  "builds things",
		LocationID:   locationID,
		DepartmentID: departmentID,
		PostedDate:   &posted,
	}
	_, err := db.NewInsert().Model(job).Exec(context.Background())
	require.NoError(t, err)
	return job
}

func countJobs(t *testing.T, db *bun.DB) int {
	t.Helper()
	n, err := db.NewSelect().Model((*model.Job)(nil)).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestNextCodeStartsAtOne(t *testing.T) {
	db := newTestDB(t, "nextcode_empty")
	uow := repository.NewUnitOfWork(db)

	code, err := uow.Jobs.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JOB-01", code)
}

func TestNextCodeIncrementsFromLast(t *testing.T) {
	db := newTestDB(t, "nextcode_seq")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-01", location.ID, department.ID)
	seedJob(t, db, "JOB-02", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	code, err := uow.Jobs.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JOB-03", code)
}

func TestNextCodeDropsPaddingAtTen(t *testing.T) {
	db := newTestDB(t, "nextcode_ten")
	location, department := seedReferences(t, db)
	for i := 1; i <= 9; i++ {
		seedJob(t, db, fmt.Sprintf("JOB-0%d", i), location.ID, department.ID)
	}

	uow := repository.NewUnitOfWork(db)
	code, err := uow.Jobs.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JOB-10", code)
}

func TestNextCodeMalformedLastRestartsAtOne(t *testing.T) {
	db := newTestDB(t, "nextcode_malformed")
	location, department := seedReferences(t, db)
	seedJob(t, db, "LEGACY-7", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	code, err := uow.Jobs.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JOB-01", code)
}

// Pins the string-ordering behavior past JOB-99: "JOB-99" sorts above
// "JOB-100", so the allocator reads 99 as the last number and hands out a
// code that is already taken.
func TestNextCodeStringOrderingPastNinetyNine(t *testing.T) {
	db := newTestDB(t, "nextcode_rollover")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-99", location.ID, department.ID)
	seedJob(t, db, "JOB-100", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	code, err := uow.Jobs.NextCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JOB-100", code)
}

func TestStagedChangesAreNotDurableBeforeCommit(t *testing.T) {
	db := newTestDB(t, "staging_deferred")
	location, department := seedReferences(t, db)

	uow := repository.NewUnitOfWork(db)
	uow.Jobs.Add(&model.Job{
		Code:         "JOB-01",
		LocationID:   location.ID,
		DepartmentID: department.ID,
	})

	assert.Equal(t, 1, uow.Pending())
	assert.Zero(t, countJobs(t, db))

	require.NoError(t, uow.Commit(context.Background()))
	assert.Zero(t, uow.Pending())
	assert.Equal(t, 1, countJobs(t, db))
}

func TestCommitAssignsIdentity(t *testing.T) {
	db := newTestDB(t, "staging_identity")
	location, department := seedReferences(t, db)

	job := &model.Job{Code: "JOB-01", LocationID: location.ID, DepartmentID: department.ID}
	uow := repository.NewUnitOfWork(db)
	uow.Jobs.Add(job)

	assert.Zero(t, job.ID)
	require.NoError(t, uow.Commit(context.Background()))
	assert.NotZero(t, job.ID)
}

func TestCommitIsAtomic(t *testing.T) {
	db := newTestDB(t, "staging_atomic")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-01", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	uow.Jobs.Add(&model.Job{Code: "JOB-02", LocationID: location.ID, DepartmentID: department.ID})
	// Duplicate code trips the unique index during flush.
	uow.Jobs.Add(&model.Job{Code: "JOB-01", LocationID: location.ID, DepartmentID: department.ID})

	err := uow.Commit(context.Background())
	require.Error(t, err)

	ok, kind := database.IsSqlError(err)
	assert.True(t, ok)
	assert.Equal(t, database.DuplicateKeyErr, kind)

	// Neither staged insert became durable, and the work stays staged.
	assert.Equal(t, 1, countJobs(t, db))
	assert.Equal(t, 2, uow.Pending())
}

func TestUpdateIsIdempotentPerInstance(t *testing.T) {
	db := newTestDB(t, "staging_idempotent")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-01", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	job, err := uow.Jobs.Get(context.Background(), &types.Query{
		Filter:  types.ByID(1),
		Tracked: true,
	})
	require.NoError(t, err)
	assert.True(t, uow.Tracked(job))

	job.Title = "Staff Engineer"
	uow.Jobs.Update(job)
	uow.Jobs.Update(job)
	assert.Equal(t, 1, uow.Pending())

	require.NoError(t, uow.Commit(context.Background()))

	fetched, err := repository.NewUnitOfWork(db).Jobs.Get(context.Background(), &types.Query{Filter: types.ByID(1)})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", fetched.Title)
}

func TestUntrackedReadsStageNothing(t *testing.T) {
	db := newTestDB(t, "untracked_reads")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-01", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	ctx := context.Background()

	jobs, err := uow.Jobs.GetAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.False(t, uow.Tracked(jobs[0]))

	_, err = uow.Jobs.Get(ctx, &types.Query{Filter: types.ByID(jobs[0].ID)})
	require.NoError(t, err)

	assert.Zero(t, uow.Pending())
	assert.Equal(t, 1, countJobs(t, db))
}

func TestGetNotFound(t *testing.T) {
	db := newTestDB(t, "get_not_found")

	uow := repository.NewUnitOfWork(db)
	_, err := uow.Jobs.Get(context.Background(), &types.Query{Filter: types.ByID(42)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAnyChecksExistenceWithoutRows(t *testing.T) {
	db := newTestDB(t, "any_existence")
	location, _ := seedReferences(t, db)

	uow := repository.NewUnitOfWork(db)
	ctx := context.Background()

	ok, err := uow.Locations.Any(ctx, types.ByID(location.ID))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uow.Locations.Any(ctx, types.ByID(999))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAllWithRelations(t *testing.T) {
	db := newTestDB(t, "relations")
	location, department := seedReferences(t, db)
	seedJob(t, db, "JOB-01", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	jobs, err := uow.Jobs.GetAll(context.Background(), &types.Query{
		Relations: []string{"Location", "Department"},
	})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NotNil(t, jobs[0].Location)
	require.NotNil(t, jobs[0].Department)
	assert.Equal(t, "Remote", jobs[0].Location.Title)
	assert.Equal(t, "Eng", jobs[0].Department.Title)
}

func TestRemoveStagesDelete(t *testing.T) {
	db := newTestDB(t, "remove")
	location, department := seedReferences(t, db)
	job := seedJob(t, db, "JOB-01", location.ID, department.ID)

	uow := repository.NewUnitOfWork(db)
	uow.Jobs.Remove(job)
	assert.Equal(t, 1, countJobs(t, db))

	require.NoError(t, uow.Commit(context.Background()))
	assert.Zero(t, countJobs(t, db))
}
