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
	"sort"
	"strings"
	"time"

	"github.com/teknohq/jobcatalog/model"
	"github.com/teknohq/jobcatalog/types"
)

// paginateJobs turns a loaded candidate set into one listing page: filter,
// count, sort by posted date descending, paginate, project. Total is always
// the filtered-set size, also when the requested page is past the end.
func paginateJobs(jobs []*model.Job, req *types.JobListRequest) *types.JobListResponse {
	filtered := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		if req.Q != "" && !strings.Contains(job.Title, req.Q) {
			continue
		}
		if req.LocationID != 0 && job.LocationID != req.LocationID {
			continue
		}
		if req.DepartmentID != 0 && job.DepartmentID != req.DepartmentID {
			continue
		}
		filtered = append(filtered, job)
	}

	total := len(filtered)

	sort.SliceStable(filtered, func(i, j int) bool {
		return postedAt(filtered[i]).After(postedAt(filtered[j]))
	})

	// Bounds come from page arithmetic that must not overflow: huge page
	// numbers or sizes land on an empty page, never a wrapped offset.
	pages := total / req.PageSize
	if total%req.PageSize != 0 {
		pages++
	}
	offset := total
	if req.PageNo <= pages {
		offset = (req.PageNo - 1) * req.PageSize
	}
	end := total
	if req.PageSize < total-offset {
		end = offset + req.PageSize
	}

	data := make([]types.JobListItem, 0, end-offset)
	for _, job := range filtered[offset:end] {
		data = append(data, projectJob(job))
	}

	return &types.JobListResponse{Total: total, Data: data}
}

func postedAt(job *model.Job) time.Time {
	if job.PostedDate != nil {
		return *job.PostedDate
	}
	return time.Time{}
}

func projectJob(job *model.Job) types.JobListItem {
	item := types.JobListItem{
		ID:          job.ID,
		Code:        job.Code,
		Title:       job.Title,
		PostedDate:  job.PostedDate,
		ClosingDate: job.ClosingDate,
	}
	if job.Location != nil {
		item.Location = job.Location.Title
	}
	if job.Department != nil {
		item.Department = job.Department.Title
	}
	return item
}
