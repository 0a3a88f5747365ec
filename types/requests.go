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

import "time"

// JobRequest carries the caller-supplied fields for creating or updating a
// job. Code and posted date are assigned by the catalog, never by callers.
type JobRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	LocationID   int64      `json:"locationId"`
	DepartmentID int64      `json:"departmentId"`
	ClosingDate  *time.Time `json:"closingDate"`
}

// LocationRequest carries the caller-supplied fields for a location.
type LocationRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	Zip         string `json:"zip,omitempty"`
}

// DepartmentRequest carries the caller-supplied fields for a department.
type DepartmentRequest struct {
	Title string `json:"title"`
}

// JobListRequest describes the listing query: optional title substring,
// optional location/department filters, and 1-based pagination.
type JobListRequest struct {
	Q            string `json:"q,omitempty"`
	PageNo       int    `json:"pageNo"`
	PageSize     int    `json:"pageSize"`
	LocationID   int64  `json:"locationId,omitempty"`
	DepartmentID int64  `json:"departmentId,omitempty"`
}

// JobListItem is the listing projection of a job with its related titles.
type JobListItem struct {
	ID          int64      `json:"id"`
	Code        string     `json:"code"`
	Title       string     `json:"title"`
	Location    string     `json:"location"`
	Department  string     `json:"department"`
	PostedDate  *time.Time `json:"postedDate"`
	ClosingDate *time.Time `json:"closingDate"`
}

// JobListResponse holds the filtered total and one page of items. Total is
// computed before pagination, so it is stable across pages.
type JobListResponse struct {
	Total int           `json:"total"`
	Data  []JobListItem `json:"data"`
}
