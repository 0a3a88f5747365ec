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
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/teknohq/jobcatalog/model"
)

// CodePrefix starts every allocated job code.
const CodePrefix = "JOB-"

type jobsRepository struct {
	*baseRepository[model.Job]
}

// NextCode returns the next sequential job code. The last allocated code is
// the lexicographically highest code string.
//
// TODO: order by the numeric suffix once codes pass JOB-99; string order
// reads JOB-99 as later than JOB-100.
func (r *jobsRepository) NextCode(ctx context.Context) (string, error) {
	last := new(model.Job)
	err := r.db.NewSelect().
		Model(last).
		Column("code").
		Order("code DESC").
		Limit(1).
		Scan(ctx)

	next := 1
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return "", fmt.Errorf("failed to read last job code: %w", err)
	default:
		if n, ok := parseCode(last.Code); ok {
			next = n + 1
		}
	}

	// Two-digit zero padding below 10, unpadded from JOB-10 on.
	if next < 10 {
		return fmt.Sprintf("%s0%d", CodePrefix, next), nil
	}
	return fmt.Sprintf("%s%d", CodePrefix, next), nil
}

// parseCode extracts the numeric suffix of a well-formed job code.
// Malformed codes restart the sequence at 1.
func parseCode(code string) (int, bool) {
	if !strings.HasPrefix(code, CodePrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(code, CodePrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
