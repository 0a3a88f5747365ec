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

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsSqlErrorClassifiesMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   bool
		kind SQLError
	}{
		{"nil", nil, false, UnknownErr},
		{"plain error", errors.New("dial tcp: connection refused"), false, UnknownErr},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: jobs.code"), true, DuplicateKeyErr},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "jobs_code_key" (SQLSTATE 23505)`), true, DuplicateKeyErr},
		{"postgres foreign key", errors.New("insert or update violates foreign key violation (SQLSTATE 23503)"), true, ForeignKeyViolationErr},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), true, ForeignKeyViolationErr},
		{"sqlite not null", errors.New("NOT NULL constraint failed: departments.title"), true, NotNullViolationErr},
		{"postgres missing table", errors.New(`relation "jobs" does not exist (SQLSTATE 42P01)`), true, NoTableErr},
		{"sqlite missing table", errors.New("no such table: jobs"), true, NoTableErr},
		{"sqlite missing column", errors.New("no such column: codename"), true, NoColumnErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is, kind := IsSqlError(tt.err)
			assert.Equal(t, tt.is, is)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestIsSqlErrorClassifiesMySQLCodes(t *testing.T) {
	tests := []struct {
		number uint16
		kind   SQLError
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1452, ForeignKeyViolationErr},
		{1146, NoTableErr},
		{9999, UnknownErr},
	}

	for _, tt := range tests {
		err := fmt.Errorf("exec failed: %w", &mysql.MySQLError{Number: tt.number, Message: "boom"})
		is, kind := IsSqlError(err)
		assert.True(t, is, "code %d", tt.number)
		assert.Equal(t, tt.kind, kind, "code %d", tt.number)
	}
}

func TestIsConstraintViolation(t *testing.T) {
	assert.True(t, IsConstraintViolation(errors.New("UNIQUE constraint failed: jobs.code")))
	assert.True(t, IsConstraintViolation(&mysql.MySQLError{Number: 1062, Message: "dup"}))
	assert.False(t, IsConstraintViolation(errors.New("no such table: jobs")))
	assert.False(t, IsConstraintViolation(errors.New("connection reset by peer")))
	assert.False(t, IsConstraintViolation(nil))
}
