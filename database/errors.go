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
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLError classifies storage-engine failures independently of the dialect.
type SQLError int

const (
	UnknownErr SQLError = iota
	NoRowsErr
	NoTableErr
	ExistTableErr
	NoColumnErr
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
)

var mysqlErrorCodes = map[uint16]SQLError{
	1054: NoColumnErr,
	1060: ExistTableErr,
	1048: NotNullViolationErr,
	1049: NoTableErr,
	1062: DuplicateKeyErr,
	1146: NoTableErr,
	1216: ForeignKeyViolationErr,
	1217: ForeignKeyViolationErr,
	1265: DataTruncatedErr,
	1451: ForeignKeyViolationErr,
	1452: ForeignKeyViolationErr,
	3819: CheckConstraintViolationErr,
}

// substringMatchers maps postgres SQLSTATE markers and sqlite/pg message
// fragments onto the classification. Order matters: first match wins.
var substringMatchers = []struct {
	fragments []string
	kind      SQLError
}{
	{[]string{"sqlstate 23505", "duplicate key value", "unique constraint failed"}, DuplicateKeyErr},
	{[]string{"sqlstate 23502", "not-null constraint", "not null constraint failed"}, NotNullViolationErr},
	{[]string{"sqlstate 23503", "foreign key violation", "foreign key constraint failed"}, ForeignKeyViolationErr},
	{[]string{"sqlstate 23514", "check constraint"}, CheckConstraintViolationErr},
	{[]string{"sqlstate 42p01", "undefined table", "no such table"}, NoTableErr},
	{[]string{"sqlstate 42703", "undefined column", "no such column"}, NoColumnErr},
	{[]string{"sqlstate 22001", "string data right truncation", "data truncated"}, DataTruncatedErr},
}

// IsSqlError reports whether err originated in the storage engine and, if
// so, its classification. MySQL errors carry numeric codes; postgres and
// sqlite are matched on SQLSTATE markers or driver message fragments.
func IsSqlError(err error) (bool, SQLError) {
	if err == nil {
		return false, UnknownErr
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		if kind, ok := mysqlErrorCodes[mysqlErr.Number]; ok {
			return true, kind
		}
		return true, UnknownErr
	}

	s := strings.ToLower(err.Error())
	for _, m := range substringMatchers {
		for _, fragment := range m.fragments {
			if strings.Contains(s, fragment) {
				return true, m.kind
			}
		}
	}
	if strings.Contains(s, "relation") && strings.Contains(s, "already exists") {
		return true, ExistTableErr
	}
	return false, UnknownErr
}

// IsConstraintViolation reports whether err is a commit-time constraint
// rejection (uniqueness, foreign key, not-null, or check).
func IsConstraintViolation(err error) bool {
	ok, kind := IsSqlError(err)
	if !ok {
		return false
	}
	switch kind {
	case DuplicateKeyErr, NotNullViolationErr, ForeignKeyViolationErr, CheckConstraintViolationErr:
		return true
	default:
		return false
	}
}
