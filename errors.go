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
	"errors"
	"fmt"

	"github.com/teknohq/jobcatalog/database"
	"github.com/teknohq/jobcatalog/repository"
)

// ErrNotFound is returned when the addressed entity does not exist.
// It aliases the repository sentinel so callers need only one check.
var ErrNotFound = repository.ErrNotFound

// ErrConflict marks commit-time constraint rejections, most likely two
// concurrent job creations racing for the same code. Not retried here;
// callers decide how to report it.
var ErrConflict = errors.New("constraint violation")

// ValidationError reports a request field the catalog rejected before any
// storage mutation was attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// classifyCommit maps storage-engine constraint rejections onto ErrConflict
// and passes every other failure through unchanged.
func classifyCommit(err error) error {
	if err == nil {
		return nil
	}
	if database.IsConstraintViolation(err) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
