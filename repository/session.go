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
	"sync"

	"github.com/uptrace/bun"
)

type opKind int

const (
	opInsert opKind = iota
	opUpdate
	opDelete
)

type stagedOp struct {
	kind   opKind
	entity interface{}
}

// session collects the staged changes of one unit of work. Staging the same
// entity instance twice with the same kind is a no-op, so repeated dirty
// marks do not produce duplicate statements at flush time.
type session struct {
	db      *bun.DB
	mu      sync.Mutex
	ops     []stagedOp
	staged  map[interface{}]opKind
	tracked map[interface{}]struct{}
}

func newSession(db *bun.DB) *session {
	return &session{
		db:      db,
		staged:  make(map[interface{}]opKind),
		tracked: make(map[interface{}]struct{}),
	}
}

func (s *session) stage(kind opKind, entity interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.staged[entity]; ok && prev == kind {
		return
	}
	s.staged[entity] = kind
	s.ops = append(s.ops, stagedOp{kind: kind, entity: entity})
}

// track registers an entity loaded through a tracked read so callers can
// write it back through this session.
func (s *session) track(entity interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracked[entity] = struct{}{}
}

// isTracked reports whether the entity instance came from a tracked read
// on this session.
func (s *session) isTracked(entity interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tracked[entity]
	return ok
}

// pending returns the number of staged operations.
func (s *session) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}

// flush applies all staged operations in staging order inside a single
// transaction. On success the flushed ops leave the session; on failure
// every staged change remains staged and nothing is durable.
func (s *session) flush(ctx context.Context) error {
	s.mu.Lock()
	ops := make([]stagedOp, len(s.ops))
	copy(ops, s.ops)
	s.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, op := range ops {
			var err error
			switch op.kind {
			case opInsert:
				_, err = tx.NewInsert().Model(op.entity).Exec(ctx)
			case opUpdate:
				_, err = tx.NewUpdate().Model(op.entity).WherePK().Exec(ctx)
			case opDelete:
				_, err = tx.NewDelete().Model(op.entity).WherePK().Exec(ctx)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.finish(ops)
	return nil
}

// finish removes exactly the flushed prefix from the staging state, so ops
// staged while a flush was in flight stay staged for the next commit.
func (s *session) finish(flushed []stagedOp) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ops = s.ops[len(flushed):]
	for _, op := range flushed {
		if kind, ok := s.staged[op.entity]; ok && kind == op.kind {
			delete(s.staged, op.entity)
		}
	}
	if len(s.ops) == 0 {
		s.ops = nil
		s.tracked = make(map[interface{}]struct{})
	}
}
