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

	"github.com/teknohq/jobcatalog/types"
	"github.com/uptrace/bun"
)

type baseRepository[T any] struct {
	db      *bun.DB
	session *session
}

func newBaseRepository[T any](db *bun.DB, s *session) *baseRepository[T] {
	return &baseRepository[T]{db: db, session: s}
}

func applyQuery(sel *bun.SelectQuery, q *types.Query) *bun.SelectQuery {
	if q == nil {
		return sel
	}
	if q.Filter != nil {
		sel = sel.Where(q.Filter.Schema, q.Filter.Args...)
	}
	for _, rel := range q.Relations {
		sel = sel.Relation(rel)
	}
	for _, order := range q.Orders {
		sel = sel.Order(order)
	}
	if q.Limit > 0 {
		sel = sel.Limit(q.Limit)
	}
	return sel
}

func (r *baseRepository[T]) GetAll(ctx context.Context, q *types.Query) ([]*T, error) {
	var entities []*T
	sel := applyQuery(r.db.NewSelect().Model(&entities), q)
	if err := sel.Scan(ctx); err != nil {
		return nil, err
	}
	if q != nil && q.Tracked {
		for _, entity := range entities {
			r.session.track(entity)
		}
	}
	return entities, nil
}

func (r *baseRepository[T]) Get(ctx context.Context, q *types.Query) (*T, error) {
	entity := new(T)
	sel := applyQuery(r.db.NewSelect().Model(entity), q)
	if err := sel.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if q != nil && q.Tracked {
		r.session.track(entity)
	}
	return entity, nil
}

func (r *baseRepository[T]) Any(ctx context.Context, filter *types.QueryFilter) (bool, error) {
	sel := r.db.NewSelect().Model((*T)(nil))
	if filter != nil {
		sel = sel.Where(filter.Schema, filter.Args...)
	}
	return sel.Exists(ctx)
}

func (r *baseRepository[T]) Add(entity *T) {
	r.session.stage(opInsert, entity)
}

func (r *baseRepository[T]) Update(entity *T) {
	r.session.stage(opUpdate, entity)
}

func (r *baseRepository[T]) Remove(entity *T) {
	r.session.stage(opDelete, entity)
}
