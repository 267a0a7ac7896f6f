// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/flight-guardian/models"
	sq "github.com/Masterminds/squirrel"
)

// FilterKind selects how a list filter value is compared with its column.
type FilterKind int

const (
	// FilterSubstring matches case-insensitively anywhere in the column.
	FilterSubstring FilterKind = iota

	// FilterExact matches the column by equality.
	FilterExact

	// FilterBool parses the value with [strconv.ParseBool] and matches by equality.
	FilterBool

	// FilterRangeFrom keeps rows whose timestamp column is at or after the value.
	FilterRangeFrom

	// FilterRangeTo keeps rows whose timestamp column is at or before the value.
	// A date-only value includes the whole day.
	FilterRangeTo
)

// Filter binds a request key of the list protocol to a column.
type Filter struct {
	Column string
	Kind   FilterKind
}

type rowScanner interface {
	Scan(dest ...any) error
}

// statement is a rendered SQL text with its positional arguments.
type statement struct {
	query string
	args  []any
}

// psql renders every builder with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Table describes how one entity is stored: the columns read and written,
// the allow-listed filters and the searchable columns.
type Table[T any] struct {
	// Name is the table name; Alias qualifies every column in reads.
	Name  string
	Alias string

	// Joins are complete JOIN clauses appended to every read.
	Joins []string

	// Columns are the select expressions, in the order consumed by Scan.
	Columns []string

	// Writable lists the unqualified columns written by inserts and updates,
	// in the order produced by Values.
	Writable []string
	Values   func(entity T) []any

	Filters map[string]Filter
	Search  []string

	// DefaultSort is the ORDER BY expression of list pages.
	DefaultSort string

	Scan func(row rowScanner) (T, error)

	// NotFound is returned when no row matches an id.
	NotFound error
}

func (t Table[T]) column(name string) string {
	return t.Alias + "." + name
}

func (t Table[T]) selectBuilder(columns ...string) sq.SelectBuilder {
	builder := psql.Select(columns...).From(t.Name + " " + t.Alias)
	for _, join := range t.Joins {
		builder = builder.JoinClause(join)
	}
	return builder
}

func (t Table[T]) getStatement(where sq.Sqlizer) (statement, error) {
	query, args, err := t.selectBuilder(t.Columns...).Where(where).ToSql()
	if err != nil {
		return statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return statement{query: query, args: args}, nil
}

func (t Table[T]) insertStatement(id string, entity T, now time.Time) (statement, error) {
	columns := make([]string, 0, len(t.Writable)+3)
	columns = append(columns, "id")
	columns = append(columns, t.Writable...)
	columns = append(columns, "created_at", "updated_at")

	values := make([]any, 0, len(columns))
	values = append(values, id)
	values = append(values, t.Values(entity)...)
	values = append(values, now, now)

	query, args, err := psql.Insert(t.Name).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return statement{query: query, args: args}, nil
}

func (t Table[T]) updateStatement(id string, entity T, now time.Time) (statement, error) {
	values := t.Values(entity)
	if len(values) != len(t.Writable) {
		return statement{}, fmt.Errorf("%w: %s has %d writable columns but %d values",
			ErrBuildingSQLQuery, t.Name, len(t.Writable), len(values))
	}

	builder := psql.Update(t.Name)
	for i, column := range t.Writable {
		builder = builder.Set(column, values[i])
	}

	query, args, err := builder.Set("updated_at", now).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return statement{query: query, args: args}, nil
}

func (t Table[T]) deleteStatement(id string) (statement, error) {
	query, args, err := psql.Delete(t.Name).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return statement{query: query, args: args}, nil
}

// listStatements renders the COUNT query and the page query of q. Both share
// the same predicate so total never depends on pagination.
func (t Table[T]) listStatements(q models.ListQuery) (count statement, page statement, err error) {
	where, err := t.predicates(q)
	if err != nil {
		return statement{}, statement{}, err
	}

	countBuilder := t.selectBuilder("COUNT(*)")
	pageBuilder := t.selectBuilder(t.Columns...)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
		pageBuilder = pageBuilder.Where(where)
	}

	pageBuilder = pageBuilder.OrderBy(t.DefaultSort)
	if q.Limit > 0 {
		pageBuilder = pageBuilder.Limit(uint64(q.Limit)).Offset(q.Offset())
	}

	count.query, count.args, err = countBuilder.ToSql()
	if err != nil {
		return statement{}, statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	page.query, page.args, err = pageBuilder.ToSql()
	if err != nil {
		return statement{}, statement{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return count, page, nil
}

// predicates turns the allow-listed filters and the search term into one
// conjunction. Filter keys are visited in sorted order so argument positions
// are stable.
func (t Table[T]) predicates(q models.ListQuery) (sq.And, error) {
	keys := make([]string, 0, len(q.Filters))
	for key := range q.Filters {
		if _, ok := t.Filters[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	where := sq.And{}
	for _, key := range keys {
		predicate, err := t.Filters[key].predicate(key, q.Filters[key])
		if err != nil {
			return nil, err
		}
		where = append(where, predicate)
	}

	if q.Search != "" && len(t.Search) > 0 {
		pattern := containsPattern(q.Search)
		search := make(sq.Or, 0, len(t.Search))
		for _, column := range t.Search {
			search = append(search, sq.ILike{column: pattern})
		}
		where = append(where, search)
	}

	return where, nil
}

func (f Filter) predicate(key, value string) (sq.Sqlizer, error) {
	switch f.Kind {
	case FilterExact:
		return sq.Eq{f.Column: value}, nil

	case FilterBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a boolean", ErrInvalidFilter, key)
		}
		return sq.Eq{f.Column: b}, nil

	case FilterRangeFrom:
		from, err := models.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a date", ErrInvalidFilter, key)
		}
		return sq.GtOrEq{f.Column: from}, nil

	case FilterRangeTo:
		to, err := models.ParseDate(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a date", ErrInvalidFilter, key)
		}
		if models.IsDateOnly(value) {
			return sq.Lt{f.Column: to.AddDate(0, 0, 1)}, nil
		}
		return sq.LtOrEq{f.Column: to}, nil

	default:
		return sq.ILike{f.Column: containsPattern(value)}, nil
	}
}

// containsPattern escapes LIKE metacharacters in v and wraps it in wildcards.
func containsPattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}
