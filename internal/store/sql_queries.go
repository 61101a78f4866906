// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, role)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING created_at, updated_at;`

	selectUserColumns = `SELECT id, username, email, password_hash, role, created_at, updated_at
    FROM users `

	findUserByEmail    = selectUserColumns + `WHERE email = $1;`
	findUserByUsername = selectUserColumns + `WHERE username = $1;`
	findUserByID       = selectUserColumns + `WHERE id = $1;`

	updateUserRole = `UPDATE users SET role = $1, updated_at = NOW() WHERE id = $2;`
)

// psql renders every note query with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// noteColumns is the projection shared by note reads and RETURNING clauses.
// The owner columns always come from the joined users row.
var noteColumns = []string{
	"n.id",
	"n.title",
	"n.content",
	"n.categories",
	"n.archived",
	"n.user_id",
	"n.created_at",
	"n.updated_at",
	"u.username",
	"u.email",
}

// notePredicate combines the scope restriction with extra conditions.
// An unrestricted scope adds nothing, so an admin listing without a filter
// has no WHERE clause at all.
func notePredicate(scope models.Scope, conditions ...sq.Sqlizer) sq.And {
	predicate := sq.And{}
	predicate = append(predicate, conditions...)
	if !scope.AllNotes {
		predicate = append(predicate, sq.Eq{"n.user_id": scope.OwnerID})
	}
	return predicate
}

// filterConditions renders a [models.NoteFilter]. Category membership is an
// exact element match against the text[] column.
func filterConditions(filter models.NoteFilter) []sq.Sqlizer {
	conditions := make([]sq.Sqlizer, 0, 2)
	if filter.Archived != nil {
		conditions = append(conditions, sq.Eq{"n.archived": *filter.Archived})
	}
	if filter.Category != nil {
		conditions = append(conditions, sq.Expr("? = ANY(n.categories)", *filter.Category))
	}
	return conditions
}

func buildListNotesQuery(scope models.Scope, filter models.NoteFilter) (string, []any, error) {
	selectNotes := psql.
		Select(noteColumns...).
		From("notes AS n").
		Join("users AS u ON u.id = n.user_id")

	if predicate := notePredicate(scope, filterConditions(filter)...); len(predicate) > 0 {
		selectNotes = selectNotes.Where(predicate)
	}

	query, args, err := selectNotes.
		OrderBy("n.created_at DESC", "n.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetNoteQuery(scope models.Scope, noteID string) (string, []any, error) {
	query, args, err := psql.
		Select(noteColumns...).
		From("notes AS n").
		Join("users AS u ON u.id = n.user_id").
		Where(notePredicate(scope, sq.Eq{"n.id": noteID})).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	query, args, err := psql.
		Insert("notes").
		Columns("id", "title", "content", "categories", "archived", "user_id").
		Values(note.ID, note.Title, note.Content, note.Categories, note.Archived, note.UserID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateNoteQuery renders a single conditional UPDATE: the ownership
// check and the write happen in one statement, and the updated row (joined
// with its owner) is returned. An empty patch is rejected; callers read the
// note instead.
func buildUpdateNoteQuery(scope models.Scope, noteID string, patch models.NotePatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, fmt.Errorf("%w: empty patch", ErrBuildingSQLQuery)
	}

	update := psql.Update("notes AS n")
	if patch.Title != nil {
		update = update.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		update = update.Set("content", *patch.Content)
	}
	if patch.Categories != nil {
		update = update.Set("categories", *patch.Categories)
	}
	if patch.Archived != nil {
		update = update.Set("archived", *patch.Archived)
	}

	query, args, err := update.
		Set("updated_at", sq.Expr("NOW()")).
		From("users AS u").
		Where("u.id = n.user_id").
		Where(notePredicate(scope, sq.Eq{"n.id": noteID})).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteNoteQuery(scope models.Scope, noteID string) (string, []any, error) {
	predicate := sq.And{sq.Eq{"id": noteID}}
	if !scope.AllNotes {
		predicate = append(predicate, sq.Eq{"user_id": scope.OwnerID})
	}

	query, args, err := psql.
		Delete("notes").
		Where(predicate).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
