package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = "0190c6a4-0000-7000-8000-0000000000a1"
	noteID  = "0190c6a4-0000-7000-8000-0000000000b1"
)

var (
	userScope  = models.Scope{OwnerID: ownerID}
	adminScope = models.Scope{AllNotes: true, IncludeOwner: true}

	noteRowColumns = []string{
		"id", "title", "content", "categories", "archived", "user_id",
		"created_at", "updated_at", "username", "email",
	}
)

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	return &noteRepository{DB: &DB{DB: db, logger: l}, logger: l}, mock, db
}

func noteRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(noteRowColumns).
		AddRow(noteID, "Title", "Body", "{work,home}", false, ownerID, now, now, "alice", "alice@x.io")
}

// ── CreateNote ──

func TestCreateNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	note := models.Note{
		ID:         noteID,
		Title:      "Title",
		Content:    "Body",
		Categories: models.Categories{"work"},
		UserID:     ownerID,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes (id,title,content,categories,archived,user_id) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at")).
		WithArgs(noteID, "Title", "Body", "{work}", false, ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.CreateNote(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, noteID, created.ID)
	assert.True(t, created.CreatedAt.Equal(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO notes").WillReturnError(errors.New("boom"))

	_, err := repo.CreateNote(context.Background(), models.Note{ID: noteID, UserID: ownerID})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── ListNotes ──

func TestListNotes_UserScopeFiltersByOwner(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (n.archived = $1 AND n.user_id = $2) ORDER BY n.created_at DESC")).
		WithArgs(false, ownerID).
		WillReturnRows(noteRows(time.Now()))

	notes, err := repo.ListNotes(context.Background(), userScope, models.ActiveNotes())

	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, models.Categories{"work", "home"}, notes[0].Categories)
	assert.Equal(t, ownerID, notes[0].UserID)
	assert.Nil(t, notes[0].Owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes_AdminScopeIncludesOwner(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes AS n JOIN users AS u ON u.id = n.user_id ORDER BY n.created_at DESC")).
		WithoutArgs().
		WillReturnRows(noteRows(time.Now()))

	notes, err := repo.ListNotes(context.Background(), adminScope, models.NoteFilter{})

	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.NotNil(t, notes[0].Owner)
	assert.Equal(t, models.OwnerSummary{Username: "alice", Email: "alice@x.io"}, *notes[0].Owner)
}

func TestListNotes_CategoryMembership(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1 = ANY(n.categories) AND n.user_id = $2)")).
		WithArgs("work", ownerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := repo.ListNotes(context.Background(), userScope, models.NotesInCategory("work"))

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListNotes_QueryError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("timeout"))

	_, err := repo.ListNotes(context.Background(), userScope, models.NoteFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListNotes_ScanError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(noteID))

	_, err := repo.ListNotes(context.Background(), userScope, models.NoteFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestListNotes_RowsError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	rows := noteRows(time.Now()).RowError(0, errors.New("broken row"))
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.ListNotes(context.Background(), userScope, models.NoteFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── GetNote ──

func TestGetNote_Success(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (n.id = $1 AND n.user_id = $2)")).
		WithArgs(noteID, ownerID).
		WillReturnRows(noteRows(time.Now()))

	note, err := repo.GetNote(context.Background(), userScope, noteID)

	require.NoError(t, err)
	assert.Equal(t, "Title", note.Title)
}

func TestGetNote_NotFoundOrOutOfScope(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(noteID, ownerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.GetNote(context.Background(), userScope, noteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestGetNote_MalformedID(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetNote(context.Background(), adminScope, "123")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// ── UpdateNote ──

func TestUpdateNote_SingleConditionalStatement(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	title := "New"
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE notes AS n SET title = $1, updated_at = NOW() FROM users AS u WHERE u.id = n.user_id AND (n.id = $2 AND n.user_id = $3) RETURNING")).
		WithArgs("New", noteID, ownerID).
		WillReturnRows(noteRows(time.Now()))

	note, err := repo.UpdateNote(context.Background(), userScope, noteID, models.NotePatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, noteID, note.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNote_ZeroRowsIsNotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	archived := true
	mock.ExpectQuery("UPDATE notes AS n SET archived").
		WithArgs(true, noteID, ownerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.UpdateNote(context.Background(), userScope, noteID, models.NotePatch{Archived: &archived})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdateNote_EmptyPatchReadsCurrent(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(noteID).
		WillReturnRows(noteRows(time.Now()))

	note, err := repo.UpdateNote(context.Background(), adminScope, noteID, models.NotePatch{})

	require.NoError(t, err)
	assert.Equal(t, "Title", note.Title)
	require.NotNil(t, note.Owner)
}

func TestUpdateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	content := "x"
	mock.ExpectQuery("UPDATE notes").WillReturnError(errors.New("deadlock"))

	_, err := repo.UpdateNote(context.Background(), userScope, noteID, models.NotePatch{Content: &content})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── DeleteNote ──

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name     string
		scope    models.Scope
		query    string
		args     []any
		affected int64
		wantErr  error
	}{
		{
			name:     "owner deletes",
			scope:    userScope,
			query:    "DELETE FROM notes WHERE (id = $1 AND user_id = $2)",
			args:     []any{noteID, ownerID},
			affected: 1,
		},
		{
			name:     "admin deletes any",
			scope:    adminScope,
			query:    "DELETE FROM notes WHERE (id = $1)",
			args:     []any{noteID},
			affected: 1,
		},
		{
			name:     "zero rows is not found",
			scope:    userScope,
			query:    "DELETE FROM notes WHERE (id = $1 AND user_id = $2)",
			args:     []any{noteID, ownerID},
			affected: 0,
			wantErr:  ErrNoteNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestNoteRepo(t)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).
				WithArgs(toDriverValues(tt.args)...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteNote(context.Background(), tt.scope, noteID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").WillReturnError(errors.New("boom"))

	err := repo.DeleteNote(context.Background(), userScope, noteID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func toDriverValues(args []any) []driver.Value {
	out := make([]driver.Value, 0, len(args))
	for _, arg := range args {
		out = append(out, arg)
	}
	return out
}
