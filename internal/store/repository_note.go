package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Queries are rendered by the builders in sql_queries.go,
// which put the caller's scope into the WHERE clause of every statement.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote inserts note and returns it with server-assigned timestamps.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	if err = n.DB.QueryRowContext(ctx, query, args...).Scan(&note.CreatedAt, &note.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("user_id", note.UserID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "noteRepository.CreateNote").
		Str("note_id", note.ID).
		Msg("note created")
	return note, nil
}

// ListNotes returns every note in scope matching filter, newest first.
// It returns an empty, non-nil slice when nothing matches.
func (n *noteRepository) ListNotes(ctx context.Context, scope models.Scope, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(scope, filter)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build query")
		return nil, err
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Bool("all_notes", scope.AllNotes).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 32)
	for rows.Next() {
		note, scanErr := scanNote(rows, scope)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote returns the note with noteID if it lies in scope, otherwise
// [ErrNoteNotFound].
func (n *noteRepository) GetNote(ctx context.Context, scope models.Scope, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(scope, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...), scope)
	if err != nil {
		return models.Note{}, n.singleRowError(ctx, "noteRepository.GetNote", noteID, err)
	}

	return note, nil
}

// UpdateNote applies patch with a single conditional UPDATE ... RETURNING.
// Zero affected rows (absent or out of scope) yield [ErrNoteNotFound].
// An empty patch changes nothing and returns the current note.
func (n *noteRepository) UpdateNote(ctx context.Context, scope models.Scope, noteID string, patch models.NotePatch) (models.Note, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		log.Debug().
			Str("func", "noteRepository.UpdateNote").
			Str("note_id", noteID).
			Msg("no fields to update, reading current note")
		return n.GetNote(ctx, scope, noteID)
	}

	query, args, err := buildUpdateNoteQuery(scope, noteID, patch)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build update query")
		return models.Note{}, err
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...), scope)
	if err != nil {
		return models.Note{}, n.singleRowError(ctx, "noteRepository.UpdateNote", noteID, err)
	}

	log.Info().
		Str("func", "noteRepository.UpdateNote").
		Str("note_id", noteID).
		Msg("successfully updated note")
	return note, nil
}

// DeleteNote removes the note with a single conditional DELETE.
func (n *noteRepository) DeleteNote(ctx context.Context, scope models.Scope, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(scope, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build delete query")
		return err
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			return ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("record not found")
		return ErrNoteNotFound
	}

	log.Info().
		Str("func", "noteRepository.DeleteNote").
		Str("note_id", noteID).
		Msg("successfully deleted note")
	return nil
}

// singleRowError turns the error of a single-row statement into the
// repository error: no row or an unparsable id means not found.
func (n *noteRepository) singleRowError(ctx context.Context, funcName, noteID string, err error) error {
	log := logger.FromContext(ctx)

	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		log.Warn().Str("func", funcName).Str("note_id", noteID).Msg("record not found")
		return ErrNoteNotFound
	}

	log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to execute query")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanNote reads one row in noteColumns order. The owner summary is kept
// only when the scope asks for it.
func scanNote(row rowScanner, scope models.Scope) (models.Note, error) {
	var note models.Note
	var owner models.OwnerSummary

	err := row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Categories,
		&note.Archived,
		&note.UserID,
		&note.CreatedAt,
		&note.UpdatedAt,
		&owner.Username,
		&owner.Email,
	)
	if err != nil {
		return models.Note{}, err
	}

	if note.Categories == nil {
		note.Categories = models.Categories{}
	}
	if scope.IncludeOwner {
		note.Owner = &owner
	}

	return note, nil
}
