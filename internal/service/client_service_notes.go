package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientNoteService struct {
	adapter adapter.ServerAdapter
}

func NewClientNoteService(serverAdapter adapter.ServerAdapter) ClientNoteService {
	return &clientNoteService{adapter: serverAdapter}
}

func (c *clientNoteService) List(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := c.adapter.ListNotes(ctx, filter)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return notes, nil
}

func (c *clientNoteService) Get(ctx context.Context, noteID string) (models.Note, error) {
	note, err := c.adapter.GetNote(ctx, noteID)
	return note, mapAdapterError(err)
}

func (c *clientNoteService) Create(ctx context.Context, input models.NoteInput) (models.Note, error) {
	input.Categories = input.Categories.Normalize()
	note, err := c.adapter.CreateNote(ctx, input)
	return note, mapAdapterError(err)
}

func (c *clientNoteService) Update(ctx context.Context, noteID string, patch models.NotePatch) (models.Note, error) {
	if patch.Categories != nil {
		normalized := patch.Categories.Normalize()
		patch.Categories = &normalized
	}
	note, err := c.adapter.UpdateNote(ctx, noteID, patch)
	return note, mapAdapterError(err)
}

func (c *clientNoteService) Delete(ctx context.Context, noteID string) error {
	return mapAdapterError(c.adapter.DeleteNote(ctx, noteID))
}

func (c *clientNoteService) Archive(ctx context.Context, noteID string) (models.Note, error) {
	note, err := c.adapter.ArchiveNote(ctx, noteID)
	return note, mapAdapterError(err)
}

func (c *clientNoteService) Unarchive(ctx context.Context, noteID string) (models.Note, error) {
	note, err := c.adapter.UnarchiveNote(ctx, noteID)
	return note, mapAdapterError(err)
}

func (c *clientNoteService) Categories(ctx context.Context) ([]string, error) {
	notes, err := c.adapter.ListNotes(ctx, models.NoteFilter{})
	if err != nil {
		return nil, mapAdapterError(err)
	}

	categories := make([]string, 0)
	for _, note := range notes {
		categories = append(categories, note.Categories...)
	}
	slices.Sort(categories)

	return slices.Compact(categories), nil
}
