package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService rejects malformed note input before it reaches the
// wrapped NoteService. Blank checks trim a copy; the stored values are the
// submitted ones. Calls without input are passed through.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewValidator(),
	}
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func (v *NoteValidationService) Create(ctx context.Context, identity models.Identity, input models.NoteInput) (models.Note, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*NoteValidationService.Create").Msg("invalid note provided")
		return models.Note{}, newValidationError(app.MsgTitleAndContentRequired, err)
	}

	return v.inner.Create(ctx, identity, input)
}

func (v *NoteValidationService) List(ctx context.Context, identity models.Identity, filter models.NoteFilter) ([]models.Note, error) {
	return v.inner.List(ctx, identity, filter)
}

func (v *NoteValidationService) ListByCategory(ctx context.Context, identity models.Identity, category string) ([]models.Note, error) {
	return v.inner.ListByCategory(ctx, identity, category)
}

func (v *NoteValidationService) GetByID(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	return v.inner.GetByID(ctx, identity, noteID)
}

// Update reports a note outside the identity's scope as not found even when
// the patch itself is invalid.
func (v *NoteValidationService) Update(ctx context.Context, identity models.Identity, noteID string, patch models.NotePatch) (models.Note, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		if _, getErr := v.inner.GetByID(ctx, identity, noteID); getErr != nil {
			return models.Note{}, getErr
		}

		logger.FromContext(ctx).Warn().Err(err).Str("func", "*NoteValidationService.Update").Msg("invalid note patch provided")
		return models.Note{}, newValidationError(app.MsgTitleAndContentRequired, err)
	}

	return v.inner.Update(ctx, identity, noteID, patch)
}

func (v *NoteValidationService) Delete(ctx context.Context, identity models.Identity, noteID string) error {
	return v.inner.Delete(ctx, identity, noteID)
}

func (v *NoteValidationService) Archive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	return v.inner.Archive(ctx, identity, noteID)
}

func (v *NoteValidationService) Unarchive(ctx context.Context, identity models.Identity, noteID string) (models.Note, error) {
	return v.inner.Unarchive(ctx, identity, noteID)
}
