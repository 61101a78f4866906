package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

type clientAuthService struct {
	session store.SessionStorage
	adapter adapter.ServerAdapter
}

func NewClientAuthService(session store.SessionStorage, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{session: session, adapter: serverAdapter}
}

func (a *clientAuthService) Restore(ctx context.Context) (models.User, error) {
	token, err := a.session.LoadToken(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoSession) {
			return models.User{}, ErrNotLoggedIn
		}
		return models.User{}, fmt.Errorf("error loading session: %w", err)
	}

	a.adapter.SetToken(token)

	user, err := a.adapter.Me(ctx)
	if err == nil {
		return user, nil
	}

	err = mapAdapterError(err)
	if errors.Is(err, ErrTokenIsExpiredOrInvalid) || errors.Is(err, ErrNotLoggedIn) || errors.Is(err, ErrUserNotFound) {
		a.adapter.SetToken("")
		if clearErr := a.session.ClearToken(ctx); clearErr != nil {
			return models.User{}, fmt.Errorf("error clearing session: %w", clearErr)
		}
		return models.User{}, ErrNotLoggedIn
	}

	return models.User{}, err
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	result, err := a.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return a.remember(ctx, result)
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	result, err := a.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	return a.remember(ctx, result)
}

// remember persists the token of a fresh session. The adapter already
// holds it in memory.
func (a *clientAuthService) remember(ctx context.Context, result models.AuthResult) (models.User, error) {
	if err := a.session.SaveToken(ctx, result.Token); err != nil {
		return models.User{}, fmt.Errorf("error saving session: %w", err)
	}
	return result.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	if err := a.session.ClearToken(ctx); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}
