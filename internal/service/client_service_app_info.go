package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
)

type clientAppInfoService struct {
	adapter adapter.ServerAdapter
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter}
}

func (c *clientAppInfoService) Ping(ctx context.Context) error {
	return mapAdapterError(c.adapter.Health(ctx))
}

func (c *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
