package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	NoteService    ClientNoteService
	AppInfoService ClientAppInfoService
}

func NewClientServices(session store.SessionStorage, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(session, serverAdapter),
		NoteService:    NewClientNoteService(serverAdapter),
		AppInfoService: NewClientAppInfoService(serverAdapter),
	}
}
