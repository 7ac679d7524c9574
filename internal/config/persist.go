package config

import (
	"strconv"

	"github.com/MKhiriev/vim-cmd/internal/store"
	"github.com/MKhiriev/vim-cmd/models"
)

// Entries renders t in config-file form. Only the fields of the active
// transport are written; an empty TCP host or non-positive port is written
// as the loopback default so the file stays loadable.
func Entries(t models.Target) []store.KV {
	switch t.Transport {
	case models.TransportLocalSocket:
		return []store.KV{
			{Key: KeyMode, Value: t.Transport.String()},
			{Key: KeySocket, Value: t.LocalPath},
		}
	case models.TransportTCP:
		host := t.Host
		if host == "" {
			host = defaultTCPHost
		}
		port := t.Port
		if port <= 0 {
			port = defaultTCPPort
		}
		return []store.KV{
			{Key: KeyMode, Value: t.Transport.String()},
			{Key: KeyHost, Value: host},
			{Key: KeyPort, Value: strconv.Itoa(port)},
		}
	default:
		return nil
	}
}

// Save writes t to t.ConfigFile, creating parent directories as needed.
func Save(t models.Target) error {
	return store.WriteKV(t.ConfigFile, Entries(t))
}

// FileTargetStore persists targets to their config file.
type FileTargetStore struct{}

// NewFileTargetStore returns a store backed by [Save].
func NewFileTargetStore() *FileTargetStore {
	return &FileTargetStore{}
}

// Save writes t to t.ConfigFile.
func (s *FileTargetStore) Save(t models.Target) error {
	return Save(t)
}
