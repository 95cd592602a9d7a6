// Package storage implementa el almacenamiento duradero del cliente: el
// equivalente del localStorage del navegador. Guarda dos llaves de token en
// texto plano y los snapshots serializados de los stores persistidos, todo
// bajo el directorio de estado de la terminal.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Llaves de token (mismos nombres que usa el cliente web).
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Storage almacén clave-valor respaldado en archivos. Cada llave es un
// archivo dentro de Dir; los snapshots usan la extensión .json.
type Storage struct {
	dir string
}

// New crea el almacén y asegura que el directorio exista (0700: los tokens
// son credenciales).
func New(dir string) (*Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage: directorio vacío")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Get devuelve el valor de la llave, o "" y false si no existe.
func (s *Storage) Get(key string) (string, bool) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

// Set escribe el valor de la llave de forma atómica (tmp + rename).
func (s *Storage) Set(key, value string) error {
	return s.writeAtomic(s.path(key), []byte(value))
}

// Delete elimina la llave; no es error que no exista.
func (s *Storage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: eliminar %s: %w", key, err)
	}
	return nil
}

// SaveSnapshot serializa v como JSON bajo el nombre del store
// (ej. "pos-cart-storage" -> pos-cart-storage.json).
func (s *Storage) SaveSnapshot(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: serializar snapshot %s: %w", name, err)
	}
	return s.writeAtomic(s.path(name+".json"), b)
}

// LoadSnapshot deserializa el snapshot en v. Devuelve false (sin error) si el
// snapshot no existe todavía: primer arranque.
func (s *Storage) LoadSnapshot(name string, v any) (bool, error) {
	b, err := os.ReadFile(s.path(name + ".json"))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: leer snapshot %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("storage: deserializar snapshot %s: %w", name, err)
	}
	return true, nil
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, name)
}

// writeAtomic escribe en un temporal y renombra, para que un corte a mitad de
// escritura nunca deje un snapshot truncado.
func (s *Storage) writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("storage: crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: escribir %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cerrar temporal: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: permisos %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: renombrar a %s: %w", path, err)
	}
	return nil
}
