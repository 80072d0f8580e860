// Package filestore persiste cada colección como un archivo JSON plano dentro de un directorio
// de datos (products.json, warehouses.json, stock.json, transfers.json, alerts.json).
//
// Las confirmaciones son atómicas entre archivos: primero se escribe una bitácora con todos los
// documentos y su contenido anterior, luego se reemplaza cada archivo y por último se borra la
// bitácora. Si el proceso muere a mitad, la bitácora se vuelve a aplicar. Si un reemplazo falla en
// caliente, la bitácora pasa a ser de reversión y se restauran los archivos ya tocados. Mientras
// quede una bitácora sin resolver el almacén no atiende transacciones.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Inventario-stock/internal/domain/repository"
	"github.com/jhoicas/Inventario-stock/internal/infrastructure/docstore"
)

const (
	journalFile  = ".commit-journal.json"
	rollbackFile = ".rollback-journal.json"
)

// rename se sustituye en tests para simular fallos del sistema de archivos.
var rename = os.Rename

var fileNames = map[string]string{
	repository.CollectionProducts:    "products.json",
	repository.CollectionWarehouses:  "warehouses.json",
	repository.CollectionStockLevels: "stock.json",
	repository.CollectionTransfers:   "transfers.json",
	repository.CollectionAlerts:      "alerts.json",
}

var _ docstore.Backend = (*Store)(nil)

// Store backend de archivos. Un único proceso debe usar el directorio a la vez.
type Store struct {
	dir string
	mu  sync.Mutex
}

// journalEntry guarda el documento como texto para conservar el formato indentado.
// Prev y Existed describen el archivo antes de la confirmación.
type journalEntry struct {
	Name    string `json:"name"`
	Data    string `json:"data"`
	Prev    string `json:"prev,omitempty"`
	Existed bool   `json:"existed,omitempty"`
}

// Open crea el directorio si no existe y recupera una confirmación interrumpida.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: crear directorio %s: %w", dir, err)
	}
	s := &Store{dir: dir}
	if err := s.recover(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir directorio de datos.
func (s *Store) Dir() string { return s.dir }

// Run serializa con un mutex de proceso; las escrituras se aplican solo si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(tx docstore.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.recover(); err != nil {
		return fmt.Errorf("filestore: confirmación anterior sin resolver: %w", err)
	}

	tx := docstore.NewStagedTx(func(_ context.Context, name string) ([]byte, error) {
		return s.read(name)
	})
	if err := fn(tx); err != nil {
		return err
	}
	pending := tx.Pending()
	if len(pending) == 0 {
		return nil
	}
	return s.commit(pending)
}

func (s *Store) path(name string) (string, error) {
	file, ok := fileNames[name]
	if !ok {
		return "", fmt.Errorf("filestore: colección desconocida %q", name)
	}
	return filepath.Join(s.dir, file), nil
}

func (s *Store) read(name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: leer %s: %w", p, err)
	}
	return data, nil
}

func (s *Store) commit(docs []docstore.Document) error {
	entries := make([]journalEntry, 0, len(docs))
	for _, d := range docs {
		prev, existed, err := s.snapshot(d.Name)
		if err != nil {
			return err
		}
		entries = append(entries, journalEntry{Name: d.Name, Data: string(d.Data), Prev: prev, Existed: existed})
	}
	journal, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("filestore: codificar bitácora: %w", err)
	}
	journalPath := filepath.Join(s.dir, journalFile)
	if err := writeFileAtomic(journalPath, journal); err != nil {
		return err
	}
	if err := s.apply(entries); err != nil {
		return s.abort(entries, err)
	}
	if err := os.Remove(journalPath); err != nil {
		return fmt.Errorf("filestore: borrar bitácora: %w", err)
	}
	return nil
}

// abort deshace una confirmación aplicada a medias. Si ni siquiera puede marcarse como reversión,
// la bitácora original queda y la próxima recuperación termina de aplicarla.
func (s *Store) abort(entries []journalEntry, cause error) error {
	journalPath := filepath.Join(s.dir, journalFile)
	rollbackPath := filepath.Join(s.dir, rollbackFile)
	if err := rename(journalPath, rollbackPath); err != nil {
		return fmt.Errorf("%w (confirmación pendiente: %v)", cause, err)
	}
	if err := s.rollback(entries); err != nil {
		return fmt.Errorf("%w (reversión pendiente: %v)", cause, err)
	}
	if err := os.Remove(rollbackPath); err != nil {
		return fmt.Errorf("%w (borrar bitácora de reversión: %v)", cause, err)
	}
	return cause
}

// snapshot devuelve el contenido actual del archivo de la colección y si existe.
func (s *Store) snapshot(name string) (string, bool, error) {
	p, err := s.path(name)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("filestore: leer %s: %w", p, err)
	}
	return string(data), true, nil
}

func (s *Store) apply(entries []journalEntry) error {
	for _, e := range entries {
		p, err := s.path(e.Name)
		if err != nil {
			return err
		}
		if err := writeFileAtomic(p, []byte(e.Data)); err != nil {
			return err
		}
	}
	return nil
}

// rollback restaura el contenido anterior; es idempotente.
func (s *Store) rollback(entries []journalEntry) error {
	for _, e := range entries {
		p, err := s.path(e.Name)
		if err != nil {
			return err
		}
		if !e.Existed {
			if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("filestore: borrar %s: %w", p, err)
			}
			continue
		}
		if err := writeFileAtomic(p, []byte(e.Prev)); err != nil {
			return err
		}
	}
	return nil
}

// recover resuelve una bitácora pendiente: primero una reversión, si la hay, y si no una
// confirmación interrumpida.
func (s *Store) recover() error {
	rollbackPath := filepath.Join(s.dir, rollbackFile)
	data, err := os.ReadFile(rollbackPath)
	switch {
	case err == nil:
		var entries []journalEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("filestore: bitácora de reversión ilegible: %w", err)
		}
		if err := s.rollback(entries); err != nil {
			return err
		}
		return os.Remove(rollbackPath)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("filestore: leer bitácora de reversión: %w", err)
	}

	journalPath := filepath.Join(s.dir, journalFile)
	data, err = os.ReadFile(journalPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("filestore: leer bitácora: %w", err)
	}
	var entries []journalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// bitácora incompleta: la confirmación nunca empezó a aplicarse
		return os.Remove(journalPath)
	}
	if err := s.apply(entries); err != nil {
		return err
	}
	return os.Remove(journalPath)
}

// writeFileAtomic escribe en un temporal del mismo directorio y renombra.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("filestore: crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: escribir %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("filestore: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: cerrar %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("filestore: permisos %s: %w", path, err)
	}
	if err := rename(tmpName, path); err != nil {
		return fmt.Errorf("filestore: renombrar %s: %w", path, err)
	}
	return nil
}
