package repository

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/buntdb"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

// buntSnapshotStore persiste snapshots em um arquivo local via BuntDB.
// É o store padrão quando nenhum banco relacional está configurado; o
// snapshot continua sobrevivendo a reinícios do processo.
type buntSnapshotStore struct {
	db *buntdb.DB
}

// NewBuntSnapshotStore abre (ou cria) o arquivo de snapshots. Usar ":memory:"
// em testes para não tocar o disco.
func NewBuntSnapshotStore(path string) (SnapshotRepository, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o arquivo de snapshots: %w", err)
	}

	return &buntSnapshotStore{db: db}, nil
}

func snapshotKey(reportType domain.ReportType) string {
	return "snapshot:" + string(reportType)
}

func (s *buntSnapshotStore) Save(reportType domain.ReportType, snapshot *domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
	}

	return s.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(snapshotKey(reportType), string(payload), nil)
		return err
	})
}

func (s *buntSnapshotStore) Load(reportType domain.ReportType) (*domain.Snapshot, error) {
	var payload string

	err := s.db.View(func(tx *buntdb.Tx) error {
		value, err := tx.Get(snapshotKey(reportType))
		if err != nil {
			return err
		}
		payload = value
		return nil
	})
	if err != nil {
		if err == buntdb.ErrNotFound {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("erro ao ler snapshot do arquivo: %w", err)
	}

	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal([]byte(payload), snapshot); err != nil {
		return nil, fmt.Errorf("erro ao desserializar snapshot: %w", err)
	}

	return snapshot, nil
}
