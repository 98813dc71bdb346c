package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/pharmacy-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/pharmacy-analytics-api/internal/domain"
)

const snapshotsTable = "report_snapshots"

// ErrSnapshotNotFound indica que nenhum snapshot foi salvo ainda para o tipo
// de relatório pedido.
var ErrSnapshotNotFound = errors.New("nenhum snapshot encontrado para o tipo de relatório")

// SnapshotRepository guarda o último snapshot bem-sucedido de cada tipo de
// relatório: um slot por tipo, sobrescrito a cada execução (last-write-wins).
type SnapshotRepository interface {
	Save(reportType domain.ReportType, snapshot *domain.Snapshot) error
	Load(reportType domain.ReportType) (*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn postgres.Queryer
}

func NewSnapshotRepository(conn postgres.Queryer) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) Save(reportType domain.ReportType, snapshot *domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("report_type", "snapshot").
		Values(string(reportType), payload).
		Suffix(`
			ON CONFLICT (report_type) DO UPDATE SET
				snapshot = EXCLUDED.snapshot,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) Load(reportType domain.ReportType) (*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("snapshot").
		From(snapshotsTable).
		Where(squirrel.Eq{"report_type": string(reportType)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var payload []byte

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	snapshot := &domain.Snapshot{}
	if err := json.Unmarshal(payload, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao desserializar snapshot: %w", err)
	}

	return snapshot, nil
}
