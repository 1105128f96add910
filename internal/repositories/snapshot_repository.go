package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/HARRSHA-G/desk/internal/models"
)

// SnapshotRepository defines the database operations for persisted report
// snapshots.
type SnapshotRepository interface {
	CreateSnapshot(snapshot *models.ReportSnapshot) (*models.ReportSnapshot, error)
	GetSnapshots(page, pageSize int) ([]models.ReportSnapshot, int, error)
}

type snapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new instance of SnapshotRepository.
func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) CreateSnapshot(snapshot *models.ReportSnapshot) (*models.ReportSnapshot, error) {
	query := `INSERT INTO report_snapshots
	            (from_date, to_date, grand_total, cash_grand_total, upi_grand_total,
	             expense_total, net_balance, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at`
	snapshot.CreatedAt = time.Now()

	err := r.db.QueryRow(query,
		snapshot.FromDate, snapshot.ToDate, snapshot.GrandTotal, snapshot.CashGrandTotal,
		snapshot.UpiGrandTotal, snapshot.ExpenseTotal, snapshot.NetBalance, snapshot.CreatedAt,
	).Scan(&snapshot.ID, &snapshot.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating report snapshot: %v", ErrDatabaseError, err)
	}
	return snapshot, nil
}

func (r *snapshotRepository) GetSnapshots(page, pageSize int) ([]models.ReportSnapshot, int, error) {
	snapshots := []models.ReportSnapshot{}
	totalCount := 0
	query := `SELECT id, from_date, to_date, grand_total, cash_grand_total, upi_grand_total,
	                 expense_total, net_balance, created_at, COUNT(*) OVER() AS total_count
	          FROM report_snapshots
	          ORDER BY id DESC
	          LIMIT $1 OFFSET $2`
	offset := (page - 1) * pageSize
	rows, err := r.db.Query(query, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying report snapshots: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var snapshot models.ReportSnapshot
		if err := rows.Scan(&snapshot.ID, &snapshot.FromDate, &snapshot.ToDate,
			&snapshot.GrandTotal, &snapshot.CashGrandTotal, &snapshot.UpiGrandTotal,
			&snapshot.ExpenseTotal, &snapshot.NetBalance, &snapshot.CreatedAt, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning report snapshot: %v", ErrDatabaseError, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating snapshot rows: %v", ErrDatabaseError, err)
	}
	return snapshots, totalCount, nil
}
