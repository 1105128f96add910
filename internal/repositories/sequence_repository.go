package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/HARRSHA-G/desk/internal/models"
)

// SequenceRepository hands out per-stream receipt numbers. Each stream has
// one row in receipt_sequences; the UPDATE ... RETURNING bump takes a row
// lock, so codes are monotonic as long as the caller allocates and inserts
// inside the same transaction.
type SequenceRepository interface {
	NextReceiptCode(executor SQLExecutor, stream models.Stream) (string, error)
}

type sequenceRepository struct {
	db *sql.DB
}

// NewSequenceRepository creates a new instance of SequenceRepository.
func NewSequenceRepository(db *sql.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) NextReceiptCode(executor SQLExecutor, stream models.Stream) (string, error) {
	query := `UPDATE receipt_sequences
	          SET next_value = next_value + 1
	          WHERE stream = $1
	          RETURNING next_value - 1`
	var seq int64
	err := executor.QueryRow(query, string(stream)).Scan(&seq)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Sequence rows are seeded by the schema; recover by lazily
			// creating the row so a fresh database still allocates.
			insert := `INSERT INTO receipt_sequences (stream, next_value) VALUES ($1, 1002)
			           ON CONFLICT (stream) DO UPDATE SET next_value = receipt_sequences.next_value + 1
			           RETURNING next_value - 1`
			if err := executor.QueryRow(insert, string(stream)).Scan(&seq); err != nil {
				return "", fmt.Errorf("%w: allocating receipt code for stream %s: %v", ErrDatabaseError, stream, err)
			}
			return stream.FormatReceiptCode(seq), nil
		}
		return "", fmt.Errorf("%w: allocating receipt code for stream %s: %v", ErrDatabaseError, stream, err)
	}
	return stream.FormatReceiptCode(seq), nil
}
