package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jengzang/ocean-query-backend/internal/database"
	"github.com/jengzang/ocean-query-backend/internal/dataset"
	"github.com/jengzang/ocean-query-backend/internal/models"
)

const readingColumns = `id, timestamp, latitude, longitude, depth, temperature, salinity, oxygen, location`

// ReadingRepository handles database operations for the readings mirror
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// ReplaceAll swaps the mirrored readings for those of a new generation run.
// Either every reading is stored or the previous mirror is left untouched.
func (r *ReadingRepository) ReplaceAll(generationID string, readings []models.Reading) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM readings"); err != nil {
			return fmt.Errorf("failed to clear readings: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO readings (` + readingColumns + `, seq, generation_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer stmt.Close()

		for i, reading := range readings {
			_, err := stmt.Exec(
				reading.ID, reading.Timestamp.Unix(), reading.Latitude, reading.Longitude, reading.Depth,
				reading.Temperature, reading.Salinity, reading.Oxygen, reading.Location,
				i, generationID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert reading %s: %w", reading.ID, err)
			}
		}
		return nil
	})
}

// Count returns the number of mirrored readings
func (r *ReadingRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM readings").Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count readings: %w", err)
	}
	return total, nil
}

// GetReadings retrieves readings with filtering and pagination
func (r *ReadingRepository) GetReadings(filter models.ReadingFilter) ([]models.Reading, int64, error) {
	filter.Normalize()

	var conditions []string
	var args []interface{}

	if filter.Search != "" {
		conditions = append(conditions, `LOWER(location) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(filter.Search))+"%")
	}
	if filter.Location != "" {
		conditions = append(conditions, "location = ?")
		args = append(args, filter.Location)
	}
	if filter.Depth > 0 {
		conditions = append(conditions, "depth = ?")
		args = append(args, filter.Depth)
	}
	if filter.MinDepth > 0 {
		conditions = append(conditions, "depth >= ?")
		args = append(args, filter.MinDepth)
	}
	if filter.MaxDepth > 0 {
		conditions = append(conditions, "depth <= ?")
		args = append(args, filter.MaxDepth)
	}
	if filter.Days > 0 {
		anchor, ok, err := r.latestDay()
		if err != nil {
			return nil, 0, err
		}
		if ok {
			conditions = append(conditions, "timestamp >= ?")
			args = append(args, dataset.RecentCutoff(anchor, filter.Days).Unix())
		}
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM readings"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count readings: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	query := "SELECT " + readingColumns + " FROM readings" + where +
		" ORDER BY timestamp DESC, location ASC, depth ASC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	readings := []models.Reading{}
	for rows.Next() {
		reading, err := scanReading(rows)
		if err != nil {
			return nil, 0, err
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate readings: %w", err)
	}

	return readings, total, nil
}

// GetReadingByID retrieves a single reading, or nil when it does not exist
func (r *ReadingRepository) GetReadingByID(id string) (*models.Reading, error) {
	row := r.db.QueryRow("SELECT "+readingColumns+" FROM readings WHERE id = ?", id)

	reading, err := scanReading(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reading, nil
}

// latestDay returns the most recent sampled day in the mirror
func (r *ReadingRepository) latestDay() (time.Time, bool, error) {
	var latest sql.NullInt64
	if err := r.db.QueryRow("SELECT MAX(timestamp) FROM readings").Scan(&latest); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to query latest reading: %w", err)
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}
	return time.Unix(latest.Int64, 0).UTC(), true, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReading(row rowScanner) (models.Reading, error) {
	var reading models.Reading
	var ts int64
	err := row.Scan(
		&reading.ID, &ts, &reading.Latitude, &reading.Longitude, &reading.Depth,
		&reading.Temperature, &reading.Salinity, &reading.Oxygen, &reading.Location,
	)
	if err == sql.ErrNoRows {
		return reading, err
	}
	if err != nil {
		return reading, fmt.Errorf("failed to scan reading: %w", err)
	}
	reading.Timestamp = time.Unix(ts, 0).UTC()
	return reading, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
