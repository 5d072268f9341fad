package breeds

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

// Dialect identifies the SQL flavour behind a SQLStore.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

func (d Dialect) driverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

const createBreedProfilesTable = `CREATE TABLE IF NOT EXISTS breed_profiles (
	breed_key TEXT PRIMARY KEY,
	breed_name TEXT NOT NULL,
	breed_category TEXT NOT NULL DEFAULT '',
	region TEXT NOT NULL DEFAULT '',
	avg_daily_peak_liters DOUBLE PRECISION NOT NULL,
	peak_day INTEGER NOT NULL,
	persistence_rate DOUBLE PRECISION NOT NULL,
	standard_lactation_days INTEGER NOT NULL,
	total_lactation_liters DOUBLE PRECISION NOT NULL,
	low_management_multiplier DOUBLE PRECISION,
	medium_management_multiplier DOUBLE PRECISION,
	high_management_multiplier DOUBLE PRECISION,
	fat_percentage DOUBLE PRECISION NOT NULL,
	protein_percentage DOUBLE PRECISION NOT NULL,
	lactose_percentage DOUBLE PRECISION NOT NULL,
	total_solids_percentage DOUBLE PRECISION NOT NULL,
	optimal_dry_period_days INTEGER NOT NULL,
	avg_calving_interval_days INTEGER NOT NULL
)`

const profileColumns = `breed_key, breed_name, breed_category, region,
	avg_daily_peak_liters, peak_day, persistence_rate, standard_lactation_days, total_lactation_liters,
	low_management_multiplier, medium_management_multiplier, high_management_multiplier,
	fat_percentage, protein_percentage, lactose_percentage, total_solids_percentage,
	optimal_dry_period_days, avg_calving_interval_days`

// SQLStore persists breed profiles in SQLite or Postgres through database/sql.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	logger  *zap.Logger
}

// NewSQLStore opens the database, verifies the connection and ensures the
// breed_profiles table exists.
func NewSQLStore(ctx context.Context, dialect Dialect, dsn string, logger *zap.Logger) (*SQLStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == SQLite {
		// A single connection keeps ":memory:" databases shared across calls.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	if _, err := db.ExecContext(ctx, createBreedProfilesTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure breed_profiles table: %w", err)
	}

	logger.Info("breed store opened", zap.String("dialect", string(dialect)))
	return &SQLStore{db: db, dialect: dialect, logger: logger}, nil
}

// List returns every profile ordered by name.
func (s *SQLStore) List(ctx context.Context) ([]models.BreedProfile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM breed_profiles ORDER BY breed_name, breed_key`)
	if err != nil {
		return nil, fmt.Errorf("select breed profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.BreedProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate breed profiles: %w", err)
	}
	return out, nil
}

// Get returns the profile stored under key.
func (s *SQLStore) Get(ctx context.Context, key string) (models.BreedProfile, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+profileColumns+` FROM breed_profiles WHERE breed_key = ?`), key)

	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BreedProfile{}, fmt.Errorf("%w: %s", ErrBreedNotFound, key)
	}
	return p, err
}

// Upsert inserts or replaces a profile keyed by breed_key.
func (s *SQLStore) Upsert(ctx context.Context, p models.BreedProfile) error {
	if p.Key == "" {
		return fmt.Errorf("breed_key must not be empty")
	}

	query := s.rebind(`INSERT INTO breed_profiles (` + profileColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (breed_key) DO UPDATE SET
		breed_name = excluded.breed_name,
		breed_category = excluded.breed_category,
		region = excluded.region,
		avg_daily_peak_liters = excluded.avg_daily_peak_liters,
		peak_day = excluded.peak_day,
		persistence_rate = excluded.persistence_rate,
		standard_lactation_days = excluded.standard_lactation_days,
		total_lactation_liters = excluded.total_lactation_liters,
		low_management_multiplier = excluded.low_management_multiplier,
		medium_management_multiplier = excluded.medium_management_multiplier,
		high_management_multiplier = excluded.high_management_multiplier,
		fat_percentage = excluded.fat_percentage,
		protein_percentage = excluded.protein_percentage,
		lactose_percentage = excluded.lactose_percentage,
		total_solids_percentage = excluded.total_solids_percentage,
		optimal_dry_period_days = excluded.optimal_dry_period_days,
		avg_calving_interval_days = excluded.avg_calving_interval_days`)

	_, err := s.db.ExecContext(ctx, query,
		p.Key, p.Name, p.Category, p.Region,
		p.AvgDailyPeakLiters, p.PeakDay, p.PersistenceRate, p.StandardLactationDays, p.TotalLactationLiters,
		nullFloat(p.LowManagementMultiplier), nullFloat(p.MediumManagementMultiplier), nullFloat(p.HighManagementMultiplier),
		p.FatPercentage, p.ProteinPercentage, p.LactosePercentage, p.TotalSolidsPercentage,
		p.OptimalDryPeriodDays, p.AvgCalvingIntervalDays,
	)
	if err != nil {
		return fmt.Errorf("upsert breed %s: %w", p.Key, err)
	}

	s.logger.Debug("breed profile upserted", zap.String("breed_key", p.Key))
	return nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (models.BreedProfile, error) {
	var (
		p              models.BreedProfile
		low, med, high sql.NullFloat64
	)

	err := row.Scan(
		&p.Key, &p.Name, &p.Category, &p.Region,
		&p.AvgDailyPeakLiters, &p.PeakDay, &p.PersistenceRate, &p.StandardLactationDays, &p.TotalLactationLiters,
		&low, &med, &high,
		&p.FatPercentage, &p.ProteinPercentage, &p.LactosePercentage, &p.TotalSolidsPercentage,
		&p.OptimalDryPeriodDays, &p.AvgCalvingIntervalDays,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scan breed profile: %w", err)
	}

	p.LowManagementMultiplier = floatPtr(low)
	p.MediumManagementMultiplier = floatPtr(med)
	p.HighManagementMultiplier = floatPtr(high)
	return p, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return models.Float64(v.Float64)
}
