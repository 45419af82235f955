// Package store provides the optional PostgreSQL tier for polygon
// attributes. The table is upserted by the offline seeder and read by the
// DSS attribute resolver; everything degrades to the JSON cache when no
// DATABASE_URL is configured.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"vanachitra/models"
)

type Store struct {
	db *sql.DB
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS polygon_attributes (
	polygon_id TEXT PRIMARY KEY,
	water_level INTEGER,
	groundwater_index REAL,
	soil_quality TEXT,
	crop_yield REAL,
	forest_cover_percentage REAL,
	poverty_index REAL,
	infra_index REAL
)`

// Open connects to PostgreSQL and verifies the connection with a timeout.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}
	return &Store{db: db}, nil
}

// OpenWithRetry attempts to connect with retries. Returns nil without error
// when dsn is empty: the DB tier is optional.
func OpenWithRetry(dsn string, maxRetries int) (*Store, error) {
	if dsn == "" {
		return nil, nil
	}
	var err error
	for i := 0; i < maxRetries; i++ {
		var s *Store
		s, err = Open(dsn)
		if err == nil {
			return s, nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(5 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping() error { return s.db.Ping() }

// EnsureSchema creates the polygon_attributes table when absent.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schemaSQL)
	return err
}

// GetAttributes looks up attributes for a polygon id. A missing row returns
// (nil, nil) so callers can fall through to the next source.
func (s *Store) GetAttributes(ctx context.Context, polygonID string) (*models.PolygonAttributes, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT water_level, groundwater_index, soil_quality, crop_yield,
			   forest_cover_percentage, poverty_index, infra_index
		FROM polygon_attributes WHERE polygon_id = $1`, polygonID)

	var (
		waterLevel  sql.NullFloat64
		groundwater sql.NullFloat64
		soilQuality sql.NullString
		cropYield   sql.NullFloat64
		forestCover sql.NullFloat64
		povertyIdx  sql.NullFloat64
		infraIdx    sql.NullFloat64
	)
	err := row.Scan(&waterLevel, &groundwater, &soilQuality, &cropYield, &forestCover, &povertyIdx, &infraIdx)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	attrs := &models.PolygonAttributes{}
	if waterLevel.Valid {
		attrs.WaterLevel = models.Float(waterLevel.Float64)
	}
	if groundwater.Valid {
		attrs.GroundwaterIndex = models.Float(groundwater.Float64)
	}
	if soilQuality.Valid {
		attrs.SoilQuality = models.String(soilQuality.String)
	}
	if cropYield.Valid {
		attrs.CropYield = models.Float(cropYield.Float64)
	}
	if forestCover.Valid {
		attrs.ForestCoverPercentage = models.Float(forestCover.Float64)
	}
	if povertyIdx.Valid {
		attrs.PovertyIndex = models.Float(povertyIdx.Float64)
	}
	if infraIdx.Valid {
		attrs.InfraIndex = models.Float(infraIdx.Float64)
	}
	return attrs, nil
}

// UpsertAttributes writes a batch of attribute records inside a single
// transaction, replacing existing rows on conflict.
func (s *Store) UpsertAttributes(ctx context.Context, records map[string]models.PolygonAttributes) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO polygon_attributes (
			polygon_id, water_level, groundwater_index, soil_quality,
			crop_yield, forest_cover_percentage, poverty_index, infra_index
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (polygon_id) DO UPDATE SET
			water_level = EXCLUDED.water_level,
			groundwater_index = EXCLUDED.groundwater_index,
			soil_quality = EXCLUDED.soil_quality,
			crop_yield = EXCLUDED.crop_yield,
			forest_cover_percentage = EXCLUDED.forest_cover_percentage,
			poverty_index = EXCLUDED.poverty_index,
			infra_index = EXCLUDED.infra_index`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for id, attrs := range records {
		_, err := stmt.ExecContext(ctx, id,
			nullableFloat(attrs.WaterLevel),
			nullableFloat(attrs.GroundwaterIndex),
			nullableString(attrs.SoilQuality),
			nullableFloat(attrs.CropYield),
			nullableFloat(attrs.ForestCoverPercentage),
			nullableFloat(attrs.PovertyIndex),
			nullableFloat(attrs.InfraIndex))
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
