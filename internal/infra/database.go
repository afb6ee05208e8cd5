package infra

import (
	"database/sql"
	"errors"
	"fmt"

	"bridges/internal/models/db_models"
	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to PostgreSQL when postgresURL is set and to the
// SQLite file at sqlitePath otherwise, then migrates the schema.
func OpenDatabase(postgresURL, sqlitePath string, log *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: gormlogger.Discard, TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	if postgresURL != "" {
		db, err = openPostgres(postgresURL, gormCfg)
	} else {
		db, err = openSQLite(sqlitePath, gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("dialect", db.Dialector.Name()))
	return db, nil
}

// openPostgres runs the gorm postgres dialect over lib/pq so that driver
// errors surface as *pq.Error.
func openPostgres(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection serializes access.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(db_models.AllModels()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := backfillSearchText(db); err != nil {
		return fmt.Errorf("backfill search text: %w", err)
	}
	return nil
}

// backfillSearchText fills the folded search column for rows written before
// it existed.
func backfillSearchText(db *gorm.DB) error {
	var stale []db_models.Bridge
	if err := db.Where("search_text = ''").Find(&stale).Error; err != nil {
		return err
	}
	for _, b := range stale {
		folded := db_models.FoldedSearchText(b.Name, b.RiverName, b.Description)
		if err := db.Model(&db_models.Bridge{}).Where("id = ?", b.ID).
			UpdateColumn("search_text", folded).Error; err != nil {
			return err
		}
	}
	return nil
}

func CloseDatabase(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", zap.Error(err))
	} else {
		log.Info("database connection closed")
	}
}

// IsForeignKeyViolation reports whether err came from a rejected foreign key.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}

// IsUniqueViolation reports whether err came from a unique index.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
