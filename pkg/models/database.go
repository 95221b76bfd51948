package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// IsPostgres reports whether the data source name points to a PostgreSQL
// server. Every other data source name is treated as a SQLite database path.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens the database, migrates the schema and registers
// the error translation callbacks.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	var dialector gorm.Dialector
	if IsPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(sqliteDSN(dsn))
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if !IsPostgres(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database object: %w", err)
		}

		// Get new connections after one hour
		sqlDB.SetConnMaxLifetime(time.Hour)

		// A single connection prevents SQLITE_BUSY errors and keeps
		// in-memory databases alive for the whole lifetime of the pool.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = Migrate(db)
	if err != nil {
		return nil, err
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate migrates all models to the schema defined in the code.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Transaction{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// sqliteDSN enables foreign keys for the connection.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator)
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("moneyjournal:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("moneyjournal:after_query").Register("moneyjournal:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("moneyjournal:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("moneyjournal:after_create").Register("moneyjournal:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("moneyjournal:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("moneyjournal:after_update").Register("moneyjournal:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	return db.Callback().Delete().After("*").Register("moneyjournal:after_delete_general", generalCallback)
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// SQLite reports "UNIQUE constraint failed: users.username",
	// PostgreSQL "duplicate key value violates unique constraint "idx_users_username""
	if strings.Contains(msg, "UNIQUE constraint failed: users.") ||
		(strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "idx_users_")) {
		db.Error = ErrUserExists
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}
