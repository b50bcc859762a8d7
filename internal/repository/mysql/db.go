package mysql

import (
	"context"
	"fmt"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/jinhyuk9714/Back-likelion/internal/repository/mysql/model"
)

// DSNConfig holds the connection settings of the MySQL server.
type DSNConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Location *time.Location
}

// DSN formats the settings as a go-sql-driver data source name.
func (c DSNConfig) DSN() string {
	cfg := driver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = c.Host + ":" + c.Port
	cfg.DBName = c.Name
	cfg.ParseTime = true
	// RowsAffected counts matched rows, not only changed ones
	cfg.ClientFoundRows = true
	if c.Location != nil {
		cfg.Loc = c.Location
	}
	return cfg.FormatDSN()
}

// Connect opens the database and pings it, retrying maxRetry times.
func Connect(dsn string, maxRetry int, interval time.Duration) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if maxRetry < 1 {
		maxRetry = 1
	}

	for i := range maxRetry {
		db, err = gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, maxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, maxRetry, err)
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, maxRetry, err)
				_ = sqlDB.Close()
			}
		}

		time.Sleep(interval)
	}

	return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetry, err)
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the member, post and comment tables.
// Comments cascade on post deletion and on deletion of their parent row.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(model.All()...)
}
