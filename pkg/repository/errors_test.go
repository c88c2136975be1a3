package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/Weinkeller/pkg/repository"
)

var errDatabaseDown = errors.New("database is down")

// ErrorPathTestSuite swaps the database for a mock so driver failures can
// be injected. The dialector probes the sqlite version at open, which the
// mock has to answer first.
type ErrorPathTestSuite struct {
	suite.Suite
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func TestErrorPathTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorPathTestSuite))
}

func (suite *ErrorPathTestSuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	suite.mock.ExpectQuery(`select sqlite_version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.45.1"))

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.Require().NoError(err)

	suite.repository = repository.Repository{DB: gormDB, Logger: observedLogger}
}

func (suite *ErrorPathTestSuite) TestGetHistory_PropagatesQueryError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errDatabaseDown)

	events, err := suite.repository.GetHistory(context.Background())
	suite.Require().ErrorIs(err, errDatabaseDown)
	suite.Nil(events)
}

func (suite *ErrorPathTestSuite) TestGetCurrentStock_PropagatesQueryError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errDatabaseDown)

	levels, err := suite.repository.GetCurrentStock(context.Background())
	suite.Require().ErrorIs(err, errDatabaseDown)
	suite.Nil(levels)
}

func (suite *ErrorPathTestSuite) TestGetCurrentStockForWine_PropagatesQueryError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errDatabaseDown)

	stock, err := suite.repository.GetCurrentStockForWine(context.Background(), 1)
	suite.Require().ErrorIs(err, errDatabaseDown)
	suite.Zero(stock)
}

func (suite *ErrorPathTestSuite) TestGetAllWines_PropagatesQueryError() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(errDatabaseDown)

	wines, err := suite.repository.GetAllWines(context.Background())
	suite.Require().ErrorIs(err, errDatabaseDown)
	suite.Nil(wines)
}
