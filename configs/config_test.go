package configs_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"droscher.com/Weinkeller/configs"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) TestGetConfig_GetsNamedFile() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("testdata/wine.db", config.DB.Path)
	suite.Equal(3, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("debug", config.Log.Level)
}

func (suite *ConfigTestSuite) TestGetConfig_GetsEnv() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WEINKELLER_DB_PATH", "env/wine.db")
	suite.T().Setenv("WEINKELLER_DB_MAXIDLECONNECTIONS", "3")
	suite.T().Setenv("WEINKELLER_DB_MAXOPENCONNECTIONS", "7")
	suite.T().Setenv("WEINKELLER_SERVER_PORT", "666")
	suite.T().Setenv("WEINKELLER_LOG_LEVEL", "warn")

	config, err := configs.GetConfig("", logger)

	suite.Require().NoError(err)
	suite.Equal("env/wine.db", config.DB.Path)
	suite.Equal(3, config.DB.MaxIdleConnections)
	suite.Equal(7, config.DB.MaxOpenConnections)
	suite.Equal(666, config.Server.Port)
	suite.Equal("warn", config.Log.Level)
}

func (suite *ConfigTestSuite) TestGetConfig_EnvOverridesFile() {
	logger := zaptest.NewLogger(suite.T())

	suite.T().Setenv("WEINKELLER_DB_PATH", "env/wine.db")
	suite.T().Setenv("WEINKELLER_SERVER_PORT", "999")

	config, err := configs.GetConfig("testdata/config.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("env/wine.db", config.DB.Path)
	suite.Equal(999, config.Server.Port)
	suite.Equal(3, config.DB.MaxIdleConnections)
	suite.Equal("debug", config.Log.Level)
}

func (suite *ConfigTestSuite) TestGetConfig_DefaultsWhenFileMissing() {
	logger := zaptest.NewLogger(suite.T())

	config, err := configs.GetConfig("testdata/no_such_file.toml", logger)

	suite.Require().NoError(err)
	suite.Equal("./run/database/wine_inventory.db", config.DB.Path)
	suite.Equal(1, config.DB.MaxIdleConnections)
	suite.Equal(1, config.DB.MaxOpenConnections)
	suite.Equal(8080, config.Server.Port)
	suite.Equal("info", config.Log.Level)
}
