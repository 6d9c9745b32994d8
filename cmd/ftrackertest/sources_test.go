package ftrackertest

import (
	"errors"

	"github.com/stretchr/testify/suite"
)

// SourcesSuite инспектирует исходный код проекта
type SourcesSuite struct {
	suite.Suite

	knownLoggers      []string
	forbiddenPackages []string
}

// SetupSuite подготавливает необходимые зависимости
func (suite *SourcesSuite) SetupSuite() {
	if flagTargetSourcePath == "" {
		suite.T().Skip("-source-path flag required")
	}

	// список известных логгеров
	suite.knownLoggers = []string{
		"github.com/rs/zerolog",
		"go.uber.org/zap",
		"github.com/sirupsen/logrus",
		"log/slog",
	}

	// трекер работает только с данными в памяти процесса
	suite.forbiddenPackages = []string{
		"net",
		"database/sql",
		"github.com/go-resty/resty",
		"github.com/jackc/pgx",
	}
}

// TestLoggerUsage пробует рекурсивно найти хотя бы одно использование известных логгеров
func (suite *SourcesSuite) TestLoggerUsage() {
	err := usesKnownPackage(flagTargetSourcePath, suite.knownLoggers)
	if errors.Is(err, errUsageFound) {
		return
	}
	if errors.Is(err, errUsageNotFound) {
		suite.T().Errorf("Не найдено использование хотя бы одного известного логгера по пути %s", flagTargetSourcePath)
		return
	}
	suite.T().Errorf("Неожиданная ошибка при поиске использования логгера по пути %s: %s", flagTargetSourcePath, err)
}

// TestNoNetworkOrStorage проверяет, что трекер не использует сеть и базы данных
func (suite *SourcesSuite) TestNoNetworkOrStorage() {
	err := usesKnownPackage(flagTargetSourcePath, suite.forbiddenPackages)
	if errors.Is(err, errUsageNotFound) {
		return
	}
	suite.T().Errorf("Недопустимая зависимость: %s", err)
}
