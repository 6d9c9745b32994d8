package ftrackertest

import (
	"strings"

	"github.com/stretchr/testify/suite"
)

// OutputSuite проверяет вывод бинарника на встроенном наборе пакетов
type OutputSuite struct {
	suite.Suite
}

// SetupSuite проверяет наличие необходимых флагов
func (suite *OutputSuite) SetupSuite() {
	if flagTargetBinaryPath == "" {
		suite.T().Skip("-binary-path flag required")
	}
}

func (suite *OutputSuite) TestExitCode() {
	e := New(suite.T())
	run := RunTracker(e)
	suite.Equal(0, run.ExitCode, "бинарник должен завершаться с кодом 0, STDERR:\n%s", run.Stderr)
}

func (suite *OutputSuite) TestReportLines() {
	e := New(suite.T())
	run := RunTracker(e)

	lines := strings.Split(strings.TrimSuffix(run.Stdout, "\n"), "\n")
	suite.Equal(expectedDefaultOutput(), lines, "вывод бинарника не совпадает с ожидаемым")
}

func (suite *OutputSuite) TestLogsOnStderr() {
	e := New(suite.T())
	run := RunTracker(e)

	suite.NotContains(run.Stdout, "level=", "логи не должны попадать в STDOUT")
	suite.Contains(run.Stderr, "level=info", "ожидаются логи уровня info в STDERR")
	suite.Contains(run.Stderr, "batch_id=", "в логах должен быть идентификатор пачки")
}

func (suite *OutputSuite) TestIgnoresArguments() {
	e := New(suite.T())
	plain := RunTracker(e)
	withArgs := RunTracker(e, "-workers=10", "packages.json")

	suite.Equal(plain.ExitCode, withArgs.ExitCode, "бинарник не должен принимать аргументы командной строки")
	suite.Equal(plain.Stdout, withArgs.Stdout, "аргументы командной строки не должны влиять на вывод")
}
