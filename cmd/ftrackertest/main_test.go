package ftrackertest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestOutput(t *testing.T) {
	suite.Run(t, new(OutputSuite))
}

func TestSources(t *testing.T) {
	suite.Run(t, new(SourcesSuite))
}
