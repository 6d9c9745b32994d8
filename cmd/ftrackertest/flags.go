package ftrackertest

import (
	"flag"
)

var (
	flagTargetBinaryPath string
	flagTargetSourcePath string
)

func init() {
	flag.StringVar(&flagTargetBinaryPath, "binary-path", "", "path to target ftracker binary")
	flag.StringVar(&flagTargetSourcePath, "source-path", "", "path to target ftracker source")
}
