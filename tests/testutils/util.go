// Package testutils provides test infrastructure for lintreport integration tests.
package testutils

import (
	"encoding/json"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/farcloser/agar/pkg/agar"

	"github.com/farcloser/lintreport"
)

// Setup creates a test case configured to run the lintreport binary.
func Setup() *test.Case {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	binaryPath := filepath.Join(projectRoot, "bin", "lintreport")

	return agar.Setup(binaryPath)
}

// FileUnit returns a unit for a file on disk.
func FileUnit(file string, messages ...*lintreport.Message) *lintreport.Unit {
	return &lintreport.Unit{
		Messages: messages,
		Root:     lintreport.Root{Source: &lintreport.Source{Input: lintreport.Input{File: file}}},
	}
}

// SaveUnits writes units as JSON Lines into the test temp directory and returns the path.
func SaveUnits(data test.Data, name string, units ...*lintreport.Unit) string {
	var lines strings.Builder

	for _, unit := range units {
		raw, err := json.Marshal(unit)
		if err != nil {
			panic(err)
		}

		lines.Write(raw)
		lines.WriteString("\n")
	}

	return data.Temp().Save(lines.String(), name)
}
