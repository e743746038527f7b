package tests_test

import (
	"fmt"
	"strings"

	"github.com/containerd/nerdctl/mod/tigron/test"
	"github.com/containerd/nerdctl/mod/tigron/tig"

	"github.com/farcloser/lintreport"
)

func warning(plugin, text string) *lintreport.Message {
	return &lintreport.Message{Type: lintreport.TypeWarning, Plugin: plugin, Text: text}
}

func lintError(plugin, text string) *lintreport.Message {
	return &lintreport.Message{Type: lintreport.TypeError, Plugin: plugin, Text: text, Line: 1, Column: 1}
}

// expectContains returns a comparator verifying the output contains a substring.
func expectContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if !strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("expected substring %q not found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectNotContains returns a comparator verifying the output does not contain a substring.
func expectNotContains(substr string) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		if strings.Contains(stdout, substr) {
			testing.Log(fmt.Sprintf("unexpected substring %q found in output:\n%s", substr, stdout))
			testing.Fail()
		}
	}
}

// expectPassed returns a comparator verifying the pass summary and its file count.
func expectPassed(files int) test.Comparator {
	return func(stdout string, testing tig.T) {
		testing.Helper()

		count := fmt.Sprintf("Number of files linted: %d", files)

		if strings.Contains(stdout, "Passed ✓") && strings.Contains(stdout, count) {
			return
		}

		testing.Log(fmt.Sprintf("expected pass summary for %d files not found in output:\n%s", files, stdout))
		testing.Fail()
	}
}
