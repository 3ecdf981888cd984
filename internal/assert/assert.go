package assert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// EqualToFixture compares output with the content of a text fixture file.
// If GEN_FIXTURE=true is set, it writes output to the fixture file and passes the test.
// The fixture path is derived from the test name: fixtures/<a.T.Name()>_<fixtureName>.txt
// Subtest separators in the name are replaced with underscores.
func (a *Assert) EqualToFixture(fixtureName string, output string) {
	testName := strings.ReplaceAll(a.T.Name(), "/", "_")
	fixturePath := filepath.Join("fixtures", fmt.Sprintf("%s_%s.txt", testName, fixtureName))

	if os.Getenv("GEN_FIXTURE") == "true" {
		err := os.MkdirAll(filepath.Dir(fixturePath), 0755)
		a.NoError(err, "Failed to create fixture directory")
		err = os.WriteFile(fixturePath, []byte(output), 0644)
		a.NoError(err, "Failed to write fixture file")
		return // Skip comparison when generating fixtures
	}

	expected, err := os.ReadFile(fixturePath)
	a.NoError(err, "Failed to read fixture file")

	a.Equal(string(expected), output, "Output does not match fixture")
}
