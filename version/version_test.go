// version/version_test.go
package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetHumanVersion verifies that GetHumanVersion joins the app name and version
func TestGetHumanVersion(t *testing.T) {
	expected := fmt.Sprintf("%s/%s", GetAppName(), GetVersion())

	assert.Equal(t, expected, GetHumanVersion(), "Human version should match expected format")
	assert.Equal(t, "paramparse", GetAppName())
}
