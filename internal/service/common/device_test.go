//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDeviceType ensures the devicetype has the app#device shape within bridge limits.
func TestDeviceType(t *testing.T) {
	t.Parallel()

	deviceType := DeviceType()
	require.True(t, strings.HasPrefix(deviceType, "hue#"))

	suffix := strings.TrimPrefix(deviceType, "hue#")
	require.NotEmpty(t, suffix)
	require.LessOrEqual(t, len(suffix), maxDeviceNameLength)
}
