//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import "os"

// maxDeviceNameLength is the bridge's limit for the devicetype suffix.
const maxDeviceNameLength = 19

// DeviceType identifies this client to the bridge during pairing.
// The bridge shows it in its whitelist, so the hostname is included
// to tell installations apart.
func DeviceType() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		hostname = "local"
	}

	if len(hostname) > maxDeviceNameLength {
		hostname = hostname[:maxDeviceNameLength]
	}

	return "hue#" + hostname
}
