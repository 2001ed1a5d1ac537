package config

import (
	"strings"

	"github.com/fivetwenty-io/svix-client/internal/constants"
)

// ResolveBaseURL returns serverURL when it is set, and otherwise the API host
// of the region named by the last dot-separated segment of token. Unknown
// suffixes, tokens without a dot and empty tokens map to the global host.
func ResolveBaseURL(token, serverURL string) string {
	if serverURL != "" {
		return serverURL
	}

	parts := strings.Split(token, constants.TokenRegionDelimiter)

	switch parts[len(parts)-1] {
	case constants.RegionUS:
		return constants.ServerURLUS
	case constants.RegionEU:
		return constants.ServerURLEU
	case constants.RegionIN:
		return constants.ServerURLIN
	default:
		return constants.DefaultServerURL
	}
}
