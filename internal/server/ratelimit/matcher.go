package ratelimit

import "strings"

// exemptPaths are never rate limited.
var exemptPaths = map[string]bool{"/health": true}

const exactMatch = 1 << 20

// MatchEndpoint returns the configuration governing a request, or nil when the
// default budget applies. An exact path beats a prefix ("/jobs/" covers
// "/jobs/private/{id}"), a longer prefix beats a shorter one, and a config with
// an empty Method matches every method but loses ties to a method-specific one.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if exemptPaths[path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	bestScore := -1
	for i := range configs {
		config := &configs[i]
		if config.Method != "" && config.Method != method {
			continue
		}
		score := pathScore(config.Path, path)
		if score < 0 {
			continue
		}
		score *= 2
		if config.Method != "" {
			score++
		}
		if score > bestScore {
			best, bestScore = config, score
		}
	}
	return best
}

// pathScore ranks how specifically pattern covers path; -1 means no match.
func pathScore(pattern, path string) int {
	switch {
	case pattern == path:
		return exactMatch
	case strings.HasSuffix(pattern, "/") && strings.HasPrefix(path, pattern):
		return len(pattern)
	default:
		return -1
	}
}
