package ratelimit

import "strings"

// unlimited marks an endpoint that is never metered.
var unlimited = EndpointConfig{}

// MatchEndpoint resolves the endpoint configuration for a request path and
// method. Exact path matches win over prefix matches; configs whose path
// ends in "/" match any longer path under that prefix (so "/profiles/"
// covers "/profiles/{id}"). The health check is always unmetered.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		u := unlimited
		return &u
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
