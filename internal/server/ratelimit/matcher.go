package ratelimit

import (
	"net/http"
	"strings"
)

// unlimited lists routes that never consume tokens: the health probe and
// the stylesheet every page pulls in. Paths ending in "/" match by prefix.
var unlimited = []EndpointConfig{
	{Path: "/health", Method: http.MethodGet},
	{Path: "/static/", Method: http.MethodGet},
}

// MatchEndpoint returns the configuration governing a request, or nil when
// the default limit applies. Unlimited routes match with a zero Limit.
// Exact paths win over prefix paths.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if ec := match(path, method, unlimited); ec != nil {
		return &EndpointConfig{Path: ec.Path, Method: ec.Method}
	}
	return match(path, method, configs)
}

func match(path, method string, configs []EndpointConfig) *EndpointConfig {
	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}
	return nil
}

// bucketKey names the token bucket for a client's request. Requests under
// one prefix route share a bucket, so /download/html and /download/pdf
// draw from the same allowance.
func bucketKey(clientID, path, method string, ec *EndpointConfig) string {
	if ec != nil && ec.Path != "" {
		path = ec.Path
	}
	return clientID + ":" + method + ":" + path
}
