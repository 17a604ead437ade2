package serverutils

import "strings"

// publicPathPrefixes lists the paths that bypass the admission chain
// entirely: the health check and the API documentation surface.
var publicPathPrefixes = []string{
	"/health",
	"/v3/api-docs",
	"/swagger-ui",
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
