package tabular

import (
	"fmt"
	"net/http"
	"strings"
)

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// AssetsHandler serves AssetsFS below prefix.
func AssetsHandler(prefix string) http.Handler {
	return http.StripPrefix(mountPath(prefix), http.FileServerFS(AssetsFS()))
}

// RegisterAssetRoutes mounts AssetsHandler on mux at prefix (typically
// Field.AssetPath) and returns the registered pattern.
func RegisterAssetRoutes(mux Mux, prefix string) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("tabular: missing mux")
	}
	pattern := mountPath(prefix) + "/"
	mux.Handle(pattern, AssetsHandler(prefix))
	return pattern, nil
}

func mountPath(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" || prefix == "/" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimRight(prefix, "/")
}
