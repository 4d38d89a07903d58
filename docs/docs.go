// Package docs embeds the OpenAPI documents of the four services and the
// Scalar page that renders them.
package docs

import (
	"embed"
	"fmt"
)

//go:embed scalar.html openapi/*.json
var files embed.FS

// ScalarHTML returns the documentation page served at /docs
func ScalarHTML() []byte {
	html, _ := files.ReadFile("scalar.html")
	return html
}

// OpenAPI returns the OpenAPI 3 document of service
func OpenAPI(service string) ([]byte, error) {
	doc, err := files.ReadFile("openapi/" + service + ".json")
	if err != nil {
		return nil, fmt.Errorf("no API document for service %q: %w", service, err)
	}
	return doc, nil
}
