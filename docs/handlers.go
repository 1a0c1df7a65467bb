// Package docs serves the OpenAPI description of the API and a Swagger UI
// page that renders it.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiSpec []byte

var (
	jsonOnce sync.Once
	jsonSpec []byte
	jsonErr  error
)

// RegisterRoutes mounts /openapi.yaml, /openapi.json and /api-docs.
func RegisterRoutes(r gin.IRoutes) {
	r.GET("/openapi.yaml", serveYAML)
	r.GET("/openapi.json", serveJSON)
	r.GET("/api-docs", serveUI)
}

func serveYAML(c *gin.Context) {
	c.Data(http.StatusOK, "application/x-yaml", openapiSpec)
}

func serveJSON(c *gin.Context) {
	spec, err := SpecJSON()
	if err != nil {
		utils.RespondAppError(c, utils.NewInternal("failed to render OpenAPI document", err))
		return
	}
	c.Data(http.StatusOK, "application/json", spec)
}

func serveUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIPage))
}

// SpecJSON converts the embedded YAML document to JSON once and caches it.
func SpecJSON() ([]byte, error) {
	jsonOnce.Do(func() {
		var doc interface{}
		if err := yaml.Unmarshal(openapiSpec, &doc); err != nil {
			jsonErr = fmt.Errorf("parse openapi.yaml: %w", err)
			return
		}
		jsonSpec, jsonErr = json.Marshal(stringKeys(doc))
	})
	return jsonSpec, jsonErr
}

// stringKeys rewrites YAML maps with non-string keys so encoding/json accepts them.
func stringKeys(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []interface{}:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Hotel Brand API - Swagger UI</title>
  <link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui.css" />
  <style>
    body { margin: 0; padding: 0; }
  </style>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui-bundle.js" charset="UTF-8"></script>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui-standalone-preset.js" charset="UTF-8"></script>
<script>
window.onload = function() {
  window.ui = SwaggerUIBundle({
    url: "/openapi.yaml",
    dom_id: '#swagger-ui',
    deepLinking: true,
    presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
    layout: "StandaloneLayout",
    persistAuthorization: true
  });
};
</script>
</body>
</html>`
