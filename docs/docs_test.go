package docs

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
)

func TestRegisteredDocument(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Swagger  string                                `json:"swagger"`
		BasePath string                                `json:"basePath"`
		Info     struct{ Title string }                `json:"info"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "the template renders valid JSON")

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Equal(t, "Shop Admin API", doc.Info.Title)

	var operations []string
	for path, methods := range doc.Paths {
		for method := range methods {
			operations = append(operations, method+" "+path)
		}
	}
	sort.Strings(operations)
	assert.Equal(t, []string{
		"get /audit",
		"get /customers",
		"get /customers/{id}",
		"get /employees",
		"get /employees/{id}",
		"get /expenses",
		"get /expenses/total",
		"get /files",
		"get /files/url",
		"get /investments",
		"get /investments/total",
		"get /investments/{id}",
		"get /orders",
		"get /orders/total",
		"get /orders/{id}",
		"get /payroll/payslips",
		"get /payroll/runs",
		"get /payroll/runs/{id}",
		"get /products",
		"get /products/{id}",
		"get /session",
		"patch /customers/{id}/payment-methods",
		"post /customers/{id}/balance-adjustments",
		"post /session/sign-out",
	}, operations)
}
