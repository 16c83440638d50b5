package connector

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/common/errors"
)

func build(t *testing.T, params map[string]any) *cronoapi.Request {
	t.Helper()
	req, err := BuildRequest(Item{Index: 0, Params: params}, 1)
	require.NoError(t, err)
	return req
}

func TestBuildRequest_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		method   string
		endpoint string
		query    map[string]any
		body     map[string]any
	}{
		{
			name:     "company get by id",
			params:   map[string]any{"resource": "company", "operation": "get", "objectId": "123"},
			method:   http.MethodGet,
			endpoint: "/api/v1/Accounts/123",
			query:    map[string]any{},
			body:     nil,
		},
		{
			name: "company get with include options",
			params: map[string]any{
				"resource": "company", "operation": "get", "objectId": "123",
				"includeOptions": `{"withTags":true}`,
			},
			method:   http.MethodGet,
			endpoint: "/api/v1/Accounts/123",
			query:    map[string]any{"withTags": true},
		},
		{
			name:     "contact getAll applies paging defaults",
			params:   map[string]any{"resource": "contact", "operation": "getAll"},
			method:   http.MethodGet,
			endpoint: "/api/v1/Prospects",
			query:    map[string]any{"limit": 50, "offset": 0},
		},
		{
			name: "task search routes include flags to the query string",
			params: map[string]any{
				"resource": "task", "operation": "search",
				"taskSearchLimit":   float64(10),
				"withOpportunities": true,
			},
			method:   http.MethodPost,
			endpoint: "/api/v1/Tasks/search",
			query:    map[string]any{"withOpportunities": true},
			body:     map[string]any{"Limit": 10, "Offset": 0},
		},
		{
			name: "import getAll translates filter names",
			params: map[string]any{
				"resource": "import", "operation": "getAll",
				"importType": "Account",
			},
			method:   http.MethodGet,
			endpoint: "/api/v1/Import",
			query:    map[string]any{"limit": 50, "offset": 0, "type": "Account"},
		},
		{
			name:     "user get uses userId",
			params:   map[string]any{"resource": "user", "operation": "get", "userId": "u-9"},
			method:   http.MethodGet,
			endpoint: "/api/v1/Users/u-9",
			query:    map[string]any{},
		},
		{
			name:     "pipeline getAll",
			params:   map[string]any{"resource": "pipeline", "operation": "getAll"},
			method:   http.MethodGet,
			endpoint: "/api/v1/Pipelines",
			query:    map[string]any{"limit": 50, "offset": 0},
		},
		{
			name: "strategy searchDetails hits the details endpoint",
			params: map[string]any{
				"resource": "strategy", "operation": "searchDetails",
				"strategyDetailsIds": "1, 2,3",
			},
			method:   http.MethodPost,
			endpoint: "/api/v1/Strategies/details",
			query:    map[string]any{},
			body:     map[string]any{"Limit": 50, "Offset": 0, "Ids": []int{1, 2, 3}},
		},
		{
			name: "deal update patches the object",
			params: map[string]any{
				"resource": "deal", "operation": "update",
				"objectId": "opp-7", "dealAmount": float64(1200.5),
			},
			method:   http.MethodPatch,
			endpoint: "/api/v1/Opportunities/opp-7",
			body:     map[string]any{"data": map[string]any{"Amount": 1200.5}},
		},
		{
			name: "note create wraps fields in data",
			params: map[string]any{
				"resource": "note", "operation": "create",
				"noteContent": "called, follow up friday", "noteAccountId": "acc-1",
			},
			method:   http.MethodPost,
			endpoint: "/api/v1/Notes",
			body: map[string]any{"data": map[string]any{
				"Content": "called, follow up friday", "AccountId": "acc-1",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := build(t, tt.params)
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.endpoint, req.Endpoint)
			if tt.query != nil {
				assertJSONEqual(t, tt.query, req.Query)
			}
			if tt.body != nil {
				assertJSONEqual(t, tt.body, req.Body)
			}
		})
	}
}

func TestBuildRequest_CompanySearch(t *testing.T) {
	t.Run("CleanEmptyName defaults to true and is always written", func(t *testing.T) {
		req := build(t, map[string]any{"resource": "company", "operation": "search"})
		assert.Equal(t, true, req.Body["CleanEmptyName"])
		assertJSONEqual(t, map[string]any{"Limit": 50, "Offset": 0}, map[string]any{
			"Limit": req.Body["Limit"], "Offset": req.Body["Offset"],
		})
	})

	t.Run("explicit false survives", func(t *testing.T) {
		req := build(t, map[string]any{
			"resource": "company", "operation": "search",
			"companySearchCleanEmptyName": false,
		})
		assert.Equal(t, false, req.Body["CleanEmptyName"])
	})

	t.Run("filters and lists", func(t *testing.T) {
		req := build(t, map[string]any{
			"resource": "company", "operation": "search",
			"companySearchName":                     "Acme",
			"companySearchMinEmployees":             float64(10),
			"companySearchExternalPropertyEmptyIds": "4,5",
			"companySearchTags":                     `["emea"]`,
			"withProspects":                         true,
		})
		assert.Equal(t, "Acme", req.Body["Name"])
		assert.Equal(t, float64(10), req.Body["MinEmployees"])
		assert.Equal(t, []int{4, 5}, req.Body["ExternalPropertyEmptyIds"])
		assert.Equal(t, []any{"emea"}, req.Body["Tags"])
		assert.Equal(t, map[string]any{"withProspects": true}, req.Query)
		assert.NotContains(t, req.Body, "Website")
	})
}

func TestBuildRequest_AdditionalFieldsOverride(t *testing.T) {
	req := build(t, map[string]any{
		"resource": "company", "operation": "create",
		"companyName": "A",
		"additionalFields": []any{
			map[string]any{"field": "Name", "value": "B"},
		},
	})

	data := req.Body["data"].(map[string]any)
	assert.Equal(t, "B", data["Name"])
}

func TestBuildRequest_RawJSONModes(t *testing.T) {
	t.Run("raw search body is used verbatim", func(t *testing.T) {
		req := build(t, map[string]any{
			"resource": "contact", "operation": "search",
			"useRawJsonSearch": true,
			"rawJsonSearch":    `{"Custom":"filter"}`,
			"additionalFields": []any{
				map[string]any{"field": "Name", "value": "ignored"},
			},
		})
		assert.Equal(t, map[string]any{"Custom": "filter"}, req.Body)
	})

	t.Run("raw data body skips generated fields and merge", func(t *testing.T) {
		req := build(t, map[string]any{
			"resource": "deal", "operation": "create",
			"useRawJsonData": true,
			"rawJsonData":    `{"Name":"verbatim"}`,
			"dealName":       "ignored",
			"additionalFields": []any{
				map[string]any{"field": "Amount", "value": float64(5)},
			},
		})
		assert.Equal(t, map[string]any{"data": map[string]any{"Name": "verbatim"}}, req.Body)
	})

	t.Run("malformed raw json is attributed to the parameter", func(t *testing.T) {
		_, err := BuildRequest(Item{Index: 6, Params: map[string]any{
			"resource": "company", "operation": "search",
			"useRawJsonSearch": true,
			"rawJsonSearch":    `{"broken`,
		}}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidJSONParameter))
		assert.Equal(t, 6, err.(*errors.StandardError).ItemIndex)
	})
}

func TestBuildRequest_CreateWithScrapeOptions(t *testing.T) {
	req := build(t, map[string]any{
		"resource": "contact", "operation": "create",
		"contactEmail":  "jo@acme.test",
		"scrapeOptions": `{"enrich":true}`,
	})

	assert.Equal(t, map[string]any{"enrich": true}, req.Body["scrapeOptions"])
	data := req.Body["data"].(map[string]any)
	assert.Equal(t, "jo@acme.test", data["Email"])

	// deals never carry scrapeOptions
	req = build(t, map[string]any{
		"resource": "deal", "operation": "create",
		"dealName":      "Q3 renewal",
		"scrapeOptions": `{"enrich":true}`,
	})
	assert.NotContains(t, req.Body, "scrapeOptions")
}

func TestBuildRequest_Import(t *testing.T) {
	req := build(t, map[string]any{
		"resource": "company", "operation": "import",
		"importName": "Q3 list",
		"accounts": []any{
			map[string]any{"name": "Acme", "website": "https://acme.test"},
			map[string]any{"name": "Globex"},
			map[string]any{},
		},
	})

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/Import", req.Endpoint)

	data := req.Body["data"].(map[string]any)
	assert.Equal(t, "Q3 list", data["Name"])

	accounts := data["Accounts"].([]map[string]any)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Acme", accounts[0]["Name"])
	assert.Equal(t, "https://acme.test", accounts[0]["Website"])
	assert.Equal(t, "Globex", accounts[1]["Name"])

	req = build(t, map[string]any{
		"resource": "contact", "operation": "import",
		"prospects": []any{
			map[string]any{"firstName": "Jo", "lastName": "Ng", "email": "jo@acme.test"},
		},
	})
	data = req.Body["data"].(map[string]any)
	prospects := data["Prospects"].([]map[string]any)
	require.Len(t, prospects, 1)
	assert.Equal(t, "Jo", prospects[0]["FirstName"])
	assert.Equal(t, "jo@acme.test", prospects[0]["Email"])
	assert.NotContains(t, data, "Name")
}

func TestBuildRequest_ImportRawJSONData(t *testing.T) {
	req := build(t, map[string]any{
		"resource": "company", "operation": "import",
		"useRawJsonData": true,
		"rawJsonData":    `{"Name":"verbatim import"}`,
		"importName":     "ignored",
		"accounts": []any{
			map[string]any{"name": "ignored too"},
		},
	})

	assert.Equal(t, "/api/v1/Import", req.Endpoint)
	assert.Equal(t, map[string]any{"data": map[string]any{"Name": "verbatim import"}}, req.Body)
}

func TestBuildRequest_ImportAdditionalFieldsOverride(t *testing.T) {
	req := build(t, map[string]any{
		"resource": "contact", "operation": "import",
		"importName": "Q3",
		"prospects": []any{
			map[string]any{"email": "jo@acme.test"},
		},
		"additionalFields": []any{
			map[string]any{"field": "Name", "value": "Override"},
			map[string]any{"field": "Source", "value": "csv"},
		},
	})

	data := req.Body["data"].(map[string]any)
	assert.Equal(t, "Override", data["Name"])
	assert.Equal(t, "csv", data["Source"])

	prospects := data["Prospects"].([]map[string]any)
	require.Len(t, prospects, 1)
	assert.Equal(t, "jo@acme.test", prospects[0]["Email"])
}

func TestBuildRequest_UnsupportedCombinations(t *testing.T) {
	t.Run("unknown resource", func(t *testing.T) {
		_, err := BuildRequest(Item{Index: 2, Params: map[string]any{
			"resource": "invoice", "operation": "get",
		}}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedResource))
		assert.Equal(t, 2, err.(*errors.StandardError).ItemIndex)
	})

	t.Run("known resource, unknown operation", func(t *testing.T) {
		_, err := BuildRequest(Item{Index: 5, Params: map[string]any{
			"resource": "pipeline", "operation": "create",
		}}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeUnsupportedOperation))
		assert.Equal(t, 5, err.(*errors.StandardError).ItemIndex)
	})

	t.Run("missing id parameter", func(t *testing.T) {
		_, err := BuildRequest(Item{Index: 1, Params: map[string]any{
			"resource": "task", "operation": "get",
		}}, 1)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidParameter))
	})
}

func TestBuildRequest_APIVersion(t *testing.T) {
	req, err := BuildRequest(Item{Params: map[string]any{
		"resource": "user", "operation": "getAll",
	}}, 2)
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/Users", req.Endpoint)

	req, err = BuildRequest(Item{Params: map[string]any{
		"resource": "user", "operation": "getAll",
	}}, 0)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/Users", req.Endpoint)
}

// assertJSONEqual compares maps while ignoring int/float64 representation
// differences coming from literal test fixtures.
func assertJSONEqual(t *testing.T, expected, actual map[string]any) {
	t.Helper()
	require.Equal(t, len(expected), len(actual), "key sets differ: want %v, got %v", expected, actual)
	for key, want := range expected {
		got, ok := actual[key]
		require.True(t, ok, "missing key %q", key)
		switch w := want.(type) {
		case int:
			assert.EqualValues(t, w, got, "key %q", key)
		case float64:
			assert.EqualValues(t, w, got, "key %q", key)
		default:
			assert.Equal(t, want, got, "key %q", key)
		}
	}
}
