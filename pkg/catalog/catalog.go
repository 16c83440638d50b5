// Package catalog exposes a machine-readable description of the connector
// surface: resources, their REST collections, supported operations and the
// parameters each operation understands. UI layers and generators consume
// this instead of duplicating the dispatch tables.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// FieldDescriptor describes one input parameter.
type FieldDescriptor struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // string, number, boolean, json, collection
	Default     any    `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResourceDescriptor describes one resource and everything callable on it.
type ResourceDescriptor struct {
	Name       string            `json:"name"`
	Collection string            `json:"collection"`
	Operations []string          `json:"operations"`
	Fields     []FieldDescriptor `json:"fields,omitempty"`
}

// Catalog is the full connector surface.
type Catalog struct {
	Version   int                  `json:"version"`
	Resources []ResourceDescriptor `json:"resources"`
}

// Load reads a catalog override from a JSON file. Deployments that expose a
// trimmed surface ship their own file instead of the built-in Default.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	return &c, nil
}

// Resource returns the descriptor for a resource name, or nil.
func (c *Catalog) Resource(name string) *ResourceDescriptor {
	for i := range c.Resources {
		if c.Resources[i].Name == name {
			return &c.Resources[i]
		}
	}
	return nil
}

func field(name, typ string, def any, desc string) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: typ, Default: def, Description: desc}
}

// searchPaging returns the limit/offset descriptors every structured search
// body carries.
func searchPaging(prefix string) []FieldDescriptor {
	return []FieldDescriptor{
		field(prefix+"SearchLimit", "number", 50, "Maximum rows returned"),
		field(prefix+"SearchOffset", "number", 0, "Rows to skip"),
	}
}

// Default returns the built-in catalog matching the dispatch registry.
func Default() *Catalog {
	return &Catalog{
		Version: 1,
		Resources: []ResourceDescriptor{
			{
				Name:       "company",
				Collection: "Accounts",
				Operations: []string{"create", "get", "getAll", "import", "search", "update"},
				Fields: append([]FieldDescriptor{
					field("companyName", "string", nil, "Account name"),
					field("companyWebsite", "string", nil, ""),
					field("companyIndustry", "string", nil, ""),
					field("companyPhone", "string", nil, ""),
					field("companyCountry", "string", nil, ""),
					field("companyCity", "string", nil, ""),
					field("companyAddress", "string", nil, ""),
					field("companyZipCode", "string", nil, ""),
					field("companyNumberOfEmployees", "number", nil, ""),
					field("companyAnnualRevenue", "number", nil, ""),
					field("companyDescription", "string", nil, ""),
					field("companyOwnerId", "string", nil, ""),
					field("companyExternalValues", "json", nil, "JSON object of external property values"),
					field("companyTags", "json", nil, "JSON array of tag names"),
					field("companySearchName", "string", nil, ""),
					field("companySearchWebsite", "string", nil, ""),
					field("companySearchIndustry", "string", nil, ""),
					field("companySearchCountry", "string", nil, ""),
					field("companySearchOwnerId", "string", nil, ""),
					field("companySearchMinEmployees", "number", nil, ""),
					field("companySearchMaxEmployees", "number", nil, ""),
					field("companySearchCreatedAfter", "string", nil, "ISO timestamp lower bound"),
					field("companySearchCreatedBefore", "string", nil, "ISO timestamp upper bound"),
					field("companySearchExternalProperties", "json", nil, ""),
					field("companySearchExternalPropertyEmptyIds", "string", nil, "Comma-separated property IDs"),
					field("companySearchTags", "json", nil, ""),
					field("companySearchCleanEmptyName", "boolean", true, "Drop rows with an empty name"),
					field("withProspects", "boolean", false, ""),
					field("withOpportunities", "boolean", false, ""),
					field("withTags", "boolean", false, ""),
					field("scrapeOptions", "json", nil, "Enrichment options attached beside data"),
					field("importName", "string", nil, "Import job label"),
					field("accounts", "collection", nil, "Repeated account entries for bulk import"),
				}, searchPaging("company")...),
			},
			{
				Name:       "contact",
				Collection: "Prospects",
				Operations: []string{"create", "get", "getAll", "import", "search", "update"},
				Fields: append([]FieldDescriptor{
					field("contactFirstName", "string", nil, ""),
					field("contactLastName", "string", nil, ""),
					field("contactEmail", "string", nil, ""),
					field("contactPhone", "string", nil, ""),
					field("contactMobilePhone", "string", nil, ""),
					field("contactTitle", "string", nil, ""),
					field("contactLinkedinUrl", "string", nil, ""),
					field("contactAccountId", "string", nil, "Parent account ID"),
					field("contactOwnerId", "string", nil, ""),
					field("contactExternalValues", "json", nil, ""),
					field("contactTags", "json", nil, ""),
					field("contactSearchEmail", "string", nil, ""),
					field("contactSearchName", "string", nil, ""),
					field("contactSearchTitle", "string", nil, ""),
					field("contactSearchAccountId", "string", nil, ""),
					field("contactSearchOwnerId", "string", nil, ""),
					field("contactSearchCreatedAfter", "string", nil, ""),
					field("contactSearchCreatedBefore", "string", nil, ""),
					field("contactSearchExternalProperties", "json", nil, ""),
					field("contactSearchExternalPropertyEmptyIds", "string", nil, ""),
					field("contactSearchTags", "json", nil, ""),
					field("withAccount", "boolean", false, ""),
					field("withOpportunities", "boolean", false, ""),
					field("withTags", "boolean", false, ""),
					field("scrapeOptions", "json", nil, ""),
					field("importName", "string", nil, ""),
					field("prospects", "collection", nil, "Repeated prospect entries for bulk import"),
				}, searchPaging("contact")...),
			},
			{
				Name:       "deal",
				Collection: "Opportunities",
				Operations: []string{"create", "get", "getAll", "search", "update"},
				Fields: append([]FieldDescriptor{
					field("dealName", "string", nil, ""),
					field("dealAccountId", "string", nil, ""),
					field("dealProspectId", "string", nil, ""),
					field("dealPipelineId", "string", nil, ""),
					field("dealStageId", "string", nil, ""),
					field("dealAmount", "number", nil, ""),
					field("dealCloseDate", "string", nil, ""),
					field("dealDescription", "string", nil, ""),
					field("dealOwnerId", "string", nil, ""),
					field("dealExternalValues", "json", nil, ""),
					field("dealSearchName", "string", nil, ""),
					field("dealSearchAccountId", "string", nil, ""),
					field("dealSearchPipelineId", "string", nil, ""),
					field("dealSearchStageId", "string", nil, ""),
					field("dealSearchOwnerId", "string", nil, ""),
					field("dealSearchMinAmount", "number", nil, ""),
					field("dealSearchMaxAmount", "number", nil, ""),
					field("dealSearchClosedAfter", "string", nil, ""),
					field("dealSearchClosedBefore", "string", nil, ""),
					field("dealSearchExternalProperties", "json", nil, ""),
					field("dealSearchExternalPropertyEmptyIds", "string", nil, ""),
					field("withAccount", "boolean", false, ""),
					field("withProspect", "boolean", false, ""),
				}, searchPaging("deal")...),
			},
			{
				Name:       "note",
				Collection: "Notes",
				Operations: []string{"create", "get", "getAll", "search"},
				Fields: append([]FieldDescriptor{
					field("noteContent", "string", nil, ""),
					field("noteAccountId", "string", nil, ""),
					field("noteProspectId", "string", nil, ""),
					field("noteSearchAccountId", "string", nil, ""),
					field("noteSearchProspectId", "string", nil, ""),
					field("noteSearchCreatedAfter", "string", nil, ""),
					field("noteSearchCreatedBefore", "string", nil, ""),
				}, searchPaging("note")...),
			},
			{
				Name:       "task",
				Collection: "Tasks",
				Operations: []string{"create", "get", "getAll", "search", "update"},
				Fields: append([]FieldDescriptor{
					field("taskSubject", "string", nil, ""),
					field("taskType", "string", nil, ""),
					field("taskDescription", "string", nil, ""),
					field("taskDueDate", "string", nil, ""),
					field("taskAccountId", "string", nil, ""),
					field("taskProspectId", "string", nil, ""),
					field("taskOwnerId", "string", nil, ""),
					field("taskCompleted", "boolean", false, ""),
					field("taskSearchType", "string", nil, ""),
					field("taskSearchOwnerId", "string", nil, ""),
					field("taskSearchAccountId", "string", nil, ""),
					field("taskSearchProspectId", "string", nil, ""),
					field("taskSearchCompleted", "boolean", false, ""),
					field("taskSearchDueAfter", "string", nil, ""),
					field("taskSearchDueBefore", "string", nil, ""),
					field("withOpportunities", "boolean", false, ""),
					field("withAccounts", "boolean", false, ""),
					field("withProspects", "boolean", false, ""),
				}, searchPaging("task")...),
			},
			{
				Name:       "activity",
				Collection: "Activities",
				Operations: []string{"create", "getAll", "search"},
				Fields: append([]FieldDescriptor{
					field("activityType", "string", nil, ""),
					field("activityContent", "string", nil, ""),
					field("activityDate", "string", nil, ""),
					field("activityAccountId", "string", nil, ""),
					field("activityProspectId", "string", nil, ""),
					field("activitySearchType", "string", nil, ""),
					field("activitySearchAccountId", "string", nil, ""),
					field("activitySearchProspectId", "string", nil, ""),
					field("activitySearchAfter", "string", nil, ""),
					field("activitySearchBefore", "string", nil, ""),
				}, searchPaging("activity")...),
			},
			{
				Name:       "list",
				Collection: "Lists",
				Operations: []string{"search"},
				Fields: append([]FieldDescriptor{
					field("listSearchName", "string", nil, ""),
					field("listSearchType", "string", nil, ""),
				}, searchPaging("list")...),
			},
			{
				Name:       "pipeline",
				Collection: "Pipelines",
				Operations: []string{"getAll"},
			},
			{
				Name:       "strategy",
				Collection: "Strategies",
				Operations: []string{"search", "searchDetails"},
				Fields: append([]FieldDescriptor{
					field("strategySearchName", "string", nil, ""),
					field("strategySearchActive", "boolean", false, ""),
					field("strategyDetailsIds", "string", nil, "Comma-separated strategy IDs"),
					field("strategyDetailsName", "string", nil, ""),
				}, searchPaging("strategy")...),
			},
			{
				Name:       "externalProperty",
				Collection: "ExternalProperties",
				Operations: []string{"search"},
				Fields: append([]FieldDescriptor{
					field("externalPropertySearchTableType", "string", nil, "Account, Prospect or Opportunity"),
				}, searchPaging("externalProperty")...),
			},
			{
				Name:       "user",
				Collection: "Users",
				Operations: []string{"get", "getAll", "search"},
				Fields: append([]FieldDescriptor{
					field("userId", "string", nil, "User ID for by-ID reads"),
					field("userSearchEmail", "string", nil, ""),
					field("userSearchName", "string", nil, ""),
				}, searchPaging("user")...),
			},
			{
				Name:       "import",
				Collection: "Import",
				Operations: []string{"get", "getAll"},
				Fields: []FieldDescriptor{
					field("importId", "string", nil, "Import job ID for by-ID reads"),
					field("importType", "string", nil, "Account or Prospect"),
					field("importStatus", "string", nil, "Import job status filter"),
					field("limit", "number", 50, ""),
					field("offset", "number", 0, ""),
				},
			},
		},
	}
}
