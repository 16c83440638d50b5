// internal/connector/dispatch.go
package connector

import (
	"fmt"
	"net/http"
	"sort"

	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/common/errors"
	"crono-connector/internal/models"
)

type dispatchKey struct {
	Resource  models.Resource
	Operation models.Operation
}

type builderFunc func(*builder) (*cronoapi.Request, error)

// builder carries the per-item state shared by all request builders. One
// builder per item; no state survives the call.
type builder struct {
	item     Item
	basePath string
}

// registry is the single dispatch table. A missing key is the only source of
// UNSUPPORTED_RESOURCE / UNSUPPORTED_OPERATION errors.
var registry = map[dispatchKey]builderFunc{
	{models.ResourceCompany, models.OperationCreate}: (*builder).companyCreate,
	{models.ResourceCompany, models.OperationGet}:    (*builder).companyGet,
	{models.ResourceCompany, models.OperationGetAll}: (*builder).companyGetAll,
	{models.ResourceCompany, models.OperationSearch}: (*builder).companySearch,
	{models.ResourceCompany, models.OperationUpdate}: (*builder).companyUpdate,
	{models.ResourceCompany, models.OperationImport}: (*builder).companyImport,

	{models.ResourceContact, models.OperationCreate}: (*builder).contactCreate,
	{models.ResourceContact, models.OperationGet}:    (*builder).contactGet,
	{models.ResourceContact, models.OperationGetAll}: (*builder).contactGetAll,
	{models.ResourceContact, models.OperationSearch}: (*builder).contactSearch,
	{models.ResourceContact, models.OperationUpdate}: (*builder).contactUpdate,
	{models.ResourceContact, models.OperationImport}: (*builder).contactImport,

	{models.ResourceDeal, models.OperationCreate}: (*builder).dealCreate,
	{models.ResourceDeal, models.OperationGet}:    (*builder).dealGet,
	{models.ResourceDeal, models.OperationGetAll}: (*builder).dealGetAll,
	{models.ResourceDeal, models.OperationSearch}: (*builder).dealSearch,
	{models.ResourceDeal, models.OperationUpdate}: (*builder).dealUpdate,

	{models.ResourceNote, models.OperationCreate}: (*builder).noteCreate,
	{models.ResourceNote, models.OperationGet}:    (*builder).noteGet,
	{models.ResourceNote, models.OperationGetAll}: (*builder).noteGetAll,
	{models.ResourceNote, models.OperationSearch}: (*builder).noteSearch,

	{models.ResourceTask, models.OperationCreate}: (*builder).taskCreate,
	{models.ResourceTask, models.OperationGet}:    (*builder).taskGet,
	{models.ResourceTask, models.OperationGetAll}: (*builder).taskGetAll,
	{models.ResourceTask, models.OperationSearch}: (*builder).taskSearch,
	{models.ResourceTask, models.OperationUpdate}: (*builder).taskUpdate,

	{models.ResourceActivity, models.OperationCreate}: (*builder).activityCreate,
	{models.ResourceActivity, models.OperationGetAll}: (*builder).activityGetAll,
	{models.ResourceActivity, models.OperationSearch}: (*builder).activitySearch,

	{models.ResourceList, models.OperationSearch}: (*builder).listSearch,

	{models.ResourcePipeline, models.OperationGetAll}: (*builder).pipelineGetAll,

	{models.ResourceStrategy, models.OperationSearch}:        (*builder).strategySearch,
	{models.ResourceStrategy, models.OperationSearchDetails}: (*builder).strategySearchDetails,

	{models.ResourceExternalProperty, models.OperationSearch}: (*builder).externalPropertySearch,

	{models.ResourceUser, models.OperationGet}:    (*builder).userGet,
	{models.ResourceUser, models.OperationGetAll}: (*builder).userGetAll,
	{models.ResourceUser, models.OperationSearch}: (*builder).userSearch,

	{models.ResourceImport, models.OperationGet}:    (*builder).importGet,
	{models.ResourceImport, models.OperationGetAll}: (*builder).importGetAll,
}

// BuildRequest maps one input item to the single HTTP request it describes.
// Resource validity is checked before operation validity so an unknown
// resource never reports UNSUPPORTED_OPERATION.
func BuildRequest(item Item, apiVersion int) (*cronoapi.Request, error) {
	if apiVersion <= 0 {
		apiVersion = 1
	}
	resource := models.Resource(item.String("resource", ""))
	operation := models.Operation(item.String("operation", ""))

	if !resource.Valid() {
		return nil, errors.NewUnsupportedResourceError(string(resource), item.Index)
	}
	build, ok := registry[dispatchKey{resource, operation}]
	if !ok {
		return nil, errors.NewUnsupportedOperationError(string(resource), string(operation), item.Index)
	}

	b := &builder{
		item:     item,
		basePath: fmt.Sprintf("/api/v%d", apiVersion),
	}
	return build(b)
}

// SupportedOperations lists the operations registered for a resource, in a
// stable order. Used to keep the exported catalog honest.
func SupportedOperations(resource models.Resource) []models.Operation {
	var ops []models.Operation
	for key := range registry {
		if key.Resource == resource {
			ops = append(ops, key.Operation)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// getRequest builds a by-ID read. The query is the parsed includeOptions
// object; additional fields never apply to reads.
func (b *builder) getRequest(resource models.Resource, idParam string) (*cronoapi.Request, error) {
	id := b.item.String(idParam, "")
	if id == "" {
		return nil, errors.NewInvalidParameterError(idParam, b.item.Index,
			fmt.Errorf("a non-empty %s is required", idParam))
	}
	query, err := b.item.Object("includeOptions")
	if err != nil {
		return nil, err
	}
	return &cronoapi.Request{
		Method:   http.MethodGet,
		Endpoint: b.basePath + "/" + resource.Collection() + "/" + id,
		Query:    query,
	}, nil
}

// getAllRequest builds a collection read. limit and offset are always
// present; includeOptions entries are merged on top.
func (b *builder) getAllRequest(resource models.Resource) (*cronoapi.Request, error) {
	query := map[string]any{
		"limit":  b.item.Int("limit", 50),
		"offset": b.item.Int("offset", 0),
	}
	include, err := b.item.Object("includeOptions")
	if err != nil {
		return nil, err
	}
	mergeFields(query, include)
	return &cronoapi.Request{
		Method:   http.MethodGet,
		Endpoint: b.basePath + "/" + resource.Collection(),
		Query:    query,
	}, nil
}

// searchRequest builds a filtered collection search. Include flags travel in
// the query string; the body carries Limit/Offset (always) plus whatever fill
// adds, with additional fields merged last. Raw JSON mode replaces the whole
// body, additional fields included.
func (b *builder) searchRequest(resource models.Resource, prefix string, flags []string, fill func(body map[string]any) error) (*cronoapi.Request, error) {
	return b.searchRequestAt(b.basePath+"/"+resource.Collection()+"/search", prefix, flags, fill)
}

func (b *builder) searchRequestAt(endpoint, prefix string, flags []string, fill func(body map[string]any) error) (*cronoapi.Request, error) {
	query := map[string]any{}
	for _, flag := range flags {
		putFlag(query, flag, b.item.Bool(flag))
	}

	if b.item.Bool("useRawJsonSearch") {
		body, err := b.item.Object("rawJsonSearch")
		if err != nil {
			return nil, err
		}
		return &cronoapi.Request{Method: http.MethodPost, Endpoint: endpoint, Query: query, Body: body}, nil
	}

	body := map[string]any{
		"Limit":  b.item.Int(prefix+"SearchLimit", 50),
		"Offset": b.item.Int(prefix+"SearchOffset", 0),
	}
	if fill != nil {
		if err := fill(body); err != nil {
			return nil, err
		}
	}
	mergeFields(body, b.item.AdditionalFields())
	return &cronoapi.Request{Method: http.MethodPost, Endpoint: endpoint, Query: query, Body: body}, nil
}

// dataBody assembles the {data: ...} payload shared by create, update and
// import. Raw JSON mode replaces the generated fields and skips the
// additional-fields merge.
func (b *builder) dataBody(fill func(data map[string]any) error) (map[string]any, error) {
	if b.item.Bool("useRawJsonData") {
		data, err := b.item.Object("rawJsonData")
		if err != nil {
			return nil, err
		}
		return map[string]any{"data": data}, nil
	}
	data := map[string]any{}
	if fill != nil {
		if err := fill(data); err != nil {
			return nil, err
		}
	}
	mergeFields(data, b.item.AdditionalFields())
	return map[string]any{"data": data}, nil
}

// createRequest builds a POST against the collection root. withScrape adds
// the scrapeOptions sibling next to data when the parsed object is non-empty.
func (b *builder) createRequest(resource models.Resource, withScrape bool, fill func(data map[string]any) error) (*cronoapi.Request, error) {
	body, err := b.dataBody(fill)
	if err != nil {
		return nil, err
	}
	if withScrape {
		scrape, err := b.item.Object("scrapeOptions")
		if err != nil {
			return nil, err
		}
		putObject(body, "scrapeOptions", scrape)
	}
	return &cronoapi.Request{
		Method:   http.MethodPost,
		Endpoint: b.basePath + "/" + resource.Collection(),
		Body:     body,
	}, nil
}

// updateRequest builds a PATCH against the object addressed by objectId.
func (b *builder) updateRequest(resource models.Resource, fill func(data map[string]any) error) (*cronoapi.Request, error) {
	id := b.item.String("objectId", "")
	if id == "" {
		return nil, errors.NewInvalidParameterError("objectId", b.item.Index,
			fmt.Errorf("a non-empty objectId is required"))
	}
	body, err := b.dataBody(fill)
	if err != nil {
		return nil, err
	}
	return &cronoapi.Request{
		Method:   http.MethodPatch,
		Endpoint: b.basePath + "/" + resource.Collection() + "/" + id,
		Body:     body,
	}, nil
}

// importRequest builds the bulk-import POST. groupKey is the wire-side array
// name (Accounts or Prospects) and groupParam the repeated-group parameter
// holding the entry bags. The array is attached only when at least one entry
// produced fields. The payload goes through dataBody like create and update,
// so raw-JSON mode and the additional-fields merge apply here too.
func (b *builder) importRequest(groupKey, groupParam string, mapEntry func(entry Item, out map[string]any) error) (*cronoapi.Request, error) {
	body, err := b.dataBody(func(data map[string]any) error {
		putString(data, "Name", b.item.String("importName", ""))

		entries := b.item.Entries(groupParam)
		rows := make([]map[string]any, 0, len(entries))
		for _, params := range entries {
			entry := Item{Index: b.item.Index, Params: params}
			row := map[string]any{}
			if err := mapEntry(entry, row); err != nil {
				return err
			}
			if len(row) > 0 {
				rows = append(rows, row)
			}
		}
		if len(rows) > 0 {
			data[groupKey] = rows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cronoapi.Request{
		Method:   http.MethodPost,
		Endpoint: b.basePath + "/Import",
		Body:     body,
	}, nil
}
