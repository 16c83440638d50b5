// internal/connector/misc.go
//
// Builders for the small single-operation resources: lists, pipelines,
// strategies, external properties, users and import job reads.
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

func (b *builder) listSearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceList, "list", nil, func(body map[string]any) error {
		putString(body, "Name", b.item.String("listSearchName", ""))
		putString(body, "Type", b.item.String("listSearchType", ""))
		return nil
	})
}

func (b *builder) pipelineGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourcePipeline)
}

func (b *builder) strategySearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceStrategy, "strategy", nil, func(body map[string]any) error {
		putString(body, "Name", b.item.String("strategySearchName", ""))
		putFlag(body, "Active", b.item.Bool("strategySearchActive"))
		return nil
	})
}

// strategySearchDetails reads detailed strategy rows for a set of IDs. The
// endpoint sits next to /search but keeps the same body shape, so the shared
// search builder applies.
func (b *builder) strategySearchDetails() (*cronoapi.Request, error) {
	endpoint := b.basePath + "/Strategies/details"
	return b.searchRequestAt(endpoint, "strategy", nil, func(body map[string]any) error {
		if err := putIntList(body, "Ids", b.item, "strategyDetailsIds"); err != nil {
			return err
		}
		putString(body, "Name", b.item.String("strategyDetailsName", ""))
		return nil
	})
}

func (b *builder) externalPropertySearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceExternalProperty, "externalProperty", nil, func(body map[string]any) error {
		putString(body, "TableType", b.item.String("externalPropertySearchTableType", ""))
		return nil
	})
}

func (b *builder) userGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceUser, "userId")
}

func (b *builder) userGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceUser)
}

func (b *builder) userSearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceUser, "user", nil, func(body map[string]any) error {
		putString(body, "Email", b.item.String("userSearchEmail", ""))
		putString(body, "Name", b.item.String("userSearchName", ""))
		return nil
	})
}

func (b *builder) importGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceImport, "importId")
}

// importGetAll lists import jobs. type and statusType are plain query
// filters; the paging defaults match every other collection read.
func (b *builder) importGetAll() (*cronoapi.Request, error) {
	req, err := b.getAllRequest(models.ResourceImport)
	if err != nil {
		return nil, err
	}
	putString(req.Query, "type", b.item.String("importType", ""))
	putString(req.Query, "statusType", b.item.String("importStatus", ""))
	return req, nil
}
