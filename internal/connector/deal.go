// internal/connector/deal.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

func dealData(it Item, data map[string]any) error {
	putString(data, "Name", it.String("dealName", ""))
	putString(data, "AccountId", it.String("dealAccountId", ""))
	putString(data, "ProspectId", it.String("dealProspectId", ""))
	putString(data, "PipelineId", it.String("dealPipelineId", ""))
	putString(data, "StageId", it.String("dealStageId", ""))
	putNumber(data, "Amount", it.Float("dealAmount", 0))
	putString(data, "CloseDate", it.String("dealCloseDate", ""))
	putString(data, "Description", it.String("dealDescription", ""))
	putString(data, "OwnerId", it.String("dealOwnerId", ""))

	values, err := it.Object("dealExternalValues")
	if err != nil {
		return err
	}
	putObject(data, "ExternalValues", values)
	return nil
}

func (b *builder) dealCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceDeal, false, func(data map[string]any) error {
		return dealData(b.item, data)
	})
}

func (b *builder) dealGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceDeal, "objectId")
}

func (b *builder) dealGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceDeal)
}

func (b *builder) dealSearch() (*cronoapi.Request, error) {
	flags := []string{"withAccount", "withProspect"}
	return b.searchRequest(models.ResourceDeal, "deal", flags, func(body map[string]any) error {
		it := b.item
		putString(body, "Name", it.String("dealSearchName", ""))
		putString(body, "AccountId", it.String("dealSearchAccountId", ""))
		putString(body, "PipelineId", it.String("dealSearchPipelineId", ""))
		putString(body, "StageId", it.String("dealSearchStageId", ""))
		putString(body, "OwnerId", it.String("dealSearchOwnerId", ""))
		putNumber(body, "MinAmount", it.Float("dealSearchMinAmount", 0))
		putNumber(body, "MaxAmount", it.Float("dealSearchMaxAmount", 0))
		putString(body, "ClosedAfter", it.String("dealSearchClosedAfter", ""))
		putString(body, "ClosedBefore", it.String("dealSearchClosedBefore", ""))

		props, err := it.Object("dealSearchExternalProperties")
		if err != nil {
			return err
		}
		putObject(body, "ExternalProperties", props)

		return putIntList(body, "ExternalPropertyEmptyIds", it, "dealSearchExternalPropertyEmptyIds")
	})
}

func (b *builder) dealUpdate() (*cronoapi.Request, error) {
	return b.updateRequest(models.ResourceDeal, func(data map[string]any) error {
		return dealData(b.item, data)
	})
}
