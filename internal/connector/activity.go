// internal/connector/activity.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

func (b *builder) activityCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceActivity, false, func(data map[string]any) error {
		it := b.item
		putString(data, "Type", it.String("activityType", ""))
		putString(data, "Content", it.String("activityContent", ""))
		putString(data, "Date", it.String("activityDate", ""))
		putString(data, "AccountId", it.String("activityAccountId", ""))
		putString(data, "ProspectId", it.String("activityProspectId", ""))
		return nil
	})
}

func (b *builder) activityGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceActivity)
}

func (b *builder) activitySearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceActivity, "activity", nil, func(body map[string]any) error {
		it := b.item
		putString(body, "Type", it.String("activitySearchType", ""))
		putString(body, "AccountId", it.String("activitySearchAccountId", ""))
		putString(body, "ProspectId", it.String("activitySearchProspectId", ""))
		putString(body, "After", it.String("activitySearchAfter", ""))
		putString(body, "Before", it.String("activitySearchBefore", ""))
		return nil
	})
}
