// internal/connector/task.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

func taskData(it Item, data map[string]any) error {
	putString(data, "Subject", it.String("taskSubject", ""))
	putString(data, "Type", it.String("taskType", ""))
	putString(data, "Description", it.String("taskDescription", ""))
	putString(data, "DueDate", it.String("taskDueDate", ""))
	putString(data, "AccountId", it.String("taskAccountId", ""))
	putString(data, "ProspectId", it.String("taskProspectId", ""))
	putString(data, "OwnerId", it.String("taskOwnerId", ""))
	putFlag(data, "Completed", it.Bool("taskCompleted"))
	return nil
}

func (b *builder) taskCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceTask, false, func(data map[string]any) error {
		return taskData(b.item, data)
	})
}

func (b *builder) taskGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceTask, "objectId")
}

func (b *builder) taskGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceTask)
}

func (b *builder) taskSearch() (*cronoapi.Request, error) {
	flags := []string{"withOpportunities", "withAccounts", "withProspects"}
	return b.searchRequest(models.ResourceTask, "task", flags, func(body map[string]any) error {
		it := b.item
		putString(body, "Type", it.String("taskSearchType", ""))
		putString(body, "OwnerId", it.String("taskSearchOwnerId", ""))
		putString(body, "AccountId", it.String("taskSearchAccountId", ""))
		putString(body, "ProspectId", it.String("taskSearchProspectId", ""))
		putFlag(body, "Completed", it.Bool("taskSearchCompleted"))
		putString(body, "DueAfter", it.String("taskSearchDueAfter", ""))
		putString(body, "DueBefore", it.String("taskSearchDueBefore", ""))
		return nil
	})
}

func (b *builder) taskUpdate() (*cronoapi.Request, error) {
	return b.updateRequest(models.ResourceTask, func(data map[string]any) error {
		return taskData(b.item, data)
	})
}
