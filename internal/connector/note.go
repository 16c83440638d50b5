// internal/connector/note.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

func (b *builder) noteCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceNote, false, func(data map[string]any) error {
		it := b.item
		putString(data, "Content", it.String("noteContent", ""))
		putString(data, "AccountId", it.String("noteAccountId", ""))
		putString(data, "ProspectId", it.String("noteProspectId", ""))
		return nil
	})
}

func (b *builder) noteGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceNote, "objectId")
}

func (b *builder) noteGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceNote)
}

func (b *builder) noteSearch() (*cronoapi.Request, error) {
	return b.searchRequest(models.ResourceNote, "note", nil, func(body map[string]any) error {
		it := b.item
		putString(body, "AccountId", it.String("noteSearchAccountId", ""))
		putString(body, "ProspectId", it.String("noteSearchProspectId", ""))
		putString(body, "CreatedAfter", it.String("noteSearchCreatedAfter", ""))
		putString(body, "CreatedBefore", it.String("noteSearchCreatedBefore", ""))
		return nil
	})
}
