// internal/connector/contact.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

// contactData maps the contact create/update parameters onto Prospect fields.
// Reused by the import entry mapping with an empty prefix.
func contactData(it Item, prefix string, data map[string]any) error {
	for _, field := range []string{
		"FirstName", "LastName", "Email", "Phone", "MobilePhone",
		"Title", "LinkedinUrl", "AccountId", "OwnerId",
	} {
		putString(data, field, it.String(paramName(prefix, field), ""))
	}

	values, err := it.Object(paramName(prefix, "ExternalValues"))
	if err != nil {
		return err
	}
	putObject(data, "ExternalValues", values)

	tags, err := it.Array(paramName(prefix, "Tags"))
	if err != nil {
		return err
	}
	putArray(data, "Tags", tags)
	return nil
}

func (b *builder) contactCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceContact, true, func(data map[string]any) error {
		return contactData(b.item, "contact", data)
	})
}

func (b *builder) contactGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceContact, "objectId")
}

func (b *builder) contactGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceContact)
}

func (b *builder) contactSearch() (*cronoapi.Request, error) {
	flags := []string{"withAccount", "withOpportunities", "withTags"}
	return b.searchRequest(models.ResourceContact, "contact", flags, func(body map[string]any) error {
		it := b.item
		putString(body, "Email", it.String("contactSearchEmail", ""))
		putString(body, "Name", it.String("contactSearchName", ""))
		putString(body, "Title", it.String("contactSearchTitle", ""))
		putString(body, "AccountId", it.String("contactSearchAccountId", ""))
		putString(body, "OwnerId", it.String("contactSearchOwnerId", ""))
		putString(body, "CreatedAfter", it.String("contactSearchCreatedAfter", ""))
		putString(body, "CreatedBefore", it.String("contactSearchCreatedBefore", ""))

		props, err := it.Object("contactSearchExternalProperties")
		if err != nil {
			return err
		}
		putObject(body, "ExternalProperties", props)

		if err := putIntList(body, "ExternalPropertyEmptyIds", it, "contactSearchExternalPropertyEmptyIds"); err != nil {
			return err
		}

		tags, err := it.Array("contactSearchTags")
		if err != nil {
			return err
		}
		putArray(body, "Tags", tags)
		return nil
	})
}

func (b *builder) contactUpdate() (*cronoapi.Request, error) {
	return b.updateRequest(models.ResourceContact, func(data map[string]any) error {
		return contactData(b.item, "contact", data)
	})
}

func (b *builder) contactImport() (*cronoapi.Request, error) {
	return b.importRequest("Prospects", "prospects", func(entry Item, out map[string]any) error {
		return contactData(entry, "", out)
	})
}
