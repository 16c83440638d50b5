// internal/connector/company.go
package connector

import (
	"crono-connector/internal/common/cronoapi"
	"crono-connector/internal/models"
)

// companyData maps the company create/update parameters onto Account fields.
// Shared with the import entry mapping, which uses the same names without the
// resource prefix.
func companyData(it Item, prefix string, data map[string]any) error {
	for _, field := range []string{
		"Name", "Website", "Industry", "Phone", "Country",
		"City", "Address", "ZipCode", "Description", "OwnerId",
	} {
		putString(data, field, it.String(paramName(prefix, field), ""))
	}
	putNumber(data, "NumberOfEmployees", it.Float(paramName(prefix, "NumberOfEmployees"), 0))
	putNumber(data, "AnnualRevenue", it.Float(paramName(prefix, "AnnualRevenue"), 0))

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

func (b *builder) companyCreate() (*cronoapi.Request, error) {
	return b.createRequest(models.ResourceCompany, true, func(data map[string]any) error {
		return companyData(b.item, "company", data)
	})
}

func (b *builder) companyGet() (*cronoapi.Request, error) {
	return b.getRequest(models.ResourceCompany, "objectId")
}

func (b *builder) companyGetAll() (*cronoapi.Request, error) {
	return b.getAllRequest(models.ResourceCompany)
}

func (b *builder) companySearch() (*cronoapi.Request, error) {
	flags := []string{"withProspects", "withOpportunities", "withTags"}
	return b.searchRequest(models.ResourceCompany, "company", flags, func(body map[string]any) error {
		it := b.item
		putString(body, "Name", it.String("companySearchName", ""))
		putString(body, "Website", it.String("companySearchWebsite", ""))
		putString(body, "Industry", it.String("companySearchIndustry", ""))
		putString(body, "Country", it.String("companySearchCountry", ""))
		putString(body, "OwnerId", it.String("companySearchOwnerId", ""))
		putNumber(body, "MinEmployees", it.Float("companySearchMinEmployees", 0))
		putNumber(body, "MaxEmployees", it.Float("companySearchMaxEmployees", 0))
		putString(body, "CreatedAfter", it.String("companySearchCreatedAfter", ""))
		putString(body, "CreatedBefore", it.String("companySearchCreatedBefore", ""))

		props, err := it.Object("companySearchExternalProperties")
		if err != nil {
			return err
		}
		putObject(body, "ExternalProperties", props)

		if err := putIntList(body, "ExternalPropertyEmptyIds", it, "companySearchExternalPropertyEmptyIds"); err != nil {
			return err
		}

		tags, err := it.Array("companySearchTags")
		if err != nil {
			return err
		}
		putArray(body, "Tags", tags)

		// The sole always-written boolean: an empty name filter is meaningful
		// to the API, so unset defaults to true rather than absent.
		body["CleanEmptyName"] = it.BoolOr("companySearchCleanEmptyName", true)
		return nil
	})
}

func (b *builder) companyUpdate() (*cronoapi.Request, error) {
	return b.updateRequest(models.ResourceCompany, func(data map[string]any) error {
		return companyData(b.item, "company", data)
	})
}

func (b *builder) companyImport() (*cronoapi.Request, error) {
	return b.importRequest("Accounts", "accounts", func(entry Item, out map[string]any) error {
		return companyData(entry, "", out)
	})
}
