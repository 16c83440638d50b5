// internal/models/resource.go
package models

// Resource identifies a Crono API entity category. Each resource maps to one
// REST collection on the public API.
type Resource string

const (
	ResourceCompany          Resource = "company"
	ResourceContact          Resource = "contact"
	ResourceDeal             Resource = "deal"
	ResourceNote             Resource = "note"
	ResourceTask             Resource = "task"
	ResourceActivity         Resource = "activity"
	ResourceList             Resource = "list"
	ResourcePipeline         Resource = "pipeline"
	ResourceStrategy         Resource = "strategy"
	ResourceExternalProperty Resource = "externalProperty"
	ResourceUser             Resource = "user"
	ResourceImport           Resource = "import"
)

// Operation is an action performed against a resource. The valid subset
// depends on the resource.
type Operation string

const (
	OperationCreate        Operation = "create"
	OperationGet           Operation = "get"
	OperationGetAll        Operation = "getAll"
	OperationSearch        Operation = "search"
	OperationSearchDetails Operation = "searchDetails"
	OperationUpdate        Operation = "update"
	OperationImport        Operation = "import"
)

var collections = map[Resource]string{
	ResourceCompany:          "Accounts",
	ResourceContact:          "Prospects",
	ResourceDeal:             "Opportunities",
	ResourceNote:             "Notes",
	ResourceTask:             "Tasks",
	ResourceActivity:         "Activities",
	ResourceList:             "Lists",
	ResourcePipeline:         "Pipelines",
	ResourceStrategy:         "Strategies",
	ResourceExternalProperty: "ExternalProperties",
	ResourceUser:             "Users",
	ResourceImport:           "Import",
}

// Collection returns the REST collection name for the resource, or "" when
// the resource is unknown.
func (r Resource) Collection() string {
	return collections[r]
}

// Valid reports whether the resource is part of the supported enumeration.
func (r Resource) Valid() bool {
	_, ok := collections[r]
	return ok
}

// AllResources returns the supported resources in a stable order.
func AllResources() []Resource {
	return []Resource{
		ResourceCompany,
		ResourceContact,
		ResourceDeal,
		ResourceNote,
		ResourceTask,
		ResourceActivity,
		ResourceList,
		ResourcePipeline,
		ResourceStrategy,
		ResourceExternalProperty,
		ResourceUser,
		ResourceImport,
	}
}

// AllOperations returns every operation the connector knows about.
func AllOperations() []Operation {
	return []Operation{
		OperationCreate,
		OperationGet,
		OperationGetAll,
		OperationSearch,
		OperationSearchDetails,
		OperationUpdate,
		OperationImport,
	}
}
