package tabular

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	storedSchemaOnce sync.Once
	storedSchema     *openapi3.Schema
)

// StoredSchema describes the persisted Table shape as an OpenAPI schema so
// hosts can publish or validate it alongside their own content models.
func StoredSchema() *openapi3.Schema {
	storedSchemaOnce.Do(func() {
		cells := openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
		storedSchema = openapi3.NewObjectSchema().
			WithProperty(TitlesKey, openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
			WithProperty(DataKey, openapi3.NewArraySchema().WithItems(cells))
		storedSchema.Title = "TabularTable"
		storedSchema.Description = "Column titles and row-major cell values of a tabular field."
	})
	return storedSchema
}

// ValidateStored checks a decoded JSON value against StoredSchema.
func ValidateStored(value any) error {
	if err := StoredSchema().VisitJSON(value); err != nil {
		return fmt.Errorf("tabular: stored value: %w", err)
	}
	return nil
}
