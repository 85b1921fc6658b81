package client

import (
	"context"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// CustomFieldDefinitionsClient implements lockstep.CustomFieldDefinitionsClient.
type CustomFieldDefinitionsClient struct {
	dispatcher Dispatcher
}

// NewCustomFieldDefinitionsClient creates a new custom field definitions client.
func NewCustomFieldDefinitionsClient(d Dispatcher) *CustomFieldDefinitionsClient {
	return &CustomFieldDefinitionsClient{dispatcher: d}
}

// Retrieve implements lockstep.CustomFieldDefinitionsClient.Retrieve.
func (c *CustomFieldDefinitionsClient) Retrieve(
	ctx context.Context, id string, opts *lockstep.RetrieveOptions,
) (*lockstep.Response[lockstep.CustomFieldDefinitionModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldDefinitionEndpoints.Retrieve, Call{Path: byID(id), Query: opts.ToValues()})
}

// Update implements lockstep.CustomFieldDefinitionsClient.Update.
func (c *CustomFieldDefinitionsClient) Update(
	ctx context.Context, id string, patch lockstep.Patch,
) (*lockstep.Response[lockstep.CustomFieldDefinitionModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldDefinitionEndpoints.Update, Call{Path: byID(id), Body: patch})
}

// Delete implements lockstep.CustomFieldDefinitionsClient.Delete.
func (c *CustomFieldDefinitionsClient) Delete(ctx context.Context, id string) (*lockstep.Response[lockstep.DeleteResult], error) {
	return Invoke(ctx, c.dispatcher, customFieldDefinitionEndpoints.Delete, Call{Path: byID(id)})
}

// Create implements lockstep.CustomFieldDefinitionsClient.Create.
func (c *CustomFieldDefinitionsClient) Create(
	ctx context.Context, definitions []lockstep.CustomFieldDefinitionModel,
) (*lockstep.Response[[]lockstep.CustomFieldDefinitionModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldDefinitionEndpoints.Create, Call{Body: definitions})
}

// Query implements lockstep.CustomFieldDefinitionsClient.Query.
func (c *CustomFieldDefinitionsClient) Query(
	ctx context.Context, opts *lockstep.QueryOptions,
) (*lockstep.Response[lockstep.FetchResult[lockstep.CustomFieldDefinitionModel]], error) {
	return Invoke(ctx, c.dispatcher, customFieldDefinitionEndpoints.Query, Call{Query: opts.ToValues()})
}

// CustomFieldValuesClient implements lockstep.CustomFieldValuesClient.
// Values are addressed by their definition and the key of the record they
// are attached to.
type CustomFieldValuesClient struct {
	dispatcher Dispatcher
}

// NewCustomFieldValuesClient creates a new custom field values client.
func NewCustomFieldValuesClient(d Dispatcher) *CustomFieldValuesClient {
	return &CustomFieldValuesClient{dispatcher: d}
}

// Retrieve implements lockstep.CustomFieldValuesClient.Retrieve.
func (c *CustomFieldValuesClient) Retrieve(
	ctx context.Context, definitionID, recordKey string, opts *lockstep.RetrieveOptions,
) (*lockstep.Response[lockstep.CustomFieldValueModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldValueEndpoints.Retrieve, Call{
		Path:  byRecord(definitionID, recordKey),
		Query: opts.ToValues(),
	})
}

// Update implements lockstep.CustomFieldValuesClient.Update.
func (c *CustomFieldValuesClient) Update(
	ctx context.Context, definitionID, recordKey string, patch lockstep.Patch,
) (*lockstep.Response[lockstep.CustomFieldValueModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldValueEndpoints.Update, Call{
		Path: byRecord(definitionID, recordKey),
		Body: patch,
	})
}

// Delete implements lockstep.CustomFieldValuesClient.Delete.
func (c *CustomFieldValuesClient) Delete(
	ctx context.Context, definitionID, recordKey string,
) (*lockstep.Response[lockstep.DeleteResult], error) {
	return Invoke(ctx, c.dispatcher, customFieldValueEndpoints.Delete, Call{Path: byRecord(definitionID, recordKey)})
}

// Create implements lockstep.CustomFieldValuesClient.Create.
func (c *CustomFieldValuesClient) Create(
	ctx context.Context, values []lockstep.CustomFieldValueModel,
) (*lockstep.Response[[]lockstep.CustomFieldValueModel], error) {
	return Invoke(ctx, c.dispatcher, customFieldValueEndpoints.Create, Call{Body: values})
}

// Query implements lockstep.CustomFieldValuesClient.Query.
func (c *CustomFieldValuesClient) Query(
	ctx context.Context, opts *lockstep.QueryOptions,
) (*lockstep.Response[lockstep.FetchResult[lockstep.CustomFieldValueModel]], error) {
	return Invoke(ctx, c.dispatcher, customFieldValueEndpoints.Query, Call{Query: opts.ToValues()})
}

func byRecord(definitionID, recordKey string) map[string]string {
	return map[string]string{"definitionId": definitionID, "recordKey": recordKey}
}
