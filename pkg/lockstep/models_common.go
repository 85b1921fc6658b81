package lockstep

// Patch lists the fields to change on a record, keyed by JSON field name.
type Patch map[string]any

// DeleteResult reports the outcome of a delete.
type DeleteResult struct {
	Errors Optional[[]ErrorResult] `json:"errors,omitzero" yaml:"errors,omitempty"`
}

// BulkDeleteRequestModel lists the record ids to delete in one call.
type BulkDeleteRequestModel struct {
	IDList []string `json:"idList" yaml:"idList"`
}

// StatusModel describes the caller and the server answering a status check.
type StatusModel struct {
	UserName         Optional[string]           `json:"userName,omitzero"         yaml:"userName,omitempty"`
	AccountName      Optional[string]           `json:"accountName,omitzero"      yaml:"accountName,omitempty"`
	AccountCompanyID Optional[string]           `json:"accountCompanyId,omitzero" yaml:"accountCompanyId,omitempty"`
	UserRole         Optional[string]           `json:"userRole,omitzero"         yaml:"userRole,omitempty"`
	LoggedIn         Optional[bool]             `json:"loggedIn,omitzero"         yaml:"loggedIn,omitempty"`
	ErrorMessage     Optional[string]           `json:"errorMessage,omitzero"     yaml:"errorMessage,omitempty"`
	Roles            Optional[[]string]         `json:"roles,omitzero"            yaml:"roles,omitempty"`
	LastLoggedIn     Optional[string]           `json:"lastLoggedIn,omitzero"     yaml:"lastLoggedIn,omitempty"`
	APIKeyID         Optional[string]           `json:"apiKeyId,omitzero"         yaml:"apiKeyId,omitempty"`
	UserID           Optional[string]           `json:"userId,omitzero"           yaml:"userId,omitempty"`
	GroupKey         Optional[string]           `json:"groupKey,omitzero"         yaml:"groupKey,omitempty"`
	BaseCurrencyCode Optional[string]           `json:"baseCurrencyCode,omitzero" yaml:"baseCurrencyCode,omitempty"`
	Environment      Optional[string]           `json:"environment,omitzero"      yaml:"environment,omitempty"`
	Version          Optional[string]           `json:"version,omitzero"          yaml:"version,omitempty"`
	Dependencies     Optional[map[string]any]   `json:"dependencies,omitzero"     yaml:"dependencies,omitempty"`
	UserGroups       Optional[[]UserGroupModel] `json:"userGroups,omitzero"       yaml:"userGroups,omitempty"`
}
