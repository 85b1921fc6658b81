package lockstep

// CodeDefinitionModel describes a code used by other records, such as an
// invoice status or terms code.
type CodeDefinitionModel struct {
	CodeDefinitionID string           `json:"codeDefinitionId,omitempty" yaml:"codeDefinitionId,omitempty" validate:"required"`
	GroupKey         Optional[string] `json:"groupKey,omitzero"          yaml:"groupKey,omitempty"`
	CodeType         Optional[string] `json:"codeType,omitzero"          yaml:"codeType,omitempty"`
	Code             Optional[string] `json:"code,omitzero"              yaml:"code,omitempty"`
	CodeDescription  Optional[string] `json:"codeDescription,omitzero"   yaml:"codeDescription,omitempty"`
	Created          Optional[string] `json:"created,omitzero"           yaml:"created,omitempty"`
	CreatedUserID    Optional[string] `json:"createdUserId,omitzero"     yaml:"createdUserId,omitempty"`
	Modified         Optional[string] `json:"modified,omitzero"          yaml:"modified,omitempty"`
	ModifiedUserID   Optional[string] `json:"modifiedUserId,omitzero"    yaml:"modifiedUserId,omitempty"`
}

// CurrencyRateModel is the rate between two currencies on a date.
type CurrencyRateModel struct {
	SourceCurrency      string           `json:"sourceCurrency"        yaml:"sourceCurrency"      validate:"required"`
	DestinationCurrency string           `json:"destinationCurrency"   yaml:"destinationCurrency" validate:"required"`
	Date                Optional[string] `json:"date,omitzero"         yaml:"date,omitempty"`
	CurrencyRate        Optional[Money]  `json:"currencyRate,omitzero" yaml:"currencyRate,omitempty"`
}

// BulkCurrencyConversionModel requests one rate in a bulk conversion.
type BulkCurrencyConversionModel struct {
	Date           string `json:"date"           yaml:"date"`
	SourceCurrency string `json:"sourceCurrency" yaml:"sourceCurrency"`
}

// CustomFieldDefinitionModel declares a custom field that can be attached to
// records of one table.
type CustomFieldDefinitionModel struct {
	GroupKey                Optional[string] `json:"groupKey,omitzero"                 yaml:"groupKey,omitempty"`
	CustomFieldDefinitionID string           `json:"customFieldDefinitionId,omitempty" yaml:"customFieldDefinitionId,omitempty" validate:"required"`
	TableKey                Optional[string] `json:"tableKey,omitzero"                 yaml:"tableKey,omitempty"`
	AppID                   Optional[string] `json:"appId,omitzero"                    yaml:"appId,omitempty"`
	CustomFieldLabel        Optional[string] `json:"customFieldLabel,omitzero"         yaml:"customFieldLabel,omitempty"`
	DataType                Optional[string] `json:"dataType,omitzero"                 yaml:"dataType,omitempty"`
	SortOrder               Optional[int]    `json:"sortOrder,omitzero"                yaml:"sortOrder,omitempty"`
	Created                 Optional[string] `json:"created,omitzero"                  yaml:"created,omitempty"`
	CreatedUserID           Optional[string] `json:"createdUserId,omitzero"            yaml:"createdUserId,omitempty"`
	Modified                Optional[string] `json:"modified,omitzero"                 yaml:"modified,omitempty"`
	ModifiedUserID          Optional[string] `json:"modifiedUserId,omitzero"           yaml:"modifiedUserId,omitempty"`
	AppEnrollmentID         Optional[string] `json:"appEnrollmentId,omitzero"          yaml:"appEnrollmentId,omitempty"`
}

// CustomFieldValueModel is the value of one custom field on one record.
type CustomFieldValueModel struct {
	GroupKey                Optional[string]                     `json:"groupKey,omitzero"                 yaml:"groupKey,omitempty"`
	CustomFieldDefinitionID string                               `json:"customFieldDefinitionId,omitempty" yaml:"customFieldDefinitionId,omitempty" validate:"required"`
	RecordKey               string                               `json:"recordKey,omitempty"               yaml:"recordKey,omitempty"               validate:"required"`
	StringValue             Optional[string]                     `json:"stringValue,omitzero"              yaml:"stringValue,omitempty"`
	NumericValue            Optional[Money]                      `json:"numericValue,omitzero"             yaml:"numericValue,omitempty"`
	Created                 Optional[string]                     `json:"created,omitzero"                  yaml:"created,omitempty"`
	CreatedUserID           Optional[string]                     `json:"createdUserId,omitzero"            yaml:"createdUserId,omitempty"`
	Modified                Optional[string]                     `json:"modified,omitzero"                 yaml:"modified,omitempty"`
	ModifiedUserID          Optional[string]                     `json:"modifiedUserId,omitzero"           yaml:"modifiedUserId,omitempty"`
	AppEnrollmentID         Optional[string]                     `json:"appEnrollmentId,omitzero"          yaml:"appEnrollmentId,omitempty"`
	Value                   Optional[string]                     `json:"value,omitzero"                    yaml:"value,omitempty"`
	CustomFieldDefinition   Optional[CustomFieldDefinitionModel] `json:"customFieldDefinition,omitzero"    yaml:"customFieldDefinition,omitempty"`
}
