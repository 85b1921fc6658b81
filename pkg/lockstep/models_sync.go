package lockstep

// BatchSyncModel carries a full batch of records for the sync engine. Each
// record is matched to existing data by its erpKey identity column.
type BatchSyncModel struct {
	Companies              []CompanySyncModel           `json:"companies"              yaml:"companies"`
	Contacts               []ContactSyncModel           `json:"contacts"               yaml:"contacts"`
	CreditMemoApplications []CreditMemoAppliedSyncModel `json:"creditMemoApplications" yaml:"creditMemoApplications"`
	Invoices               []InvoiceSyncModel           `json:"invoices"               yaml:"invoices"`
	InvoiceLines           []InvoiceLineSyncModel       `json:"invoiceLines"           yaml:"invoiceLines"`
	CustomFields           []CustomFieldSyncModel       `json:"customFields"           yaml:"customFields"`
	Payments               []PaymentSyncModel           `json:"payments"               yaml:"payments"`
	PaymentApplications    []PaymentAppliedSyncModel    `json:"paymentApplications"    yaml:"paymentApplications"`
}

// BaseCurrencySyncModel sets the base currency of the group being synced.
type BaseCurrencySyncModel struct {
	BaseCurrencyCode Optional[string] `json:"baseCurrencyCode,omitzero" yaml:"baseCurrencyCode,omitempty"`
}

// CompanySyncModel is a company record for the sync engine.
type CompanySyncModel struct {
	ErpKey              string           `json:"erpKey"                       yaml:"erpKey"`
	CompanyName         string           `json:"companyName"                  yaml:"companyName"`
	CompanyType         Optional[string] `json:"companyType,omitzero"         yaml:"companyType,omitempty"`
	ParentCompanyErpKey Optional[string] `json:"parentCompanyErpKey,omitzero" yaml:"parentCompanyErpKey,omitempty"`
	IsActive            Optional[bool]   `json:"isActive,omitzero"            yaml:"isActive,omitempty"`
	DefaultCurrencyCode Optional[string] `json:"defaultCurrencyCode,omitzero" yaml:"defaultCurrencyCode,omitempty"`
	PhoneNumber         Optional[string] `json:"phoneNumber,omitzero"         yaml:"phoneNumber,omitempty"`
	Country             Optional[string] `json:"country,omitzero"             yaml:"country,omitempty"`
}

// ContactSyncModel is a contact record for the sync engine.
type ContactSyncModel struct {
	ErpKey        string           `json:"erpKey"                yaml:"erpKey"`
	CompanyErpKey string           `json:"companyErpKey"         yaml:"companyErpKey"`
	ContactName   Optional[string] `json:"contactName,omitzero"  yaml:"contactName,omitempty"`
	EmailAddress  Optional[string] `json:"emailAddress,omitzero" yaml:"emailAddress,omitempty"`
	Phone         Optional[string] `json:"phone,omitzero"        yaml:"phone,omitempty"`
	IsPrimary     Optional[bool]   `json:"isPrimary,omitzero"    yaml:"isPrimary,omitempty"`
	IsActive      Optional[bool]   `json:"isActive,omitzero"     yaml:"isActive,omitempty"`
}

// InvoiceSyncModel is an invoice record for the sync engine.
type InvoiceSyncModel struct {
	ErpKey                   string           `json:"erpKey"                            yaml:"erpKey"`
	CustomerErpKey           string           `json:"customerErpKey"                    yaml:"customerErpKey"`
	InvoiceTypeCode          Optional[string] `json:"invoiceTypeCode,omitzero"          yaml:"invoiceTypeCode,omitempty"`
	InvoiceStatusCode        Optional[string] `json:"invoiceStatusCode,omitzero"        yaml:"invoiceStatusCode,omitempty"`
	ReferenceCode            Optional[string] `json:"referenceCode,omitzero"            yaml:"referenceCode,omitempty"`
	CurrencyCode             Optional[string] `json:"currencyCode,omitzero"             yaml:"currencyCode,omitempty"`
	TotalAmount              Optional[Money]  `json:"totalAmount,omitzero"              yaml:"totalAmount,omitempty"`
	OutstandingBalanceAmount Optional[Money]  `json:"outstandingBalanceAmount,omitzero" yaml:"outstandingBalanceAmount,omitempty"`
	InvoiceDate              Optional[string] `json:"invoiceDate,omitzero"              yaml:"invoiceDate,omitempty"`
	PaymentDueDate           Optional[string] `json:"paymentDueDate,omitzero"           yaml:"paymentDueDate,omitempty"`
}

// InvoiceLineSyncModel is an invoice line record for the sync engine.
type InvoiceLineSyncModel struct {
	ErpKey        string           `json:"erpKey"               yaml:"erpKey"`
	InvoiceErpKey string           `json:"invoiceErpKey"        yaml:"invoiceErpKey"`
	LineNumber    Optional[string] `json:"lineNumber,omitzero"  yaml:"lineNumber,omitempty"`
	Description   Optional[string] `json:"description,omitzero" yaml:"description,omitempty"`
	Quantity      Optional[Money]  `json:"quantity,omitzero"    yaml:"quantity,omitempty"`
	UnitPrice     Optional[Money]  `json:"unitPrice,omitzero"   yaml:"unitPrice,omitempty"`
	TotalAmount   Optional[Money]  `json:"totalAmount,omitzero" yaml:"totalAmount,omitempty"`
}

// CustomFieldSyncModel is a custom field value for the sync engine.
type CustomFieldSyncModel struct {
	ErpKey           string           `json:"erpKey"                yaml:"erpKey"`
	TableKey         string           `json:"tableKey"              yaml:"tableKey"`
	CustomFieldLabel string           `json:"customFieldLabel"      yaml:"customFieldLabel"`
	StringValue      Optional[string] `json:"stringValue,omitzero"  yaml:"stringValue,omitempty"`
	NumericValue     Optional[Money]  `json:"numericValue,omitzero" yaml:"numericValue,omitempty"`
}

// PaymentSyncModel is a payment record for the sync engine.
type PaymentSyncModel struct {
	ErpKey          string           `json:"erpKey"                   yaml:"erpKey"`
	CustomerErpKey  string           `json:"customerErpKey"           yaml:"customerErpKey"`
	PaymentType     Optional[string] `json:"paymentType,omitzero"     yaml:"paymentType,omitempty"`
	TenderType      Optional[string] `json:"tenderType,omitzero"      yaml:"tenderType,omitempty"`
	PaymentDate     Optional[string] `json:"paymentDate,omitzero"     yaml:"paymentDate,omitempty"`
	PaymentAmount   Optional[Money]  `json:"paymentAmount,omitzero"   yaml:"paymentAmount,omitempty"`
	UnappliedAmount Optional[Money]  `json:"unappliedAmount,omitzero" yaml:"unappliedAmount,omitempty"`
	CurrencyCode    Optional[string] `json:"currencyCode,omitzero"    yaml:"currencyCode,omitempty"`
}

// PaymentAppliedSyncModel applies a payment to an invoice for the sync engine.
type PaymentAppliedSyncModel struct {
	ErpKey               string           `json:"erpKey"                        yaml:"erpKey"`
	InvoiceErpKey        string           `json:"invoiceErpKey"                 yaml:"invoiceErpKey"`
	PaymentErpKey        string           `json:"paymentErpKey"                 yaml:"paymentErpKey"`
	ApplyToInvoiceDate   Optional[string] `json:"applyToInvoiceDate,omitzero"   yaml:"applyToInvoiceDate,omitempty"`
	PaymentAppliedAmount Optional[Money]  `json:"paymentAppliedAmount,omitzero" yaml:"paymentAppliedAmount,omitempty"`
}

// CreditMemoAppliedSyncModel applies a credit memo to an invoice for the sync engine.
type CreditMemoAppliedSyncModel struct {
	ErpKey                  string           `json:"erpKey"                           yaml:"erpKey"`
	InvoiceErpKey           string           `json:"invoiceErpKey"                    yaml:"invoiceErpKey"`
	CreditMemoInvoiceErpKey string           `json:"creditMemoInvoiceErpKey"          yaml:"creditMemoInvoiceErpKey"`
	ApplyToInvoiceDate      Optional[string] `json:"applyToInvoiceDate,omitzero"      yaml:"applyToInvoiceDate,omitempty"`
	CreditMemoAppliedAmount Optional[Money]  `json:"creditMemoAppliedAmount,omitzero" yaml:"creditMemoAppliedAmount,omitempty"`
}

// SyncRequestModel starts a sync from an app enrollment.
type SyncRequestModel struct {
	AppEnrollmentID string `json:"appEnrollmentId" yaml:"appEnrollmentId"`
}

// SyncSubmitModel reports the state of a sync request.
type SyncSubmitModel struct {
	SyncRequestID        Optional[string] `json:"syncRequestId,omitzero"        yaml:"syncRequestId,omitempty"`
	GroupKey             Optional[string] `json:"groupKey,omitzero"             yaml:"groupKey,omitempty"`
	StatusCode           Optional[string] `json:"statusCode,omitzero"           yaml:"statusCode,omitempty"`
	ProcessResultMessage Optional[string] `json:"processResultMessage,omitzero" yaml:"processResultMessage,omitempty"`
	AppEnrollmentID      Optional[string] `json:"appEnrollmentId,omitzero"      yaml:"appEnrollmentId,omitempty"`
	Created              Optional[string] `json:"created,omitzero"              yaml:"created,omitempty"`
	Modified             Optional[string] `json:"modified,omitzero"             yaml:"modified,omitempty"`
}
