package lockstep

// InvoiceModel is an invoice, credit memo or similar receivable document.
type InvoiceModel struct {
	GroupKey                 Optional[string] `json:"groupKey,omitzero"                 yaml:"groupKey,omitempty"`
	InvoiceID                string           `json:"invoiceId,omitempty"               yaml:"invoiceId,omitempty" validate:"required"`
	CompanyID                Optional[string] `json:"companyId,omitzero"                yaml:"companyId,omitempty"`
	CustomerID               Optional[string] `json:"customerId,omitzero"               yaml:"customerId,omitempty"`
	ErpKey                   Optional[string] `json:"erpKey,omitzero"                   yaml:"erpKey,omitempty"`
	PurchaseOrderCode        Optional[string] `json:"purchaseOrderCode,omitzero"        yaml:"purchaseOrderCode,omitempty"`
	ReferenceCode            Optional[string] `json:"referenceCode,omitzero"            yaml:"referenceCode,omitempty"`
	SalespersonCode          Optional[string] `json:"salespersonCode,omitzero"          yaml:"salespersonCode,omitempty"`
	SalespersonName          Optional[string] `json:"salespersonName,omitzero"          yaml:"salespersonName,omitempty"`
	InvoiceTypeCode          Optional[string] `json:"invoiceTypeCode,omitzero"          yaml:"invoiceTypeCode,omitempty"`
	InvoiceStatusCode        Optional[string] `json:"invoiceStatusCode,omitzero"        yaml:"invoiceStatusCode,omitempty"`
	TermsCode                Optional[string] `json:"termsCode,omitzero"                yaml:"termsCode,omitempty"`
	SpecialTerms             Optional[string] `json:"specialTerms,omitzero"             yaml:"specialTerms,omitempty"`
	CurrencyCode             Optional[string] `json:"currencyCode,omitzero"             yaml:"currencyCode,omitempty"`
	TotalAmount              Optional[Money]  `json:"totalAmount,omitzero"              yaml:"totalAmount,omitempty"`
	SalesTaxAmount           Optional[Money]  `json:"salesTaxAmount,omitzero"           yaml:"salesTaxAmount,omitempty"`
	DiscountAmount           Optional[Money]  `json:"discountAmount,omitzero"           yaml:"discountAmount,omitempty"`
	OutstandingBalanceAmount Optional[Money]  `json:"outstandingBalanceAmount,omitzero" yaml:"outstandingBalanceAmount,omitempty"`
	InvoiceDate              Optional[string] `json:"invoiceDate,omitzero"              yaml:"invoiceDate,omitempty"`
	DiscountDate             Optional[string] `json:"discountDate,omitzero"             yaml:"discountDate,omitempty"`
	PostedDate               Optional[string] `json:"postedDate,omitzero"               yaml:"postedDate,omitempty"`
	InvoiceClosedDate        Optional[string] `json:"invoiceClosedDate,omitzero"        yaml:"invoiceClosedDate,omitempty"`
	PaymentDueDate           Optional[string] `json:"paymentDueDate,omitzero"           yaml:"paymentDueDate,omitempty"`
	ImportedDate             Optional[string] `json:"importedDate,omitzero"             yaml:"importedDate,omitempty"`
	IsVoided                 Optional[bool]   `json:"isVoided,omitzero"                 yaml:"isVoided,omitempty"`
	InDispute                Optional[bool]   `json:"inDispute,omitzero"                yaml:"inDispute,omitempty"`
	CurrencyRate             Optional[Money]  `json:"currencyRate,omitzero"             yaml:"currencyRate,omitempty"`
	BaseCurrencyCode         Optional[string] `json:"baseCurrencyCode,omitzero"         yaml:"baseCurrencyCode,omitempty"`
	Created                  Optional[string] `json:"created,omitzero"                  yaml:"created,omitempty"`
	CreatedUserID            Optional[string] `json:"createdUserId,omitzero"            yaml:"createdUserId,omitempty"`
	Modified                 Optional[string] `json:"modified,omitzero"                 yaml:"modified,omitempty"`
	ModifiedUserID           Optional[string] `json:"modifiedUserId,omitzero"           yaml:"modifiedUserId,omitempty"`
	AppEnrollmentID          Optional[string] `json:"appEnrollmentId,omitzero"          yaml:"appEnrollmentId,omitempty"`

	CreditMemos       Optional[[]CreditMemoInvoiceModel] `json:"creditMemos,omitzero"       yaml:"creditMemos,omitempty"`
	CustomFieldValues Optional[[]CustomFieldValueModel]  `json:"customFieldValues,omitzero" yaml:"customFieldValues,omitempty"`
}

// CreditMemoInvoiceModel is a credit memo applied to an invoice.
type CreditMemoInvoiceModel struct {
	GroupKey                 Optional[string] `json:"groupKey,omitzero"                 yaml:"groupKey,omitempty"`
	CreditMemoAppliedID      Optional[string] `json:"creditMemoAppliedId,omitzero"      yaml:"creditMemoAppliedId,omitempty"`
	InvoiceID                Optional[string] `json:"invoiceId,omitzero"                yaml:"invoiceId,omitempty"`
	CreditMemoInvoiceID      Optional[string] `json:"creditMemoInvoiceId,omitzero"      yaml:"creditMemoInvoiceId,omitempty"`
	ApplyToInvoiceDate       Optional[string] `json:"applyToInvoiceDate,omitzero"       yaml:"applyToInvoiceDate,omitempty"`
	CreditMemoAppliedAmount  Optional[Money]  `json:"creditMemoAppliedAmount,omitzero"  yaml:"creditMemoAppliedAmount,omitempty"`
	ReferenceCode            Optional[string] `json:"referenceCode,omitzero"            yaml:"referenceCode,omitempty"`
	CompanyID                Optional[string] `json:"companyId,omitzero"                yaml:"companyId,omitempty"`
	CustomerID               Optional[string] `json:"customerId,omitzero"               yaml:"customerId,omitempty"`
	InvoiceStatusCode        Optional[string] `json:"invoiceStatusCode,omitzero"        yaml:"invoiceStatusCode,omitempty"`
	TotalAmount              Optional[Money]  `json:"totalAmount,omitzero"              yaml:"totalAmount,omitempty"`
	OutstandingBalanceAmount Optional[Money]  `json:"outstandingBalanceAmount,omitzero" yaml:"outstandingBalanceAmount,omitempty"`
}

// InvoiceSummaryModel is one row of the invoice summary view.
type InvoiceSummaryModel struct {
	GroupKey           Optional[string]   `json:"groupKey,omitzero"           yaml:"groupKey,omitempty"`
	CustomerID         Optional[string]   `json:"customerId,omitzero"         yaml:"customerId,omitempty"`
	InvoiceID          Optional[string]   `json:"invoiceId,omitzero"          yaml:"invoiceId,omitempty"`
	InvoiceNumber      Optional[string]   `json:"invoiceNumber,omitzero"      yaml:"invoiceNumber,omitempty"`
	InvoiceDate        Optional[string]   `json:"invoiceDate,omitzero"        yaml:"invoiceDate,omitempty"`
	CustomerName       Optional[string]   `json:"customerName,omitzero"       yaml:"customerName,omitempty"`
	Status             Optional[string]   `json:"status,omitzero"             yaml:"status,omitempty"`
	PaymentDueDate     Optional[string]   `json:"paymentDueDate,omitzero"     yaml:"paymentDueDate,omitempty"`
	InvoiceAmount      Optional[Money]    `json:"invoiceAmount,omitzero"      yaml:"invoiceAmount,omitempty"`
	OutstandingBalance Optional[Money]    `json:"outstandingBalance,omitzero" yaml:"outstandingBalance,omitempty"`
	InvoiceTypeCode    Optional[string]   `json:"invoiceTypeCode,omitzero"    yaml:"invoiceTypeCode,omitempty"`
	NewestActivity     Optional[string]   `json:"newestActivity,omitzero"     yaml:"newestActivity,omitempty"`
	DaysPastDue        Optional[int]      `json:"daysPastDue,omitzero"        yaml:"daysPastDue,omitempty"`
	PaymentNumbers     Optional[[]string] `json:"paymentNumbers,omitzero"     yaml:"paymentNumbers,omitempty"`
	PaymentIDs         Optional[[]string] `json:"paymentIds,omitzero"         yaml:"paymentIds,omitempty"`
}

// InvoiceSummaryTotalsModel totals the whole invoice summary result set.
type InvoiceSummaryTotalsModel struct {
	TotalInvoicesOpen    Optional[int]   `json:"totalInvoicesOpen,omitzero"    yaml:"totalInvoicesOpen,omitempty"`
	TotalInvoicesPastDue Optional[int]   `json:"totalInvoicesPastDue,omitzero" yaml:"totalInvoicesPastDue,omitempty"`
	TotalInvoiceAmount   Optional[Money] `json:"totalInvoiceAmount,omitzero"   yaml:"totalInvoiceAmount,omitempty"`
	TotalInvoiceBalance  Optional[Money] `json:"totalInvoiceBalance,omitzero"  yaml:"totalInvoiceBalance,omitempty"`
	TotalPastDueBalance  Optional[Money] `json:"totalPastDueBalance,omitzero"  yaml:"totalPastDueBalance,omitempty"`
}

// AtRiskInvoiceSummaryModel is one row of the at-risk invoice view.
type AtRiskInvoiceSummaryModel struct {
	ReportDate         Optional[string] `json:"reportDate,omitzero"         yaml:"reportDate,omitempty"`
	GroupKey           Optional[string] `json:"groupKey,omitzero"           yaml:"groupKey,omitempty"`
	CustomerID         Optional[string] `json:"customerId,omitzero"         yaml:"customerId,omitempty"`
	InvoiceID          Optional[string] `json:"invoiceId,omitzero"          yaml:"invoiceId,omitempty"`
	InvoiceNumber      Optional[string] `json:"invoiceNumber,omitzero"      yaml:"invoiceNumber,omitempty"`
	InvoiceDate        Optional[string] `json:"invoiceDate,omitzero"        yaml:"invoiceDate,omitempty"`
	CustomerName       Optional[string] `json:"customerName,omitzero"       yaml:"customerName,omitempty"`
	Status             Optional[string] `json:"status,omitzero"             yaml:"status,omitempty"`
	PaymentDueDate     Optional[string] `json:"paymentDueDate,omitzero"     yaml:"paymentDueDate,omitempty"`
	InvoiceAmount      Optional[Money]  `json:"invoiceAmount,omitzero"      yaml:"invoiceAmount,omitempty"`
	OutstandingBalance Optional[Money]  `json:"outstandingBalance,omitzero" yaml:"outstandingBalance,omitempty"`
	InvoiceTypeCode    Optional[string] `json:"invoiceTypeCode,omitzero"    yaml:"invoiceTypeCode,omitempty"`
	NewestActivity     Optional[string] `json:"newestActivity,omitzero"     yaml:"newestActivity,omitempty"`
	DaysPastDue        Optional[int]    `json:"daysPastDue,omitzero"        yaml:"daysPastDue,omitempty"`
}
