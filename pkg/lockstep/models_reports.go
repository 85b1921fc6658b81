package lockstep

// AttachmentHeaderInfoModel counts the attachments of a group or company.
type AttachmentHeaderInfoModel struct {
	GroupKey         Optional[string] `json:"groupKey,omitzero"         yaml:"groupKey,omitempty"`
	CompanyID        Optional[string] `json:"companyId,omitzero"        yaml:"companyId,omitempty"`
	TotalAttachments Optional[int]    `json:"totalAttachments,omitzero" yaml:"totalAttachments,omitempty"`
	TotalArchived    Optional[int]    `json:"totalArchived,omitzero"    yaml:"totalArchived,omitempty"`
	TotalActive      Optional[int]    `json:"totalActive,omitzero"      yaml:"totalActive,omitempty"`
}

// CustomerDetailsModel summarizes a customer with its primary contact and
// outstanding balance.
type CustomerDetailsModel struct {
	GroupKey            Optional[string]                        `json:"groupKey,omitzero"            yaml:"groupKey,omitempty"`
	CustomerID          Optional[string]                        `json:"customerId,omitzero"          yaml:"customerId,omitempty"`
	Name                Optional[string]                        `json:"name,omitzero"                yaml:"name,omitempty"`
	City                Optional[string]                        `json:"city,omitzero"                yaml:"city,omitempty"`
	State               Optional[string]                        `json:"state,omitzero"               yaml:"state,omitempty"`
	PostalCode          Optional[string]                        `json:"postalCode,omitzero"          yaml:"postalCode,omitempty"`
	Country             Optional[string]                        `json:"country,omitzero"             yaml:"country,omitempty"`
	PhoneNumber         Optional[string]                        `json:"phoneNumber,omitzero"         yaml:"phoneNumber,omitempty"`
	FaxNumber           Optional[string]                        `json:"faxNumber,omitzero"           yaml:"faxNumber,omitempty"`
	Email               Optional[string]                        `json:"email,omitzero"               yaml:"email,omitempty"`
	ContactID           Optional[string]                        `json:"contactId,omitzero"           yaml:"contactId,omitempty"`
	ContactName         Optional[string]                        `json:"contactName,omitzero"         yaml:"contactName,omitempty"`
	ContactEmail        Optional[string]                        `json:"contactEmail,omitzero"        yaml:"contactEmail,omitempty"`
	OutstandingInvoices Optional[int]                           `json:"outstandingInvoices,omitzero" yaml:"outstandingInvoices,omitempty"`
	OutstandingAmount   Optional[Money]                         `json:"outstandingAmount,omitzero"   yaml:"outstandingAmount,omitempty"`
	AmountPastDue       Optional[Money]                         `json:"amountPastDue,omitzero"       yaml:"amountPastDue,omitempty"`
	Payments            Optional[[]CustomerDetailsPaymentModel] `json:"payments,omitzero"            yaml:"payments,omitempty"`
}

// CustomerDetailsPaymentModel is one payment listed on customer details.
type CustomerDetailsPaymentModel struct {
	GroupKey        Optional[string] `json:"groupKey,omitzero"        yaml:"groupKey,omitempty"`
	PaymentID       Optional[string] `json:"paymentId,omitzero"       yaml:"paymentId,omitempty"`
	MemoText        Optional[string] `json:"memoText,omitzero"        yaml:"memoText,omitempty"`
	ReferenceCode   Optional[string] `json:"referenceCode,omitzero"   yaml:"referenceCode,omitempty"`
	PaymentType     Optional[string] `json:"paymentType,omitzero"     yaml:"paymentType,omitempty"`
	PaymentDate     Optional[string] `json:"paymentDate,omitzero"     yaml:"paymentDate,omitempty"`
	PaymentAmount   Optional[Money]  `json:"paymentAmount,omitzero"   yaml:"paymentAmount,omitempty"`
	UnappliedAmount Optional[Money]  `json:"unappliedAmount,omitzero" yaml:"unappliedAmount,omitempty"`
}

// FinancialReportModel is a generated income statement or balance sheet.
type FinancialReportModel struct {
	ReportName        Optional[string]                    `json:"reportName,omitzero"        yaml:"reportName,omitempty"`
	GroupKey          Optional[string]                    `json:"groupKey,omitzero"          yaml:"groupKey,omitempty"`
	ReportStartDate   Optional[string]                    `json:"reportStartDate,omitzero"   yaml:"reportStartDate,omitempty"`
	ReportEndDate     Optional[string]                    `json:"reportEndDate,omitzero"     yaml:"reportEndDate,omitempty"`
	ReportCreatedDate Optional[string]                    `json:"reportCreatedDate,omitzero" yaml:"reportCreatedDate,omitempty"`
	Rows              Optional[[]FinancialReportRowModel] `json:"rows,omitzero"              yaml:"rows,omitempty"`
}

// FinancialReportRowModel is one line of a report, possibly with child lines.
type FinancialReportRowModel struct {
	RowID   Optional[string]                     `json:"rowId,omitzero"   yaml:"rowId,omitempty"`
	Label   Optional[string]                     `json:"label,omitzero"   yaml:"label,omitempty"`
	RowType Optional[string]                     `json:"rowType,omitzero" yaml:"rowType,omitempty"`
	Depth   Optional[int]                        `json:"depth,omitzero"   yaml:"depth,omitempty"`
	Cells   Optional[[]FinancialReportCellModel] `json:"cells,omitzero"   yaml:"cells,omitempty"`
	Rows    Optional[[]FinancialReportRowModel]  `json:"rows,omitzero"    yaml:"rows,omitempty"`
}

// FinancialReportCellModel is one cell of a report row.
type FinancialReportCellModel struct {
	CellID   Optional[string] `json:"cellId,omitzero"   yaml:"cellId,omitempty"`
	Label    Optional[string] `json:"label,omitzero"    yaml:"label,omitempty"`
	Value    Optional[string] `json:"value,omitzero"    yaml:"value,omitempty"`
	CellType Optional[string] `json:"cellType,omitzero" yaml:"cellType,omitempty"`
}
