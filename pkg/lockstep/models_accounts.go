package lockstep

// UserAccountModel is a user of a Platform account.
type UserAccountModel struct {
	UserID          string           `json:"userId,omitempty"             yaml:"userId,omitempty" validate:"required"`
	GroupKey        Optional[string] `json:"groupKey,omitzero"            yaml:"groupKey,omitempty"`
	UserName        Optional[string] `json:"userName,omitzero"            yaml:"userName,omitempty"`
	Email           Optional[string] `json:"email,omitzero"               yaml:"email,omitempty"`
	Status          Optional[string] `json:"status,omitzero"              yaml:"status,omitempty"`
	UserRole        Optional[string] `json:"userRole,omitzero"            yaml:"userRole,omitempty"`
	Title           Optional[string] `json:"title,omitzero"               yaml:"title,omitempty"`
	PhoneNumber     Optional[string] `json:"phoneNumber,omitzero"         yaml:"phoneNumber,omitempty"`
	DefaultCurrency Optional[string] `json:"defaultCurrencyCode,omitzero" yaml:"defaultCurrencyCode,omitempty"`
	Created         Optional[string] `json:"created,omitzero"             yaml:"created,omitempty"`
	Modified        Optional[string] `json:"modified,omitzero"            yaml:"modified,omitempty"`
}

// UserGroupModel is one group a user belongs to.
type UserGroupModel struct {
	GroupKey  Optional[string] `json:"groupKey,omitzero"  yaml:"groupKey,omitempty"`
	UserRole  Optional[string] `json:"userRole,omitzero"  yaml:"userRole,omitempty"`
	GroupName Optional[string] `json:"groupName,omitzero" yaml:"groupName,omitempty"`
	Status    Optional[string] `json:"status,omitzero"    yaml:"status,omitempty"`
}

// InviteDataModel describes a pending invitation.
type InviteDataModel struct {
	Email      Optional[string] `json:"email,omitzero"      yaml:"email,omitempty"`
	UserStatus Optional[string] `json:"userStatus,omitzero" yaml:"userStatus,omitempty"`
}

// InviteSubmitModel requests an invitation for one email address.
type InviteSubmitModel struct {
	Email string `json:"email" yaml:"email"`
}

// InviteModel is the outcome of one invitation.
type InviteModel struct {
	Email        Optional[string]           `json:"email,omitzero"        yaml:"email,omitempty"`
	Success      Optional[bool]             `json:"success,omitzero"      yaml:"success,omitempty"`
	InvitedUser  Optional[UserAccountModel] `json:"invitedUser,omitzero"  yaml:"invitedUser,omitempty"`
	ErrorMessage Optional[string]           `json:"errorMessage,omitzero" yaml:"errorMessage,omitempty"`
}

// TransferOwnerSubmitModel names the user who becomes account owner.
type TransferOwnerSubmitModel struct {
	TargetUserID string `json:"targetUserId" yaml:"targetUserId"`
}

// TransferOwnerModel reports an ownership transfer.
type TransferOwnerModel struct {
	PreviousOwner Optional[UserAccountModel] `json:"previousOwner,omitzero" yaml:"previousOwner,omitempty"`
	NewOwner      Optional[UserAccountModel] `json:"newOwner,omitzero"      yaml:"newOwner,omitempty"`
}
