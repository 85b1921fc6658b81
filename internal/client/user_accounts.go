package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// UserAccountsClient implements lockstep.UserAccountsClient.
type UserAccountsClient struct {
	dispatcher Dispatcher
}

// NewUserAccountsClient creates a new user accounts client.
func NewUserAccountsClient(d Dispatcher) *UserAccountsClient {
	return &UserAccountsClient{dispatcher: d}
}

// RetrieveInviteData implements lockstep.UserAccountsClient.RetrieveInviteData.
func (c *UserAccountsClient) RetrieveInviteData(ctx context.Context, code string) (*lockstep.Response[lockstep.InviteDataModel], error) {
	return Invoke(ctx, c.dispatcher, userAccountEndpoints.RetrieveInviteData, Call{Query: url.Values{"code": {code}}})
}

// Invite implements lockstep.UserAccountsClient.Invite.
func (c *UserAccountsClient) Invite(ctx context.Context, invites []lockstep.InviteSubmitModel) (*lockstep.Response[[]lockstep.InviteModel], error) {
	return Invoke(ctx, c.dispatcher, userAccountEndpoints.Invite, Call{Body: invites})
}

// TransferOwner implements lockstep.UserAccountsClient.TransferOwner.
func (c *UserAccountsClient) TransferOwner(
	ctx context.Context, req lockstep.TransferOwnerSubmitModel,
) (*lockstep.Response[lockstep.TransferOwnerModel], error) {
	return Invoke(ctx, c.dispatcher, userAccountEndpoints.TransferOwner, Call{Body: req})
}

// RetrieveUserGroups implements lockstep.UserAccountsClient.RetrieveUserGroups.
func (c *UserAccountsClient) RetrieveUserGroups(ctx context.Context) (*lockstep.Response[[]lockstep.UserGroupModel], error) {
	return Invoke(ctx, c.dispatcher, userAccountEndpoints.RetrieveUserGroups, Call{})
}
