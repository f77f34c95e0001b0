package domain

// Command is an intent already parsed and permission-checked by the router.
type Command interface {
	Tenant() TenantID
}

// Actor is the member who issued a command.
type Actor struct {
	ID  string `validate:"required"`
	Tag string
}

type AddRoleCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
	RoleID   string `validate:"required"`
	RoleName string
}

type KickCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
	Reason   string `validate:"max=512"`
}

type BanCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
	Reason   string `validate:"max=512"`
}

// MuteCommand duration is expressed in minutes. Discord caps timeouts at 28 days.
type MuteCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
	Minutes  int    `validate:"min=1,max=40320"`
	Reason   string `validate:"max=512"`
}

type UnmuteCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
}

type PurgeCommand struct {
	TenantID    TenantID `validate:"required"`
	Actor       Actor
	ChannelID   string `validate:"required"`
	ChannelName string
	Amount      int `validate:"min=1,max=100"`
}

type DirectMessageCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	UserID   string `validate:"required"`
	UserTag  string
	Message  string `validate:"required,max=2000"`
}

type CreateChannelCommand struct {
	TenantID TenantID `validate:"required"`
	Actor    Actor
	Name     string `validate:"required,max=100"`
	ParentID string
}

type SetAuditChannelCommand struct {
	TenantID    TenantID `validate:"required"`
	Actor       Actor
	ChannelID   string `validate:"required"`
	ChannelName string
}

type CreateTicketCommand struct {
	TenantID  TenantID `validate:"required"`
	OwnerID   string   `validate:"required"`
	OwnerName string   `validate:"required"`
	OwnerTag  string
}

type CloseTicketCommand struct {
	TenantID    TenantID `validate:"required"`
	Actor       Actor
	ChannelID   string `validate:"required"`
	ChannelName string
}

type TicketPanelCommand struct {
	TenantID  TenantID `validate:"required"`
	Actor     Actor
	ChannelID string `validate:"required"`
	Title     string `validate:"max=256"`
}

func (c AddRoleCommand) Tenant() TenantID         { return c.TenantID }
func (c KickCommand) Tenant() TenantID            { return c.TenantID }
func (c BanCommand) Tenant() TenantID             { return c.TenantID }
func (c MuteCommand) Tenant() TenantID            { return c.TenantID }
func (c UnmuteCommand) Tenant() TenantID          { return c.TenantID }
func (c PurgeCommand) Tenant() TenantID           { return c.TenantID }
func (c DirectMessageCommand) Tenant() TenantID   { return c.TenantID }
func (c CreateChannelCommand) Tenant() TenantID   { return c.TenantID }
func (c SetAuditChannelCommand) Tenant() TenantID { return c.TenantID }
func (c CreateTicketCommand) Tenant() TenantID    { return c.TenantID }
func (c CloseTicketCommand) Tenant() TenantID     { return c.TenantID }
func (c TicketPanelCommand) Tenant() TenantID     { return c.TenantID }
