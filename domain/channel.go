package domain

type ChannelKind int

const (
	ChannelText ChannelKind = iota
	ChannelCategory
	ChannelVoice
	ChannelOther
)

type Channel struct {
	ID       string
	TenantID TenantID
	Name     string
	Kind     ChannelKind
	ParentID string
}

// Permission is a platform-neutral access right used in channel overwrites.
type Permission int

const (
	PermissionViewChannel Permission = 1 << iota
	PermissionSendMessages
	PermissionReadHistory
)

type OverwriteTarget int

const (
	OverwriteRole OverwriteTarget = iota
	OverwriteMember
)

// Overwrite grants or denies permissions to a role or a member on one channel.
type Overwrite struct {
	TargetID string
	Target   OverwriteTarget
	Allow    Permission
	Deny     Permission
}

// ChannelSpec describes a channel to create.
type ChannelSpec struct {
	TenantID   TenantID
	Name       string
	Kind       ChannelKind
	ParentID   string
	Overwrites []Overwrite
}

// ServerOverview holds the platform-side counts shown next to the daily stats.
type ServerOverview struct {
	Name          string
	IconURL       string
	TotalMembers  int
	Bots          int
	Categories    int
	TotalChannels int
	TotalRoles    int
}
