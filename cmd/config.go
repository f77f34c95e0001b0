package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	DiscordToken       string        `env:"DISCORD_TOKEN,required=true" validate:"required"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel           string        `env:"LOG_LEVEL,required=true" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
	Timezone           string        `env:"TIMEZONE,default=Local"`
	TicketCloseDelay   time.Duration `env:"TICKET_CLOSE_DELAY,default=5s" validate:"gt=0"`
	TicketStaffRoleIDs string        `env:"TICKET_STAFF_ROLE_IDS"`
	AuditQueueSize     int           `env:"AUDIT_QUEUE_SIZE,default=64" validate:"min=1"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=2s" validate:"gt=0"`
	DebugPort          int           `env:"DEBUG_PORT,default=0" validate:"min=0,max=65535"`
	RegisterCommands   bool          `env:"REGISTER_COMMANDS,default=true"`
	CommandsGuildID    string        `env:"COMMANDS_GUILD_ID"`
}

// StaffRoleIDs splits the comma separated role list, ignoring blanks.
func (c Config) StaffRoleIDs() []string {
	ids := lo.Map(strings.Split(c.TicketStaffRoleIDs, ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	})
	return lo.Compact(ids)
}
