package main

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)

	// Given only the required variables
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("LOG_LEVEL", "INFO")
	t.Setenv("TICKET_STAFF_ROLE_IDS", " r-1, ,r-2,")

	// When the environment is decoded
	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	// Then the defaults apply and the config is valid
	req.NoError(validator.New().Struct(config))
	req.Equal("Local", config.Timezone)
	req.Equal(5*time.Second, config.TicketCloseDelay)
	req.Equal(64, config.AuditQueueSize)
	req.Equal(2*time.Second, config.RestartInterval)
	req.Zero(config.DebugPort)
	req.True(config.RegisterCommands)
	req.Equal([]string{"r-1", "r-2"}, config.StaffRoleIDs())
}

func TestConfig_InvalidLogLevel(t *testing.T) {
	req := require.New(t)
	config := Config{
		DiscordToken:     "token",
		BadgerFilepath:   "/tmp/db",
		LogLevel:         "LOUD",
		TicketCloseDelay: time.Second,
		AuditQueueSize:   1,
		RestartInterval:  time.Second,
	}
	req.Error(validator.New().Struct(config))
}
