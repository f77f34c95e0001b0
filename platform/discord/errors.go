package discord

import (
	stderrors "errors"
	"fmt"
	"guild-warden/errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

var notFoundCodes = []int{
	discordgo.ErrCodeUnknownChannel,
	discordgo.ErrCodeUnknownMessage,
	discordgo.ErrCodeUnknownMember,
	discordgo.ErrCodeUnknownUser,
	discordgo.ErrCodeUnknownRole,
	discordgo.ErrCodeUnknownGuild,
}

// mapError translates REST failures meaning "this resource does not exist"
// into ErrResourceNotFound and wraps everything else unchanged.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		return fmt.Errorf("%s: %w: %w", op, errors.ErrResourceNotFound, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !stderrors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && lo.Contains(notFoundCodes, restErr.Message.Code) {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
