package discord

import (
	stderrors "errors"
	"fmt"
	"guild-warden/errors"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func restError(status, code int) error {
	return &discordgo.RESTError{
		Response: &http.Response{StatusCode: status},
		Message:  &discordgo.APIErrorMessage{Code: code, Message: "boom"},
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
	}{
		{name: "unknown channel", err: restError(http.StatusNotFound, discordgo.ErrCodeUnknownChannel), notFound: true},
		{name: "unknown message", err: restError(http.StatusNotFound, discordgo.ErrCodeUnknownMessage), notFound: true},
		{name: "plain 404", err: restError(http.StatusNotFound, 0), notFound: true},
		{name: "wrapped unknown member", err: fmt.Errorf("call: %w", restError(http.StatusNotFound, discordgo.ErrCodeUnknownMember)), notFound: true},
		{name: "missing access", err: restError(http.StatusForbidden, discordgo.ErrCodeMissingAccess)},
		{name: "transport failure", err: stderrors.New("connection reset")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got := mapError("op", tt.err)
			req.Error(got)
			req.ErrorIs(got, tt.err)
			req.Equal(tt.notFound, stderrors.Is(got, errors.ErrResourceNotFound))
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	require.NoError(t, mapError("op", nil))
}
