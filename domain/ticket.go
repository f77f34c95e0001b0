package domain

import (
	"strings"
	"unicode"
)

// TicketPrefix is the only thing that tells a ticket channel apart from
// any other channel.
const TicketPrefix = "ticket-"

const maxChannelName = 100

type TicketStatus string

const (
	TicketOpen   TicketStatus = "OPEN"
	TicketClosed TicketStatus = "CLOSED"
)

// Ticket is never persisted: its state is read back from the name of the
// channel backing it.
type Ticket struct {
	TenantID  TenantID
	OwnerID   string
	OwnerName string
	ChannelID string
	Status    TicketStatus
}

// Name is the uniqueness key of the ticket inside its tenant.
func (t Ticket) Name() string {
	return TicketName(t.OwnerName)
}

// TicketName derives the channel name of a requester's ticket, rewritten the
// way Discord rewrites text channel names so that the name looked up later is
// the name the channel actually got.
func TicketName(owner string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			return unicode.ToLower(r)
		case unicode.IsSpace(r), r == '-':
			return '-'
		}
		return -1
	}, owner)
	words := strings.FieldsFunc(cleaned, func(r rune) bool { return r == '-' })
	suffix := []rune(strings.Join(words, "-"))
	if room := maxChannelName - len(TicketPrefix); len(suffix) > room {
		suffix = suffix[:room]
	}
	return TicketPrefix + strings.TrimRight(string(suffix), "-")
}

// IsTicketChannel reports whether a channel name follows the ticket naming convention.
func IsTicketChannel(channelName string) bool {
	return strings.HasPrefix(channelName, TicketPrefix)
}
