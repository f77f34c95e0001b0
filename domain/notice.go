package domain

import "time"

type Color int

const (
	ColorGreen  Color = 0x00ff00
	ColorOrange Color = 0xff9900
	ColorRed    Color = 0xff0000
	ColorBlue   Color = 0x0099ff
	ColorAudit  Color = 0xffa500
)

type NoticeField struct {
	Name   string
	Value  string
	Inline bool
}

type ActionStyle int

const (
	ActionSuccess ActionStyle = iota
	ActionDanger
)

// NoticeAction is a button attached to a notice.
type NoticeAction struct {
	ID    string
	Label string
	Emoji string
	Style ActionStyle
}

// Notice is a presentation-neutral message; platforms decide how to render it.
type Notice struct {
	Title       string
	Description string
	Color       Color
	Fields      []NoticeField
	Actions     []NoticeAction
	Thumbnail   string
	At          time.Time
}

const (
	ActionCreateTicket = "create_ticket"
	ActionCloseTicket  = "close_ticket"
)
