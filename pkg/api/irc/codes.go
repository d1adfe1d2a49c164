package irc

const (
	CodeWelcome        = "001"
	CodeNotice         = "NOTICE"
	CodeJoin           = "JOIN"
	CodePart           = "PART"
	CodeQuit           = "QUIT"
	CodeKick           = "KICK"
	CodeMode           = "MODE"
	CodePrivateMessage = "PRIVMSG"
)

const (
	CodeNamesReply = "353"
	CodeEndOfNames = "366"
)
