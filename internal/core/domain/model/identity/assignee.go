package identity

import "dispatch/internal/core/domain/model/kernel"

// AssigneeKind discriminates the Assignee tagged value.
type AssigneeKind int

const (
	// AssigneeNone means nobody is responsible for the picking.
	AssigneeNone AssigneeKind = iota
	// AssigneeBot means the backend's system bot holds the picking. The bot
	// stands in for "not yet claimed" and any driver may take over from it.
	AssigneeBot
	// AssigneeUser means a real user holds the picking.
	AssigneeUser
)

func (k AssigneeKind) String() string {
	switch k {
	case AssigneeNone:
		return "none"
	case AssigneeBot:
		return "bot"
	case AssigneeUser:
		return "user"
	default:
		return "unknown"
	}
}

// Assignee is the identity currently responsible for a picking:
// None | Bot | User(id).
type Assignee struct {
	kind   AssigneeKind
	userID kernel.ObjectID
}

// NoAssignee returns the empty assignee.
func NoAssignee() Assignee {
	return Assignee{kind: AssigneeNone}
}

// BotAssignee returns the bot sentinel. botID is the backend id of the bot
// user, kept so the value can be written back unchanged.
func BotAssignee(botID kernel.ObjectID) Assignee {
	return Assignee{kind: AssigneeBot, userID: botID}
}

// UserAssignee returns an assignee designating a real user.
func UserAssignee(id kernel.ObjectID) Assignee {
	return Assignee{kind: AssigneeUser, userID: id}
}

// AssigneeFromUserID maps a stored user reference to an Assignee. A nil
// reference is None, a reference equal to botID is Bot.
func AssigneeFromUserID(userID *kernel.ObjectID, botID kernel.ObjectID) Assignee {
	switch {
	case userID == nil || *userID <= 0:
		return NoAssignee()
	case *userID == botID:
		return BotAssignee(botID)
	default:
		return UserAssignee(*userID)
	}
}

// Kind returns the discriminator.
func (a Assignee) Kind() AssigneeKind { return a.kind }

// UserID returns the stored user reference; ok is false for None.
func (a Assignee) UserID() (id kernel.ObjectID, ok bool) {
	if a.kind == AssigneeNone {
		return 0, false
	}
	return a.userID, true
}

// IsVacant reports whether the picking can be claimed: None or Bot.
func (a Assignee) IsVacant() bool {
	return a.kind == AssigneeNone || a.kind == AssigneeBot
}

// IsNone reports whether nobody, not even the bot, holds the picking.
func (a Assignee) IsNone() bool {
	return a.kind == AssigneeNone
}

// Is reports whether the assignee is the real user with the given id.
func (a Assignee) Is(id kernel.ObjectID) bool {
	return a.kind == AssigneeUser && a.userID == id
}
