package messaging

// Kind distinguishes commands, which change state, from queries, which only
// read it.
type Kind int

const (
	KindCommand Kind = iota + 1
	KindQuery
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Request is implemented by every command and query. It is satisfied only by
// embedding Command or Query.
type Request interface {
	requestKind() Kind
}

// Command marks a request as a command. Embed it by value.
type Command struct{}

func (Command) requestKind() Kind { return KindCommand }

// Query marks a request as a query. Embed it by value.
type Query struct{}

func (Query) requestKind() Kind { return KindQuery }
