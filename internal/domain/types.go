package domain

type (
	BoardCode = string
	ThreadId  = int64
	PostId    = int64
)

// AnonymousName is substituted when a poster leaves the name field empty.
const AnonymousName = "Anonymous"
