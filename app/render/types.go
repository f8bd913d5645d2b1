package render

// Action is one inline control attached to a delivered message.
type Action struct {
	Label string
	URL   string
}
