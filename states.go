package httpcodec

type state uint8

const (
	sIdle state = iota + 1
	sStartLine
	sHeaders
	sBodyFixed
	sBodyChunked
	sTrailers
	sBodyUntilClose
	sDone
	sFailed
)

type bodyKind uint8

const (
	bodyNone bodyKind = iota
	bodyFixed
	bodyChunked
	bodyUntilClose
)
