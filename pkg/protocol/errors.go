package protocol

import "errors"

// ErrProtocolFraming reports a malformed line from the match driver
// socket. It is connection-fatal: the client gives up on the frame and
// the caller is expected to close the connection.
var ErrProtocolFraming = errors.New("protocol: malformed frame")
