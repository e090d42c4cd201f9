package quic

import "github.com/quicwire/qconn/internal/qerr"

// closeReason carries everything a close path needs: the wire error to
// report, whether it originated locally or was reported by the peer, and
// whether the teardown should stay silent (no CONNECTION_CLOSE sent).
type closeReason struct {
	err    *qerr.TransportError
	source qerr.CloseSource
	silent bool
}

// frameResult is returned by every frame handler instead of a bare error:
// "keep processing the packet" or "stop, the connection is closing for
// this reason". Handlers that would otherwise return (bool, error) in the
// teacher's style collapse to this single type so dispatch never has to
// guess whether an error means "drop this frame" or "tear down now".
type frameResult struct {
	close *closeReason
}

// continueProcessing is the zero value: no closure requested.
var continueProcessing = frameResult{}

func closeWith(code qerr.TransportErrorCode, msg string, source qerr.CloseSource) frameResult {
	return frameResult{close: &closeReason{
		err:    qerr.NewError(code, msg),
		source: source,
	}}
}

func (r frameResult) shouldClose() bool { return r.close != nil }
