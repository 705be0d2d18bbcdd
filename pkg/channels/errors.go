package channels

import "errors"

var (
	ErrNilSender  = errors.New("channels.errors.nil_sender")
	ErrNilGateway = errors.New("channels.errors.nil_gateway")
)
