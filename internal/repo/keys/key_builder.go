package keys

import (
	"encoding/binary"
	"time"
)

type Builder interface {
	Version() []byte
	Accounts() []byte
	Account(login string) []byte
	Cookie(login string) []byte
	RequestThreshold(id string, window time.Duration) []byte
	Requests(id string, window time.Duration) []byte
	CollectedTweet(id string) []byte
}

type builder struct {
}

func (b builder) Version() []byte {
	return versionPrefix[:]
}

func (b builder) Accounts() []byte {
	return accountPrefix[:]
}

func (b builder) Account(login string) []byte {
	return append(accountPrefix[:], []byte(login)...)
}

func (b builder) Cookie(login string) []byte {
	return append(accountCookiePrefix[:], []byte(login)...)
}

func (b builder) RequestThreshold(id string, window time.Duration) []byte {
	slice := append(requestThresholdPrefix[:], []byte(id)...)
	return binary.LittleEndian.AppendUint32(slice, uint32(window.Seconds()))
}

func (b builder) Requests(id string, window time.Duration) []byte {
	slice := append(requestsPrefix[:], []byte(id)...)
	return binary.LittleEndian.AppendUint32(slice, uint32(window.Seconds()))
}

func (b builder) CollectedTweet(id string) []byte {
	return append(collectedTweetPrefix[:], []byte(id)...)
}

func NewBuilder() Builder {
	return &builder{}
}
