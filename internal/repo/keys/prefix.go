package keys

type Prefix [2]byte

var (
	versionPrefix          Prefix = [2]byte{0x00, 0x00}
	accountPrefix          Prefix = [2]byte{0x00, 0x01}
	accountCookiePrefix    Prefix = [2]byte{0x00, 0x02}
	requestThresholdPrefix Prefix = [2]byte{0x00, 0x03}
	requestsPrefix         Prefix = [2]byte{0x00, 0x04}
	collectedTweetPrefix   Prefix = [2]byte{0x00, 0x05}
)
