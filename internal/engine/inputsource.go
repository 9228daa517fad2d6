package engine

// InputSource identifies one channel on an external control surface.
// The zero value means "no binding".
type InputSource struct {
	Universe uint32 `json:"universe"`
	Channel  uint32 `json:"channel"`
	Valid    bool   `json:"valid"`
}

// NewInputSource builds a valid binding for the given universe and channel
func NewInputSource(universe, channel uint32) InputSource {
	return InputSource{Universe: universe, Channel: channel, Valid: true}
}

// FoldPage encodes a widget page number into the high bits of a channel.
// The raw channel occupies the low 16 bits, the page everything above.
func FoldPage(page int, channel uint32) uint32 {
	return uint32(page)<<16 | (channel & 0xFFFF)
}

// UnfoldPage splits a folded channel back into page and raw channel
func UnfoldPage(channel uint32) (page int, raw uint32) {
	return int(channel >> 16), channel & 0xFFFF
}
