package vision

import "strings"

// Channel identifies one feature dimension over which belief is tracked
// independently. The alphabet follows the extractor's channel ordering:
// saliency, color, intensity, orientation, flicker, motion, gist.
type Channel int

const (
	Saliency Channel = iota
	Color
	Intensity
	Orientation
	Flicker
	Motion
	Gist
	NumChannels
)

// DefaultChannelSpec selects every channel.
const DefaultChannelSpec = "SCIOFMG"

var channelCodes = [NumChannels]byte{'S', 'C', 'I', 'O', 'F', 'M', 'G'}

var channelNames = [NumChannels]string{
	"saliency", "color", "intensity", "orientation", "flicker", "motion", "gist",
}

// Code returns the single-letter code used in channel spec strings.
func (c Channel) Code() byte {
	if c < 0 || c >= NumChannels {
		return '?'
	}
	return channelCodes[c]
}

func (c Channel) String() string {
	if c < 0 || c >= NumChannels {
		return "unknown"
	}
	return channelNames[c]
}

// ChannelSet is an ordered, deduplicated selection of channels. Order is
// first-occurrence order of the spec string it was parsed from.
type ChannelSet []Channel

// ParseChannels validates a channel spec string and returns the ordered,
// deduplicated channel set. Letters are case-sensitive uppercase; duplicate
// letters are ignored. An empty spec or any letter outside the alphabet is
// rejected with a ConfigError.
func ParseChannels(spec string) (ChannelSet, error) {
	if spec == "" {
		return nil, &ConfigError{Param: "channels", Reason: "spec is empty"}
	}
	var (
		set  ChannelSet
		seen [NumChannels]bool
	)
	for i := 0; i < len(spec); i++ {
		ch, ok := channelFromCode(spec[i])
		if !ok {
			return nil, &ConfigError{
				Param:  "channels",
				Reason: "unknown channel letter " + string(spec[i]) + " (valid: " + DefaultChannelSpec + ")",
			}
		}
		if seen[ch] {
			continue
		}
		seen[ch] = true
		set = append(set, ch)
	}
	return set, nil
}

func channelFromCode(code byte) (Channel, bool) {
	for ch, c := range channelCodes {
		if c == code {
			return Channel(ch), true
		}
	}
	return 0, false
}

// String returns the canonical spec form: one letter per channel, in set
// order. ParseChannels(set.String()) round-trips.
func (s ChannelSet) String() string {
	var b strings.Builder
	for _, ch := range s {
		b.WriteByte(ch.Code())
	}
	return b.String()
}

// Contains reports whether the set includes the given channel.
func (s ChannelSet) Contains(ch Channel) bool {
	for _, c := range s {
		if c == ch {
			return true
		}
	}
	return false
}
