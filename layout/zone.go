package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone identifies a sub-region of a key, or a direction in which a stroke
// left the key. The engine gives zones no geometric meaning beyond identity.
type Zone uint8

// Inner zones form a 3x3 grid over the key.
const (
	Center      Zone = 0x0
	LeftTop     Zone = 0x1
	MidTop      Zone = 0x2
	RightTop    Zone = 0x3
	LeftBottom  Zone = 0x4
	MidBottom   Zone = 0x5
	RightBottom Zone = 0x6
	LeftMid     Zone = 0x7
	RightMid    Zone = 0x8
)

// Outer zones mark a stroke that exits the key entirely.
const (
	OutTop    Zone = 0xA
	OutRight  Zone = 0xB
	OutBottom Zone = 0xC
	OutLeft   Zone = 0xD
)

// ZoneSpan is the size of each zone axis of the stroke table.
const ZoneSpan = 16

// InnerZones lists the inner zones in reading order.
var InnerZones = []Zone{
	LeftTop, MidTop, RightTop,
	LeftMid, Center, RightMid,
	LeftBottom, MidBottom, RightBottom,
}

// OuterZones lists the outer zones clockwise from the top.
var OuterZones = []Zone{OutTop, OutRight, OutBottom, OutLeft}

var zoneNames = map[Zone][2]string{
	Center:      {"mc", "center"},
	LeftTop:     {"lt", "left-top"},
	MidTop:      {"mt", "mid-top"},
	RightTop:    {"rt", "right-top"},
	LeftBottom:  {"lb", "left-bottom"},
	MidBottom:   {"mb", "mid-bottom"},
	RightBottom: {"rb", "right-bottom"},
	LeftMid:     {"lm", "left-mid"},
	RightMid:    {"rm", "right-mid"},
	OutTop:      {"ot", "out-top"},
	OutRight:    {"or", "out-right"},
	OutBottom:   {"ob", "out-bottom"},
	OutLeft:     {"ol", "out-left"},
}

var zonesByName = func() map[string]Zone {
	m := make(map[string]Zone, 2*len(zoneNames))
	for z, names := range zoneNames {
		m[names[0]] = z
		m[names[1]] = z
	}
	return m
}()

// Valid reports whether z is one of the inner or outer zones.
func (z Zone) Valid() bool {
	_, ok := zoneNames[z]
	return ok
}

// Inner reports whether z lies on the key.
func (z Zone) Inner() bool {
	return z <= RightMid
}

// String returns the zone's short name.
func (z Zone) String() string {
	if names, ok := zoneNames[z]; ok {
		return names[0]
	}
	return fmt.Sprintf("zone(%#x)", uint8(z))
}

// LongName returns the zone's descriptive name.
func (z Zone) LongName() string {
	if names, ok := zoneNames[z]; ok {
		return names[1]
	}
	return z.String()
}

// ParseZone accepts a short name ("lt"), a long name ("left-top") or a hex
// code ("0x1", "a").
func ParseZone(s string) (Zone, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if z, ok := zonesByName[s]; ok {
		return z, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 8)
	if err == nil && Zone(n).Valid() {
		return Zone(n), nil
	}
	return 0, fmt.Errorf("unknown zone %q", s)
}

// MarshalText encodes the zone by short name.
func (z Zone) MarshalText() ([]byte, error) {
	if !z.Valid() {
		return nil, fmt.Errorf("invalid zone %#x", uint8(z))
	}
	return []byte(z.String()), nil
}

// UnmarshalText decodes any form accepted by ParseZone.
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := ParseZone(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}
