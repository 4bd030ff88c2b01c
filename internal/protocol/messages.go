// Package protocol defines the JSON wire types the layout viewer
// consumes. The viewer never sees internal validator types; these are
// the stable surface.
package protocol

// Envelope wraps every message pushed to a viewer client. Sequence is
// monotonically increasing per server so clients can drop stale
// rebroadcasts.
type Envelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Envelope types.
const (
	TypeReport   = "report"
	TypeSnapshot = "snapshot"
)

// ViewerCommand is what a client may send over the websocket.
type ViewerCommand struct {
	Type string `json:"type"`
}

// Command types.
const CommandRevalidate = "revalidate"

type RoomLite struct {
	ID   int     `json:"id"`
	Type int     `json:"type"`
	Deck int     `json:"deck"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	W    float64 `json:"w"`
	H    float64 `json:"h"`
}

type DoorLite struct {
	ID       int     `json:"id"`
	RoomA    int     `json:"roomA"`
	RoomB    int     `json:"roomB"`
	WallA    string  `json:"wallA"`
	WallB    string  `json:"wallB"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Embedded bool    `json:"embedded"`
}

type SnapshotPayload struct {
	Rooms []RoomLite `json:"rooms"`
	Doors []DoorLite `json:"doors"`
}

type FindingLite struct {
	DoorID    int     `json:"doorId"`
	Kind      string  `json:"kind"`
	Severity  string  `json:"severity"`
	Message   string  `json:"message"`
	Deviation float64 `json:"deviation"`
}

type OverlapLite struct {
	Deck    int     `json:"deck"`
	RoomA   int     `json:"roomA"`
	RoomB   int     `json:"roomB"`
	ExtentX float64 `json:"extentX"`
	ExtentY float64 `json:"extentY"`
}

type DeckConnectivityLite struct {
	Deck        int   `json:"deck"`
	HasStart    bool  `json:"hasStart"`
	StartRoom   int   `json:"startRoom"`
	Reachable   int   `json:"reachable"`
	Total       int   `json:"total"`
	Unreachable []int `json:"unreachable"`
}

// ReportPayload carries one full validation pass plus its rendered
// text form, so simple clients can show the text while richer ones
// draw the structured findings on the deck map.
type ReportPayload struct {
	Errors       []FindingLite          `json:"errors"`
	Warnings     []FindingLite          `json:"warnings"`
	Overlaps     []OverlapLite          `json:"overlaps"`
	Connectivity []DeckConnectivityLite `json:"connectivity"`
	Text         string                 `json:"text"`
}
