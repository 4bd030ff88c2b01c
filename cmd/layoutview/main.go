// layoutview serves a layout snapshot and its validation report to a
// viewer client over HTTP and websocket. The snapshot files are
// re-read and re-validated whenever a client asks, so the tool can sit
// next to the generator while it is being iterated on.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"

	"github.com/progship/layoutcheck/internal/config"
	"github.com/progship/layoutcheck/internal/inspect"
	"github.com/progship/layoutcheck/internal/layout"
	"github.com/progship/layoutcheck/internal/protocol"
	"github.com/progship/layoutcheck/internal/report"
	"github.com/progship/layoutcheck/internal/ws"
)

type server struct {
	roomsPath string
	doorsPath string
	jsonPath  string

	tolerances inspect.Tolerances
	limits     report.Limits

	mu     sync.Mutex
	snap   *layout.Snapshot
	result *inspect.Result

	hub      *ws.Hub
	sequence atomic.Uint64
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("layoutview: ")

	addr := flag.String("addr", ":8080", "listen address")
	roomsPath := flag.String("rooms", "", "rooms dump file")
	doorsPath := flag.String("doors", "", "doors dump file")
	jsonPath := flag.String("snapshot", "", "JSON snapshot file (alternative to -rooms/-doors)")
	cfgPath := flag.String("config", "", "YAML file overriding tolerances and print limits")
	flag.Parse()

	if *jsonPath == "" && (*roomsPath == "" || *doorsPath == "") {
		log.Fatalf("need -snapshot or both -rooms and -doors")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	s := &server{
		roomsPath:  *roomsPath,
		doorsPath:  *doorsPath,
		jsonPath:   *jsonPath,
		tolerances: cfg.CheckTolerances(),
		limits:     cfg.PrintLimits(),
		hub:        ws.NewHub(),
	}
	if err := s.revalidate(); err != nil {
		log.Fatalf("load snapshot: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/snapshot", s.handleSnapshot)
	mux.HandleFunc("/report", s.handleReport)
	mux.HandleFunc("/ws", s.handleWS)

	log.Printf("listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

// revalidate re-reads the snapshot sources and runs a fresh pass.
func (s *server) revalidate() error {
	var snap *layout.Snapshot
	var err error
	if s.jsonPath != "" {
		snap, err = layout.LoadJSONSnapshot(s.jsonPath)
	} else {
		snap, err = layout.LoadSnapshot(s.roomsPath, s.doorsPath)
	}
	if err != nil {
		return err
	}
	result := inspect.Run(snap, s.tolerances)

	s.mu.Lock()
	s.snap = snap
	s.result = result
	s.mu.Unlock()
	return nil
}

func (s *server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	payload := snapshotPayload(s.snap)
	s.mu.Unlock()
	writeJSON(w, payload)
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	payload := reportPayload(s.snap, s.result, s.limits)
	s.mu.Unlock()
	writeJSON(w, payload)
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)

	// Push the current state straight away so a fresh client has
	// something to draw.
	for _, env := range s.stateEnvelopes() {
		data, _ := json.Marshal(env)
		_ = conn.Write(r.Context(), websocket.MessageText, data)
	}

	go func(c *websocket.Conn) {
		defer s.hub.Remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			_, data, err := c.Read(context.Background())
			if err != nil {
				return
			}
			var cmd protocol.ViewerCommand
			if err := json.Unmarshal(data, &cmd); err != nil {
				continue
			}
			if cmd.Type != protocol.CommandRevalidate {
				continue
			}
			if err := s.revalidate(); err != nil {
				log.Printf("revalidate: %v", err)
				continue
			}
			s.broadcastState()
		}
	}(conn)
}

// stateEnvelopes captures the current snapshot and report as a pair of
// envelopes, snapshot first so clients can draw the geometry before
// the findings land on it.
func (s *server) stateEnvelopes() []protocol.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return []protocol.Envelope{
		{
			Sequence: s.sequence.Add(1),
			Type:     protocol.TypeSnapshot,
			Payload:  snapshotPayload(s.snap),
		},
		{
			Sequence: s.sequence.Add(1),
			Type:     protocol.TypeReport,
			Payload:  reportPayload(s.snap, s.result, s.limits),
		},
	}
}

func (s *server) broadcastState() {
	for _, env := range s.stateEnvelopes() {
		if err := s.hub.Broadcast(env); err != nil {
			log.Printf("broadcast: %v", err)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// renderText renders the plain-text report for inclusion in the wire
// payload.
func renderText(snap *layout.Snapshot, result *inspect.Result, limits report.Limits) string {
	var b strings.Builder
	if err := report.Render(&b, snap, result, limits); err != nil {
		return ""
	}
	return b.String()
}
