// Package serve exposes the analyzer as a newline-delimited JSON protocol
// over a reader/writer pair.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/praetorian-inc/schematic/pkg/analyzer"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server manages the streaming analyzer
type Server struct {
	core    *analyzer.Core
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(core *analyzer.Core, in io.Reader, out io.Writer) *Server {
	return &Server{
		core:    core,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run sends a ready line, then answers requests until the input ends,
// a close request arrives, or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// A request decoded just before EOF may still be pending.
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case TypeAnalyze:
		s.handleAnalyze(req.Payload)
	case TypeAnalyzeBatch:
		s.handleAnalyzeBatch(req.Payload)
	case TypeStats:
		s.handleStats()
	case TypeClose:
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	s.send("ready", ReadyData{Version: Version})
}

func (s *Server) handleAnalyze(payload json.RawMessage) {
	var p AnalyzePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError(TypeAnalyze, err.Error())
		return
	}

	result, err := s.core.Analyze(p.Content, p.Source)
	if err != nil {
		s.sendError(TypeAnalyze, err.Error())
		return
	}
	s.send(TypeAnalyze, result)
}

func (s *Server) handleAnalyzeBatch(payload json.RawMessage) {
	var p AnalyzeBatchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError(TypeAnalyzeBatch, err.Error())
		return
	}

	result, err := s.core.AnalyzeBatch(p.Items)
	if err != nil {
		s.sendError(TypeAnalyzeBatch, err.Error())
		return
	}
	s.send(TypeAnalyzeBatch, result)
}

func (s *Server) handleStats() {
	st := s.core.Store()

	records, err := st.GetSchematics()
	if err != nil {
		s.sendError(TypeStats, err.Error())
		return
	}
	parts, err := st.GetAllPartNumbers()
	if err != nil {
		s.sendError(TypeStats, err.Error())
		return
	}
	gears, err := st.GetAllGearRatios()
	if err != nil {
		s.sendError(TypeStats, err.Error())
		return
	}

	s.send(TypeStats, StatsData{
		Schematics:  len(records),
		PartNumbers: len(parts),
		GearRatios:  len(gears),
	})
}

func (s *Server) send(reqType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(reqType, err.Error())
		return
	}
	s.encoder.Encode(Response{
		Success: true,
		Type:    reqType,
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
