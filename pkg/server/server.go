package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/lexserve/internal/logger"
	"github.com/bastiangx/lexserve/internal/utils"
	"github.com/bastiangx/lexserve/pkg/config"
	"github.com/bastiangx/lexserve/pkg/lexicon"
	"github.com/bastiangx/lexserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for lexicon lookups
type Server struct {
	searcher suggest.Searcher
	config   config.ServerConfig
	dec      *msgpack.Decoder
	out      *bufio.Writer
	log      *log.Logger

	requestCount int
}

// NewServer creates a server answering requests read from r on w.
func NewServer(searcher suggest.Searcher, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		searcher: searcher,
		config:   cfg.Server,
		dec:      msgpack.NewDecoder(bufio.NewReader(r)),
		out:      bufio.NewWriter(w),
		log:      logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")
	s.send("", StatusResponse{Status: "ready"})

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.log.Errorf("Reading request: %v", err)
			return err
		}
		s.handleRequest(raw)
	}
}

// RequestCount returns how many requests were served.
func (s *Server) RequestCount() int {
	return s.requestCount
}

// handleRequest processes one raw message. A message that is valid msgpack
// but not a Request is answered with an error and the stream continues.
func (s *Server) handleRequest(raw msgpack.RawMessage) {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "invalid msgpack request", CodeBadRequest)
		return
	}

	switch req.Op {
	case "get":
		s.handleGet(req)
	case "suggest":
		s.handleSuggest(req)
	case "root":
		s.handleRoot(req)
	case "forms":
		s.handleForms(req)
	case "stats":
		s.send(req.ID, StatsResponse{ID: req.ID, Stats: s.searcher.Stats()})
	case "health":
		s.send(req.ID, StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), CodeUnknownOp)
	}
}

// validateQuery checks presence, content and length of a query, in code points.
func (s *Server) validateQuery(req Request) bool {
	q := req.Query
	if q == "" {
		s.sendError(req.ID, "missing 'q' parameter", CodeBadRequest)
		return false
	}
	n := utils.RuneLen(q)
	if n < s.config.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("query must be at least %d characters", s.config.MinQuery), CodeBadRequest)
		return false
	}
	if n > s.config.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", s.config.MaxQuery), CodeBadRequest)
		return false
	}
	if !utils.IsValidInput(q) {
		s.sendError(req.ID, "query has no letters", CodeBadRequest)
		return false
	}
	return true
}

// limitFor applies the configured default and cap.
func (s *Server) limitFor(req Request) int {
	if req.Limit < 1 {
		return s.config.DefaultLimit
	}
	return min(req.Limit, s.config.MaxLimit)
}

func (s *Server) handleGet(req Request) {
	if !s.validateQuery(req) {
		return
	}
	start := time.Now()
	results := s.searcher.Get(req.Query)
	s.sendResults(req, results, time.Since(start))
}

func (s *Server) handleSuggest(req Request) {
	if !s.validateQuery(req) {
		return
	}
	limit := s.limitFor(req)
	start := time.Now()
	results := s.searcher.Suggest(req.Query, limit)
	s.sendResults(req, results, time.Since(start))
}

func (s *Server) sendResults(req Request, results []lexicon.SearchResult, elapsed time.Duration) {
	s.log.Debugf("%s %q: %d results in %v", req.Op, req.Query, len(results), elapsed)
	s.send(req.ID, SearchResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleRoot(req Request) {
	root := lexicon.ParseRoot(req.Query)
	if len(root) == 0 {
		s.sendError(req.ID, "missing 'q' parameter", CodeBadRequest)
		return
	}
	start := time.Now()
	entries := s.searcher.GetByRoot(root)
	elapsed := time.Since(start)
	s.send(req.ID, RootResponse{
		ID:        req.ID,
		Root:      root,
		Entries:   entries,
		Count:     len(entries),
		TimeTaken: elapsed.Microseconds(),
	})
}

func (s *Server) handleForms(req Request) {
	if req.WordID == "" {
		s.sendError(req.ID, "missing 'wid' parameter", CodeBadRequest)
		return
	}
	if !s.validateQuery(req) {
		return
	}
	start := time.Now()
	forms := s.searcher.MatchingForms(req.WordID, req.Query)
	elapsed := time.Since(start)
	s.send(req.ID, FormsResponse{
		ID:        req.ID,
		WordID:    req.WordID,
		Forms:     forms,
		Count:     len(forms),
		TimeTaken: elapsed.Microseconds(),
	})
}

// send encodes one response and flushes it so the client sees it at once.
// A response that cannot be encoded is replaced by an internal error for id.
func (s *Server) send(id string, response any) {
	data, err := msgpack.Marshal(response)
	if err != nil {
		s.log.Errorf("Marshaling response: %v", err)
		data, err = msgpack.Marshal(ErrorResponse{ID: id, Error: "internal error encoding response", Code: CodeInternal})
		if err != nil {
			return
		}
	}
	if _, err := s.out.Write(data); err != nil {
		s.log.Errorf("Writing response: %v", err)
		return
	}
	if err := s.out.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(id, ErrorResponse{ID: id, Error: message, Code: code})
}
