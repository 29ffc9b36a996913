package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordfinisher/internal/logger"
	"github.com/bastiangx/wordfinisher/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for word completions
type Server struct {
	completer suggest.ICompleter
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	logger    *log.Logger
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(completer suggest.ICompleter) *Server {
	return NewServerWithIO(completer, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server reading requests from r and writing responses to w
func NewServerWithIO(completer suggest.ICompleter, r io.Reader, w io.Writer) *Server {
	return &Server{
		completer: completer,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		logger:    logger.New("ipc"),
	}
}

// Start answers requests until the input is closed
func (s *Server) Start() error {
	s.logger.Debug("Starting IPC server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client disconnected")
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return err
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes a single message and dispatches it.
// Only write failures are returned; bad requests are answered with an error message.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.logger.Debugf("Unmarshaling request: %v", err)
		return s.sendError("", "Invalid request", 400)
	}

	switch request.Action {
	case "":
		return s.handleComplete(request)
	case "health":
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	case "stats":
		return s.send(StatusResponse{ID: request.ID, Status: "ok", Stats: s.completer.Stats()})
	default:
		return s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleComplete(request Request) error {
	start := time.Now()
	word, found := s.completer.Complete(request.Prefix)
	elapsed := time.Since(start)

	response := CompletionResponse{
		ID:        request.ID,
		TimeTaken: elapsed.Microseconds(),
	}
	if found {
		response.Word = &word
	}
	s.logger.Debug("Completed", "prefix", request.Prefix, "found", found, "took", elapsed)
	return s.send(response)
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Writing response: %v", err)
		return err
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(CompletionError{ID: id, Error: message, Code: code})
}
