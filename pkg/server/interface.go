/*
Package server exposes a suggest.ICompleter over two transports.

# IPC

MessagePack values over stdin/stdout, one request answered by one response.
On start the server writes a ready message:

	{"status": "ready"}

Completion requests carry an ID and a prefix:

	{"id": "req_001", "p": "pro"}

The response holds the suggested word, or nil when there is nothing to suggest,
plus the lookup time in microseconds:

	{"id": "req_001", "w": "program", "t": 3}
	{"id": "req_002", "w": nil, "t": 1}

Requests with an action field are control messages:

	{"id": "h1", "action": "health"}
	{"id": "s1", "action": "stats"}

# HTTP

	GET /receive_word?word=pro  ->  {"finished_word": "program"}
	GET /receive_word?word=zzz  ->  {"finished_word": null}
	GET /receive_word           ->  400 {"detail": "No word provided"}
	OPTIONS /receive_word       ->  204 with CORS headers for allowed origins
	GET /health                 ->  {"status": "ok", "words": 370105}
*/
package server

// Request is any message a client can send over IPC.
// Messages without an action are completion requests.
type Request struct {
	ID     string `msgpack:"id"`
	Prefix string `msgpack:"p,omitempty"`
	Action string `msgpack:"action,omitempty"`
}

// CompletionResponse - completion response, Word is nil when there is no suggestion
type CompletionResponse struct {
	ID        string  `msgpack:"id"`
	Word      *string `msgpack:"w"`
	TimeTaken int64   `msgpack:"t"`
}

// StatusResponse answers ready, health and stats messages
type StatusResponse struct {
	ID     string         `msgpack:"id,omitempty"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// CompletionError holds basic error information for IPC requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// FinishedWordResponse is the HTTP completion body
type FinishedWordResponse struct {
	FinishedWord *string `json:"finished_word"`
}

// HealthResponse is the HTTP health body
type HealthResponse struct {
	Status string `json:"status"`
	Words  int    `json:"words"`
}

// ErrorResponse represents an HTTP API error, the status travels in the status line
type ErrorResponse struct {
	Detail string `json:"detail"`
}
