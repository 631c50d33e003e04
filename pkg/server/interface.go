/*
Package server implements msgpack IPC for lexicon lookups.

The server reads a stream of MessagePack maps from its input and answers each
one with a single MessagePack map on its output. Messages are processed
synchronously, in order, with timing info included in responses.

# IPC

Every request has an ID echoed back in the response and an op naming the
lookup to run:

	{"id": "r1", "op": "get", "q": "כָּתַבְתִּי"}
	{"id": "r2", "op": "suggest", "q": "לכת", "l": 10}
	{"id": "r3", "op": "root", "q": "כ-ת-ב"}
	{"id": "r4", "op": "forms", "wid": "1-lichtov", "q": "כתבתי"}
	{"id": "r5", "op": "stats"}
	{"id": "r6", "op": "health"}

get and suggest answer with search results, each carrying the entry and the
slots that matched:

	{"id": "r1", "r": [{"w": {...}, "m": [{"i": 0, "k": 1}]}], "c": 1, "t": 42}

root answers with entries, forms with matched slots, stats with index
counters. A miss is an empty list, never an error.

# Errors

Malformed requests and failed validation are reported as:

	{"id": "r7", "e": "query exceeds maximum length of 60 characters", "c": 400}

Code 400 marks bad requests, 404 an unknown op and 500 a response the
server failed to encode.
*/
package server

import "github.com/bastiangx/lexserve/pkg/lexicon"

// Request is one IPC message.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Query  string `msgpack:"q,omitempty"`
	WordID string `msgpack:"wid,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// SearchResponse answers get and suggest.
type SearchResponse struct {
	ID        string                 `msgpack:"id"`
	Results   []lexicon.SearchResult `msgpack:"r"`
	Count     int                    `msgpack:"c"`
	TimeTaken int64                  `msgpack:"t"`
}

// RootResponse answers root.
type RootResponse struct {
	ID        string              `msgpack:"id"`
	Root      []string            `msgpack:"root"`
	Entries   []lexicon.WordEntry `msgpack:"r"`
	Count     int                 `msgpack:"c"`
	TimeTaken int64               `msgpack:"t"`
}

// FormsResponse answers forms.
type FormsResponse struct {
	ID        string                `msgpack:"id"`
	WordID    string                `msgpack:"wid"`
	Forms     []lexicon.MatchedForm `msgpack:"r"`
	Count     int                   `msgpack:"c"`
	TimeTaken int64                 `msgpack:"t"`
}

// StatsResponse answers stats.
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse answers health and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

const (
	CodeBadRequest = 400
	CodeUnknownOp  = 404
	CodeInternal   = 500
)
