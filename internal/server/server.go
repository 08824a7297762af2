// Package server exposes the word calculator as a JSON HTTP API.
//
// Endpoints:
//
//	GET  /api/eval?expr=<text>
//	POST /api/eval          body: {"expression":"..."}
//	GET  /api/numerals
//	GET  /api/numerals/:word
//	GET  /health
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/zephyrtronium/wordcalc"
)

// Error kinds reported in evaluation responses.
const (
	KindDivisionByZero = "division_by_zero"
	KindExpression     = "expression"
)

type evalRequest struct {
	Expression string `json:"expression"`
}

type evalResponse struct {
	Expression string   `json:"expression"`
	Result     *float64 `json:"result,omitempty"`
	RPN        string   `json:"rpn,omitempty"`
	Error      string   `json:"error,omitempty"`
	Kind       string   `json:"kind,omitempty"`
	Pos        int      `json:"pos,omitempty"`
}

type numeralResponse struct {
	Word  string `json:"word"`
	Value int64  `json:"value"`
}

type numeralsResponse struct {
	Numerals map[string]int64 `json:"numerals"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server provides the HTTP interface to the calculator.
type Server struct {
	addr    string
	router  *httprouter.Router
	handler http.Handler

	mu     sync.Mutex
	server *http.Server
}

// New creates a server listening on addr once started. Cross-origin requests
// are allowed from origins; "*" allows any origin.
func New(addr string, origins []string) *Server {
	s := &Server{
		addr:   addr,
		router: httprouter.New(),
	}
	s.setupRoutes()
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	s.handler = c.Handler(s.router)
	return s
}

// Handler returns the server's HTTP handler, including CORS handling.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()
	log.Printf("listening on %s", s.addr)
	return srv.ListenAndServe()
}

// Stop gracefully stops the HTTP server.
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.server
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/api/eval", s.handleEvalQuery)
	s.router.POST("/api/eval", s.handleEvalBody)
	s.router.GET("/api/numerals", s.handleNumerals)
	s.router.GET("/api/numerals/:word", s.handleNumeral)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEvalQuery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	if !q.Has("expr") {
		writeError(w, http.StatusBadRequest, "missing 'expr' query parameter")
		return
	}
	s.eval(w, q.Get("expr"))
}

func (s *Server) handleEvalBody(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body evalRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "body must be JSON with an 'expression' field")
		return
	}
	s.eval(w, body.Expression)
}

func (s *Server) eval(w http.ResponseWriter, src string) {
	resp := evalResponse{Expression: src}
	a, err := wordcalc.ParseString(src)
	var r float64
	if err == nil {
		resp.RPN = a.String()
		r, err = a.Eval()
	}
	if err != nil {
		var ie wordcalc.InputError
		if errors.As(err, &ie) {
			resp.Pos = ie.Pos()
		}
		var dz *wordcalc.DivisionError
		if errors.As(err, &dz) {
			resp.Kind = KindDivisionByZero
			resp.Error = dz.Error()
		} else {
			resp.Kind = KindExpression
			resp.Error = (&wordcalc.ExprError{Err: err}).Error()
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	resp.Result = &r
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNumerals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, numeralsResponse{Numerals: wordcalc.Numerals()})
}

func (s *Server) handleNumeral(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	word := ps.ByName("word")
	v, ok := wordcalc.Numeral(word)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("%q is not a number word", word))
		return
	}
	writeJSON(w, http.StatusOK, numeralResponse{Word: word, Value: v})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
