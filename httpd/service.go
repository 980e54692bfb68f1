// Package httpd serves the most recent audit report over HTTP so the
// staff can read findings without shell access to the audit host.
package httpd

import (
	"fmt"
	"net"
	"net/http"

	"github.com/lodastack/log"
	"github.com/ocflabs/labops/model"

	"github.com/julienschmidt/httprouter"
)

// Service provides HTTP service.
type Service struct {
	addr string
	ln   net.Listener

	router *httprouter.Router

	report *model.Report

	logger *log.Logger
}

// New returns an uninitialized HTTP service serving report.
func New(addr string, report *model.Report) *Service {
	return &Service{
		addr:   addr,
		report: report,
		router: httprouter.New(),
		logger: log.New("INFO", "http", model.LogBackend),
	}
}

// Start the server
func (s *Service) Start() error {
	s.initHandler()

	server := http.Server{
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.ln = ln

	go func() {
		err := server.Serve(s.ln)
		if err != nil {
			s.logger.Errorf("Serve error: %s", err.Error())
		}
	}()
	s.logger.Println("service listening on: ", s.addr)

	return nil
}

// Close closes the service.
func (s *Service) Close() error {
	return s.ln.Close()
}

func (s *Service) initHandler() {
	s.router.GET("/audit", s.handlerAuditText)
	s.router.GET("/audit/json", s.handlerAuditJson)
}

func (s *Service) handlerAuditText(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if s.report.Clean() {
		fmt.Fprintln(w, "no violations found")
		return
	}
	for _, v := range s.report.Violations {
		fmt.Fprintln(w, v.String())
	}
}

func (s *Service) handlerAuditJson(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ReturnJson(w, http.StatusOK, s.report)
}
