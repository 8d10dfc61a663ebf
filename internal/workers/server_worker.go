package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fedi-wallet/internal/server"
)

type serverWorker struct {
	srv server.Server
	wg  sync.WaitGroup
}

// NewServerWorker serves srv in the background until Stop.
func NewServerWorker(srv server.Server) Worker {
	return &serverWorker{srv: srv}
}

func (s *serverWorker) Run(_ context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.srv.RunServer()
	}()
}

func (s *serverWorker) Stop() {
	s.srv.Shutdown()
	s.wg.Wait()
}
