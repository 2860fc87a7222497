package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"stripload/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer. Each connection gets
// its own hub.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Error("upgrade failed")
		return
	}
	defer conn.Close()

	hub := NewHub(conn)
	// closing msg winds down handleRequest, which in turn releases
	// handleResponse through the done channel
	defer close(hub.msg)
	go hub.handleRequest()
	go hub.handleResponse()

	var msg model.Msg
	for {
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithField("err", err).Info("connection closed")
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.WithField("addr", s.addr).Info("listening")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
