package network

import (
	"encoding/json"
	"io"
	"log"
	"net"

	"algoviz/pkg/engine"
	"algoviz/pkg/protocol"
)

// TCPServer exposes the engine over the binary channel. The HTTP API is
// the friendly surface; this one is for the CLI and latency-sensitive
// clients that keep a connection open.
type TCPServer struct {
	eng *engine.Engine
}

func NewTCPServer(eng *engine.Engine) *TCPServer {
	return &TCPServer{eng: eng}
}

func (s *TCPServer) Start(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Printf("[TCP] Listening on %s (Binary Protocol)", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("[TCP] Accept error: %v", err)
			continue
		}
		go s.handleConn(conn)
	}
}

func (s *TCPServer) handleConn(conn net.Conn) {
	defer conn.Close()

	for {
		req, err := protocol.Decode(conn)
		if err != nil {
			if err != io.EOF {
				log.Printf("[TCP] Decode error: %v", err)
			}
			return
		}

		switch req.Op {
		case protocol.OpSearch:
			var sr engine.SearchRequest
			if err := json.Unmarshal(req.Payload, &sr); err != nil {
				respondErr(conn, "invalid search payload")
				continue
			}
			sr.Algorithm = string(req.Name)
			out, err := s.eng.Search(sr)
			if err != nil {
				respondErr(conn, err.Error())
				continue
			}
			respondJSON(conn, out)

		case protocol.OpSort:
			var sr engine.SortRequest
			if err := json.Unmarshal(req.Payload, &sr); err != nil {
				respondErr(conn, "invalid sort payload")
				continue
			}
			sr.Algorithm = string(req.Name)
			out, err := s.eng.Sort(sr)
			if err != nil {
				respondErr(conn, err.Error())
				continue
			}
			respondJSON(conn, out)

		case protocol.OpStats:
			respondJSON(conn, s.eng.Stats().Snapshot())

		case protocol.OpPing:
			protocol.Encode(conn, protocol.RespOK, nil, nil)

		default:
			respondErr(conn, "unknown op")
		}
	}
}

func respondJSON(conn net.Conn, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		respondErr(conn, err.Error())
		return
	}
	protocol.Encode(conn, protocol.RespVal, nil, data)
}

func respondErr(conn net.Conn, msg string) {
	protocol.Encode(conn, protocol.RespErr, nil, []byte(msg))
}
