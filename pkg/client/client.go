package client

import (
	"encoding/json"
	"errors"
	"net"
	"time"

	"algoviz/pkg/engine"
	"algoviz/pkg/protocol"
)

type Client struct {
	conn net.Conn
	addr string
}

func Dial(addr string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn: conn,
		addr: addr,
	}, nil
}

// Search runs a search on the server. A broken connection is redialed
// once and the request replayed.
func (c *Client) Search(datasetID, algorithm, target string) (*engine.RunOutput, error) {
	payload, err := json.Marshal(engine.SearchRequest{DatasetID: datasetID, Target: target})
	if err != nil {
		return nil, err
	}
	data, err := c.roundTrip(protocol.OpSearch, []byte(algorithm), payload)
	if err != nil {
		return nil, err
	}
	var out engine.RunOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Sort(datasetID, algorithm string) (*engine.RunOutput, error) {
	payload, err := json.Marshal(engine.SortRequest{DatasetID: datasetID})
	if err != nil {
		return nil, err
	}
	data, err := c.roundTrip(protocol.OpSort, []byte(algorithm), payload)
	if err != nil {
		return nil, err
	}
	var out engine.RunOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats() (map[string]interface{}, error) {
	data, err := c.roundTrip(protocol.OpStats, nil, nil)
	if err != nil {
		return nil, err
	}
	var stats map[string]interface{}
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) Ping() error {
	if err := protocol.Encode(c.conn, protocol.OpPing, nil, nil); err != nil {
		return c.reconnectAndPing()
	}
	pkg, err := protocol.Decode(c.conn)
	if err != nil {
		return c.reconnectAndPing()
	}
	if pkg.Op != protocol.RespOK {
		return errors.New("ping failed")
	}
	return nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) roundTrip(op byte, name, payload []byte) ([]byte, error) {
	if err := protocol.Encode(c.conn, op, name, payload); err != nil {
		return c.reconnectAndRetry(op, name, payload)
	}
	pkg, err := protocol.Decode(c.conn)
	if err != nil {
		return c.reconnectAndRetry(op, name, payload)
	}
	return unpack(pkg)
}

func (c *Client) reconnectAndRetry(op byte, name, payload []byte) ([]byte, error) {
	c.conn.Close()
	conn, err := net.DialTimeout("tcp", c.addr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	c.conn = conn

	if err := protocol.Encode(c.conn, op, name, payload); err != nil {
		return nil, err
	}
	pkg, err := protocol.Decode(c.conn)
	if err != nil {
		return nil, err
	}
	return unpack(pkg)
}

func (c *Client) reconnectAndPing() error {
	c.conn.Close()
	conn, err := net.DialTimeout("tcp", c.addr, 5*time.Second)
	if err != nil {
		return err
	}
	c.conn = conn

	if err := protocol.Encode(c.conn, protocol.OpPing, nil, nil); err != nil {
		return err
	}
	pkg, err := protocol.Decode(c.conn)
	if err != nil {
		return err
	}
	if pkg.Op != protocol.RespOK {
		return errors.New("ping failed")
	}
	return nil
}

func unpack(pkg *protocol.Packet) ([]byte, error) {
	switch pkg.Op {
	case protocol.RespVal:
		return pkg.Payload, nil
	case protocol.RespErr:
		return nil, errors.New(string(pkg.Payload))
	default:
		return nil, errors.New("unknown response")
	}
}
