package protocol

import (
	"encoding/binary"
	"errors"
	"io"
)

// Frame layout: [Magic 1B] [Op 1B] [NameLen 2B] [PayloadLen 4B] [Name] [Payload]
// Name carries the algorithm name, Payload a JSON document.

const (
	MagicNumber = 0x41 // 'A'

	OpSearch = 0x01
	OpSort   = 0x02
	OpStats  = 0x03
	OpPing   = 0x04

	RespOK  = 0x00
	RespErr = 0xFF
	RespVal = 0x01
)

type Packet struct {
	Op      byte
	Name    []byte
	Payload []byte
}

func Encode(w io.Writer, op byte, name []byte, payload []byte) error {
	header := make([]byte, 8)
	header[0] = MagicNumber
	header[1] = op
	binary.BigEndian.PutUint16(header[2:4], uint16(len(name)))
	binary.BigEndian.PutUint32(header[4:8], uint32(len(payload)))

	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(name) > 0 {
		if _, err := w.Write(name); err != nil {
			return err
		}
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
	return nil
}

func Decode(r io.Reader) (*Packet, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}

	if header[0] != MagicNumber {
		return nil, errors.New("invalid magic number")
	}

	op := header[1]
	nLen := binary.BigEndian.Uint16(header[2:4])
	pLen := binary.BigEndian.Uint32(header[4:8])

	name := make([]byte, nLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, err
	}

	payload := make([]byte, pLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	return &Packet{Op: op, Name: name, Payload: payload}, nil
}
