package zki

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// MessageType discriminates the four record kinds that can appear on the
// wire. It is the one-byte tag immediately following the optional magic.
type MessageType byte

const (
	MessageHeader      MessageType = 1
	MessageConstraints MessageType = 2
	MessageWitness     MessageType = 3
	MessageCommand     MessageType = 4
)

func (t MessageType) String() string {
	switch t {
	case MessageHeader:
		return "Header"
	case MessageConstraints:
		return "ConstraintSystem"
	case MessageWitness:
		return "Witness"
	case MessageCommand:
		return "Command"
	default:
		return fmt.Sprintf("MessageType(%d)", byte(t))
	}
}

// Magic is the fixed 4-byte identifier that MAY follow the size prefix of a
// record. Readers must accept records with or without it.
var Magic = [4]byte{'z', 'k', 'i', 'f'}

const sizePrefixLen = 4

var enc = binary.LittleEndian

// ReadSizePrefix returns 4+payload for the record at the start of buf, or 0
// when fewer than 4 bytes are available.
func ReadSizePrefix(buf []byte) uint32 {
	if len(buf) < sizePrefixLen {
		return 0
	}
	payload := enc.Uint32(buf[:sizePrefixLen])
	return sizePrefixLen + payload
}

// ReadBuffer reads one length-prefixed record from r. It returns io.EOF
// (with a nil body) when the prefix cannot be fully read or the prefix
// value is zero, which is the wire format's clean end-of-stream signal. A
// full prefix followed by a short body is a malformed-record error.
func ReadBuffer(r io.Reader) ([]byte, error) {
	var prefix [sizePrefixLen]byte
	n, err := io.ReadFull(r, prefix[:])
	if n < sizePrefixLen {
		if err == io.EOF || err == io.ErrUnexpectedEOF || n == 0 {
			return nil, io.EOF
		}
		return nil, err
	}
	payload := enc.Uint32(prefix[:])
	if payload == 0 {
		return nil, io.EOF
	}
	body := make([]byte, payload)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("zki: truncated record body (wanted %d bytes): %w", payload, err)
	}
	return body, nil
}

// SplitMessages slices a buffer holding any number of concatenated
// size-prefixed records into their individual payloads. It stops cleanly
// at a zero or short trailing prefix, leaving any such tail ignored.
func SplitMessages(buf []byte) ([][]byte, error) {
	var out [][]byte
	for len(buf) > 0 {
		size := ReadSizePrefix(buf)
		if size <= sizePrefixLen {
			break
		}
		if int(size) > len(buf) {
			return out, fmt.Errorf("zki: truncated record body (wanted %d bytes, have %d)", size-sizePrefixLen, len(buf)-sizePrefixLen)
		}
		payload := buf[sizePrefixLen:size]
		out = append(out, stripMagic(payload))
		buf = buf[size:]
	}
	return out, nil
}

// stripMagic removes a leading Magic from payload, if present.
func stripMagic(payload []byte) []byte {
	if len(payload) >= len(Magic) && bytes.Equal(payload[:len(Magic)], Magic[:]) {
		return payload[len(Magic):]
	}
	return payload
}

// messageTag returns the discriminator byte and remaining body of a
// (magic-stripped) record payload.
func messageTag(payload []byte) (MessageType, []byte, error) {
	payload = stripMagic(payload)
	if len(payload) < 1 {
		return 0, nil, fmt.Errorf("zki: empty record, no message tag")
	}
	return MessageType(payload[0]), payload[1:], nil
}

// encodeRecord writes a size-prefixed, tagged record to w: the length
// prefix, the magic, the discriminator, then body.
func encodeRecord(w io.Writer, typ MessageType, body []byte) error {
	var buf bytes.Buffer
	buf.Write(Magic[:])
	buf.WriteByte(byte(typ))
	buf.Write(body)

	var prefix [sizePrefixLen]byte
	enc.PutUint32(prefix[:], uint32(buf.Len()))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
