package zki

import "bytes"

// KeyValueKind identifies which of KeyValue's three payload fields is
// meaningful.
type KeyValueKind byte

const (
	KeyValueNumber KeyValueKind = 0
	KeyValueText   KeyValueKind = 1
	KeyValueData   KeyValueKind = 2
)

// KeyValue is a single configuration or parameter entry. Exactly one of
// Text, Data, or Number is meaningful; Kind reports which.
type KeyValue struct {
	Key    string
	Kind   KeyValueKind
	Text   string
	Data   []byte
	Number int64
}

// TextKeyValue builds a KeyValue carrying a text payload.
func TextKeyValue(key, text string) KeyValue {
	return KeyValue{Key: key, Kind: KeyValueText, Text: text}
}

// DataKeyValue builds a KeyValue carrying a raw byte payload.
func DataKeyValue(key string, data []byte) KeyValue {
	return KeyValue{Key: key, Kind: KeyValueData, Data: data}
}

// NumberKeyValue builds a KeyValue carrying an integer payload.
func NumberKeyValue(key string, number int64) KeyValue {
	return KeyValue{Key: key, Kind: KeyValueNumber, Number: number}
}

func (kv KeyValue) encode(w *bytes.Buffer) error {
	if err := writeString(w, kv.Key); err != nil {
		return err
	}
	if _, err := w.Write([]byte{byte(kv.Kind)}); err != nil {
		return err
	}
	switch kv.Kind {
	case KeyValueText:
		return writeString(w, kv.Text)
	case KeyValueData:
		return writeBytes(w, kv.Data)
	default:
		var b [8]byte
		enc.PutUint64(b[:], uint64(kv.Number))
		_, err := w.Write(b[:])
		return err
	}
}

func decodeKeyValue(c *cursor) (KeyValue, error) {
	key, err := c.readString()
	if err != nil {
		return KeyValue{}, err
	}
	kindByte, err := c.readByte()
	if err != nil {
		return KeyValue{}, err
	}
	kv := KeyValue{Key: key, Kind: KeyValueKind(kindByte)}
	switch kv.Kind {
	case KeyValueText:
		kv.Text, err = c.readString()
	case KeyValueData:
		data, e := c.readBytes()
		kv.Data, err = cloneBytes(data), e
	default:
		v, e := c.readU64()
		kv.Number = int64(v)
		err = e
	}
	if err != nil {
		return KeyValue{}, err
	}
	return kv, nil
}

func encodeKeyValues(w *bytes.Buffer, kvs []KeyValue) error {
	if err := writeUvarint(w, uint64(len(kvs))); err != nil {
		return err
	}
	for _, kv := range kvs {
		if err := kv.encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeKeyValues(c *cursor) ([]KeyValue, error) {
	n, err := c.readUvarint()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]KeyValue, n)
	for i := range out {
		out[i], err = decodeKeyValue(c)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
