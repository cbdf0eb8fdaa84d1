package mapper

import "bufio"

// EncodeKV writes kv in the streaming wire form key\tvalue\n.
func EncodeKV(w *bufio.Writer, kv KV) error {
	if _, err := w.WriteString(kv.Key); err != nil {
		return err
	}
	if err := w.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.WriteString(kv.Value); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
