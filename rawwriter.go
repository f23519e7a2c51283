package main

// writeRaw concatenates code and data with no header — the raw-binary
// writer variant of spec.md §4.8.
func writeRaw(code, data []byte) []byte {
	out := make([]byte, 0, len(code)+len(data))
	out = append(out, code...)
	out = append(out, data...)
	return out
}
