package snapshot

import "encoding/json"

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// rawString/rawJSON build json.RawMessage values for OrderedMap fixtures
// without going through a full JSON round trip in every test.
func rawString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}

func rawJSON(s string) json.RawMessage {
	return json.RawMessage(s)
}

func om(pairs ...KV) OrderedMap {
	return OrderedMap(pairs)
}

func kv(key string, raw json.RawMessage) KV {
	return KV{Key: key, Value: raw}
}
