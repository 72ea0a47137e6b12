package dnswire

import "testing"

func FuzzParseRRStream(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0})
	f.Add([]byte{7, 'e', 'x'})
	f.Add([]byte{0xC0, 0x00})

	var wellFormed []byte
	wellFormed = append(wellFormed, encodeName("example", "com")...)
	wellFormed = append(wellFormed, 0, 1, 0, 1, 0, 0, 0x0e, 0x10, 0, 4)
	wellFormed = append(wellFormed, 93, 184, 216, 34)
	f.Add(wellFormed)

	f.Fuzz(func(t *testing.T, data []byte) {
		rrs, err := ParseRRStream(data)
		if err != nil {
			return
		}
		for _, rr := range rrs {
			if rr.RData == nil {
				t.Fatalf("parsed RR with nil RData for type %d", rr.Type)
			}
		}
	})
}
