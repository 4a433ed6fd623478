package documents

import "testing"

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", nil, TypeBinary},
		{"null bytes", []byte("PK\x03\x04\x00\x00"), TypeBinary},
		{"invalid utf8", []byte{0xff, 0xfe, 0x41}, TypeBinary},
		{"plain text", []byte("just some notes"), TypeText},
		{"corpus text", []byte("######OpenITI#\n#META#Header#End#\n\nنص"), TypeCorpus},
		{"arabic without header", []byte("نص عربي بلا ترويسة"), TypeText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDocumentType(tt.data); got != tt.want {
				t.Errorf("DetectDocumentType() = %q, want %q", got, tt.want)
			}
		})
	}
}
