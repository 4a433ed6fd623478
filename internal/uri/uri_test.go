package uri

import "testing"

func TestParse(t *testing.T) {
	u, err := Parse("0974IbnHajarHaytami.TuhfatMuhtaj.Shamela0009059BK1-ara1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if u.Author != "0974IbnHajarHaytami" {
		t.Errorf("author = %q", u.Author)
	}
	if u.Title != "TuhfatMuhtaj" {
		t.Errorf("title = %q", u.Title)
	}
	if u.Version != "Shamela0009059BK1" {
		t.Errorf("version = %q", u.Version)
	}
	if u.Lang != "ara1" {
		t.Errorf("lang = %q", u.Lang)
	}
	if u.String() != "0974IbnHajarHaytami.TuhfatMuhtaj.Shamela0009059BK1-ara1" {
		t.Errorf("round trip = %q", u.String())
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		uri  string
		want bool
	}{
		{"0974IbnHajarHaytami.TuhfatMuhtaj.Shamela0009059BK1-ara1", true},
		{"1118CabdHamidShirwani.HashiyaCalaTuhfatMuhtaj.Shamela0009059BK2-ara1", true},
		{"0179MalikIbnAnas.Muwatta.Shamela0000001-per1", true},
		{"output.txt", false},
		{"NoDate.Title.Version-ara1", false},
		{"0974Author.Title.Version", false},
		{"0974Author.Title.Version-ARABIC", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.uri); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.uri, got, tt.want)
		}
	}
}
