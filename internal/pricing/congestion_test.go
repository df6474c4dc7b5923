package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCongestionZone(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    bool
	}{
		{"london by name", "221B Baker Street, London", true},
		{"lowercase london", "flat 3, 10 south bank, london", true},
		{"central EC postcode", "1 Finsbury Square, EC2A 1AA", true},
		{"WC postcode", "10 Strand, WC2R 0EX", true},
		{"SE1 postcode", "5 Borough High St, SE1 9SE", true},
		{"W1 postcode", "20 Oxford St, W1D 1AU", true},
		{"manchester", "12 Elm Street, Manchester, M4 5BB", false},
		{"leeds", "3 Mill Lane, Leeds, LS1 4AB", false},
		{"bare district letters", "The EC Building, Reading", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCongestionZone(tt.address))
		})
	}
}
