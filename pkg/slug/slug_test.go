package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"10 Essential Health Tips for 2024!", "10-essential-health-tips-for-2024"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Root Canal: What to Expect?", "root-canal-what-to-expect"},
		{"Multiple   spaces\tand\ttabs", "multiple-spaces-and-tabs"},
		{"Kids' Dental-Care 101", "kids-dentalcare-101"},
		{"Hello\u00a0World", "hello-world"},
		{"Em\u2003space\u3000and ideographic", "em-space-and-ideographic"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.title))
		})
	}
}
