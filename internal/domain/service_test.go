package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDisplayPrice(t *testing.T) {
	tests := []struct {
		price string
		want  int64
	}{
		{"₱ 20,000", 20000},
		{"₱ 6,000", 6000},
		{"₱ 45,000", 45000},
		{"20000", 20000},
		{"from 1,500 per hour", 1500},
		{"", 0},
		{"price on request", 0},
		{"₱", 0},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDisplayPrice(tt.price))
		})
	}
}

func TestFindServiceByTitle(t *testing.T) {
	services := []*Service{
		{ID: 1, Title: "Package A", Price: "₱ 20,000"},
		{ID: 2, Title: "Package B", Price: "₱ 30,000"},
	}

	found := FindServiceByTitle(services, "Package B")
	assert.NotNil(t, found)
	assert.Equal(t, int64(2), found.ID)

	// Совпадение только по точному названию
	assert.Nil(t, FindServiceByTitle(services, "package b"))
	assert.Nil(t, FindServiceByTitle(services, ""))
	assert.Nil(t, FindServiceByTitle(nil, "Package A"))
}
