package domain_test

import (
	"testing"

	"github.com/dom/dx3bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveMainAttribute(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"백병", "육체"},
		{"회피", "육체"},
		{"사격", "감각"},
		{"지각", "감각"},
		{"RC", "정신"},
		{"의지", "정신"},
		{"교섭", "사회"},
		{"조달", "사회"},
		{"운전:4륜", "육체"},
		{"정보:뒷골목", "사회"},
		{"예술:노래", "감각"},
		{"지식:요리", "정신"},
		// Category prefix wins when a token satisfies both rules.
		{"정보:사격", "사회"},
		// Unknown tokens resolve to themselves.
		{"육체", "육체"},
		{"운명", "운명"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ResolveMainAttribute(tt.token))
		})
	}
}

func TestSubAttributeMain(t *testing.T) {
	main, ok := domain.SubAttributeMain("백병")
	assert.True(t, ok)
	assert.Equal(t, "육체", main)

	// Main attributes and free-form stats are not sub-attributes.
	_, ok = domain.SubAttributeMain("육체")
	assert.False(t, ok)
	_, ok = domain.SubAttributeMain("HP")
	assert.False(t, ok)
}
