package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntake_NamedScope(t *testing.T) {
	in := &Intake{Scope: []string{"Other", string(ScopeCRM), string(ScopeWebsite)}}

	assert.Equal(t, []string{"CRM Setup", "Website / Landing Page"}, in.NamedScope())
	assert.True(t, in.HasScope(ScopeCRM))
	assert.False(t, in.HasScope(ScopeEmail))
}

func TestIntake_NamedScopeEmpty(t *testing.T) {
	in := &Intake{}
	assert.NotNil(t, in.NamedScope())
	assert.Empty(t, in.NamedScope())
}

func TestVocabularies_MatchValidSets(t *testing.T) {
	assert.Len(t, ValidScopeOptions, len(ScopeOptions))
	for _, o := range ScopeOptions {
		assert.True(t, ValidScopeOptions[string(o)], o)
	}
	assert.Len(t, ValidPriorityOptions, len(PriorityOptions))
	for _, o := range PriorityOptions {
		assert.True(t, ValidPriorityOptions[string(o)], o)
	}
	assert.Len(t, ValidInvolvements, len(InvolvementOptions))
}
