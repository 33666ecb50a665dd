package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCondoKeyword(t *testing.T) {
	v := Classify("Preciso contratar um contador para o condomínio", nil)

	assert.True(t, v.InScope)
	assert.Empty(t, v.Refusal)
	assert.GreaterOrEqual(t, v.Metadata.TotalScore, 1)
	assert.GreaterOrEqual(t, v.Metadata.CondoScore, 2) // "contador" and "condomínio"
	assert.Equal(t, ConfidenceHigh, v.Metadata.Confidence)
}

func TestClassifyOutOfScopeHealth(t *testing.T) {
	v := Classify("O que faz um urologista?", nil)

	assert.False(t, v.InScope)
	assert.Equal(t, RefusalMessage, v.Refusal)
	assert.Equal(t, "health", v.Metadata.MatchedPattern)
	assert.Equal(t, ConfidenceHigh, v.Metadata.Confidence)
}

func TestClassifyPersonalLegalNoOverride(t *testing.T) {
	v := Classify("Preciso de um advogado para divórcio pessoal", nil)

	assert.False(t, v.InScope)
	assert.Equal(t, "personal_legal", v.Metadata.MatchedPattern)
	assert.NotEmpty(t, v.Refusal)
}

func TestClassifyOverrideRule(t *testing.T) {
	// An out-of-scope pattern combined with a condominium token is admitted.
	v := Classify("O morador disse que o urologista reclamou do barulho", nil)

	assert.True(t, v.InScope)
	assert.Empty(t, v.Metadata.MatchedPattern)
	assert.GreaterOrEqual(t, v.Metadata.TotalScore, 1)
}

func TestClassifyEmptyMessage(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		v := Classify(msg, nil)

		assert.False(t, v.InScope, "message %q", msg)
		assert.Zero(t, v.Metadata.TotalScore)
		assert.Empty(t, v.Metadata.MatchedPattern)
		assert.Equal(t, ConfidenceLow, v.Metadata.Confidence)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	messages := []string{
		"Como funciona o rateio de despesas?",
		"O que faz um urologista?",
		"",
		"Preciso de um advogado para divórcio pessoal",
	}
	hints := &Hints{UserRole: "síndico", CondoType: "residencial"}

	for _, msg := range messages {
		first := Classify(msg, hints)
		second := Classify(msg, hints)
		assert.Equal(t, first, second, "message %q", msg)
	}
}

func TestClassifySubDomainGatedByRole(t *testing.T) {
	// Accounting vocabulary with no condominium context in the message.
	msg := "Posso debitar esse valor direto?"

	v := Classify(msg, nil)
	require.False(t, v.InScope)
	assert.True(t, v.Metadata.HasAccountingContext)
	assert.False(t, v.Metadata.HasCondoContext)

	// A manager role hint admits the same message.
	v = Classify(msg, &Hints{UserRole: "Síndico"})
	assert.True(t, v.InScope)
}

func TestClassifySubDomainGatedByContext(t *testing.T) {
	v := Classify("Posso debitar esse valor na conta do condomínio?", nil)

	assert.True(t, v.InScope)
	assert.True(t, v.Metadata.HasCondoContext)
}

func TestClassifyConfidenceLevels(t *testing.T) {
	tests := []struct {
		message    string
		confidence string
	}{
		{"A assembleia aprovou o orçamento do condomínio", ConfidenceHigh},
		{"Tem piscina?", ConfidenceMedium},
		{"xyzzy", ConfidenceLow},
	}

	for _, tt := range tests {
		v := Classify(tt.message, nil)
		assert.Equal(t, tt.confidence, v.Metadata.Confidence, "message %q", tt.message)
	}
}

func TestClassifyManagerRoleVariants(t *testing.T) {
	assert.False(t, (*Hints)(nil).managerRole())
	assert.False(t, (&Hints{UserRole: "visitante"}).managerRole())
	assert.True(t, (&Hints{UserRole: "sindico"}).managerRole())
	assert.True(t, (&Hints{UserRole: "Administrador"}).managerRole())
	assert.True(t, (&Hints{CondoType: "Comercial"}).managerRole())
}
