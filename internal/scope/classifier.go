// Package scope decides whether an inbound message belongs to the
// condominium-management domain before any generation work is spent on it.
// Classification is a pure function over static pattern tables: same message
// and hints always produce the same verdict.
package scope

import "strings"

// RefusalMessage is returned verbatim for out-of-scope questions.
const RefusalMessage = "Olá! Sou o Sub, especialista em gestão condominial e no sistema Síndico Pro. 😊\n\n" +
	"Sua pergunta está fora da minha área de atuação. Posso te ajudar com gestão condominial, " +
	"sistema Síndico Pro, legislação condominial e administração financeira. " +
	"Como posso te ajudar com seu condomínio?"

// Confidence levels, derived from the total keyword score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Hints carries optional caller-supplied context about who is asking.
type Hints struct {
	UserRole  string `json:"user_role,omitempty"`
	CondoType string `json:"condo_type,omitempty"`
}

// managerRole reports whether the hints identify a condominium manager or
// administrator, which is enough to admit sub-domain questions on its own.
func (h *Hints) managerRole() bool {
	if h == nil {
		return false
	}
	role := strings.ToLower(h.UserRole)
	condoType := strings.ToLower(h.CondoType)
	return strings.Contains(role, "sindico") ||
		strings.Contains(role, "síndico") ||
		strings.Contains(role, "condominial") ||
		strings.Contains(role, "administrador") ||
		strings.Contains(condoType, "condo") ||
		strings.Contains(condoType, "residencial") ||
		strings.Contains(condoType, "comercial")
}

// Metadata records the signals behind a verdict. It is advisory: confidence
// and scores never alter the in/out decision retroactively.
type Metadata struct {
	CondoScore             int    `json:"condo_score"`
	ProductScore           int    `json:"product_score"`
	TotalScore             int    `json:"total_score"`
	SystemQuestion         bool   `json:"system_question"`
	HasCondoContext        bool   `json:"has_condo_context"`
	HasArchitectureContext bool   `json:"has_architecture_context"`
	HasLegalContext        bool   `json:"has_legal_context"`
	HasAccountingContext   bool   `json:"has_accounting_context"`
	Confidence             string `json:"confidence"`
	MatchedPattern         string `json:"matched_pattern,omitempty"`
}

// Verdict is the classification outcome. Refusal is populated only when the
// message is out of scope.
type Verdict struct {
	InScope  bool     `json:"in_scope"`
	Refusal  string   `json:"refusal,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Classify decides whether a message is within the assistant's domain.
//
// Evaluation order: the rejection patterns run first and short-circuit unless
// an override token shows the question is about the condominium after all.
// Otherwise keyword scores and sub-domain flags are combined permissively:
// any single qualifying signal admits the message.
func Classify(message string, hints *Hints) Verdict {
	lower := strings.ToLower(message)

	for _, p := range outOfScopePatterns {
		if !p.re.MatchString(lower) {
			continue
		}
		if containsAny(lower, overrideTokens) {
			// Condominium context overrides the rejection.
			break
		}
		return Verdict{
			Refusal: RefusalMessage,
			Metadata: Metadata{
				Confidence:     ConfidenceHigh,
				MatchedPattern: p.Category,
			},
		}
	}

	condoScore := countMatches(lower, condoKeywords)
	productScore := countMatches(lower, productKeywords)
	totalScore := condoScore + productScore

	systemQuestion := containsAny(lower, questionWords)
	hasCondoContext := containsAny(lower, contextWords)
	hasArchitecture := containsAny(lower, architectureWords)
	hasLegal := containsAny(lower, legalWords)
	hasAccounting := containsAny(lower, accountingWords)
	roleContext := hints.managerRole()

	inScope := totalScore >= 1 ||
		(systemQuestion && productScore >= 1) ||
		(hasArchitecture && (hasCondoContext || roleContext)) ||
		(hasLegal && (hasCondoContext || roleContext)) ||
		(hasAccounting && (hasCondoContext || roleContext))

	meta := Metadata{
		CondoScore:             condoScore,
		ProductScore:           productScore,
		TotalScore:             totalScore,
		SystemQuestion:         systemQuestion,
		HasCondoContext:        hasCondoContext,
		HasArchitectureContext: hasArchitecture,
		HasLegalContext:        hasLegal,
		HasAccountingContext:   hasAccounting,
		Confidence:             confidenceFor(totalScore),
	}

	if inScope {
		return Verdict{InScope: true, Metadata: meta}
	}
	return Verdict{Refusal: RefusalMessage, Metadata: meta}
}

func confidenceFor(totalScore int) string {
	switch {
	case totalScore >= 2:
		return ConfidenceHigh
	case totalScore >= 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func countMatches(s string, keywords []string) int {
	n := 0
	for _, k := range keywords {
		if strings.Contains(s, k) {
			n++
		}
	}
	return n
}
