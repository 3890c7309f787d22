package patterns

// Section headings. The generator writes French or English depending on the prompt,
// so every table carries both.
var (
	OverallScore = NewHeading("overall_score",
		"score global", "score total", "note globale", "note finale", "score final",
		"overall score", "global score", "total score", "final score")

	SectionScores = NewHeading("section_scores",
		"analyse par section", "analyse détaillée", "scores par section", "détail des scores",
		"évaluation par section", "section scores", "section analysis", "score breakdown",
		"detailed scores")

	Strengths = NewHeading("strengths",
		"points forts", "forces", "atouts", "strengths", "strong points")

	Weaknesses = NewHeading("weaknesses",
		"points faibles", "points à améliorer", "faiblesses", "weaknesses", "weak points",
		"areas for improvement")

	Recommendations = NewHeading("recommendations",
		"recommandations", "conseils", "suggestions d'amélioration", "recommendations",
		"advice")

	Keywords = NewHeading("keywords",
		"mots-clés", "mots-clefs", "keywords", "key words")

	ImprovementsHeading = NewHeading("improvements",
		"améliorations prioritaires", "axes d'amélioration", "améliorations", "priority improvements",
		"improvements", "priority actions")

	CorrectionsHeading = NewHeading("corrections",
		"corrections", "tableau des corrections", "erreurs détectées", "erreurs",
		"detected errors", "errors", "error table")

	CorrectedText = NewHeading("corrected_text",
		"texte corrigé", "texte entièrement corrigé", "version corrigée", "corrected text",
		"fully corrected text", "corrected version")
)

// SectionHeadings lists the top-level sections. A section body also ends at a heading
// naming another of these, whatever its level.
var SectionHeadings = []Heading{
	OverallScore, SectionScores, Strengths, Weaknesses, Recommendations,
	Keywords, ImprovementsHeading, CorrectionsHeading, CorrectedText,
}

// Keyword subsets, usable both as headings ("### Mots-clés manquants") and as inline labels
// ("**Manquants** : ...").
var (
	KeywordsFound = keywordSubset("found",
		"trouvés", "présents", "identifiés", "found", "present", "matched")

	KeywordsMissing = keywordSubset("missing",
		"manquants", "absents", "à ajouter", "missing", "absent")

	KeywordsSuggestions = keywordSubset("suggestions",
		"suggérés", "suggestions", "recommandés", "suggested", "recommended")
)

// KeywordSubset holds the forms one keyword list can take. Heading only accepts the
// qualified phrasing ("Mots-clés manquants") and may appear anywhere; Nested also accepts the
// bare word and only applies below the keywords heading. Label and QualifiedLabel follow
// the same split for inline "Manquants : ..." lines.
type KeywordSubset struct {
	Heading        Heading
	Nested         Heading
	Label          Label
	QualifiedLabel Label
}

func keywordSubset(name string, words ...string) KeywordSubset {
	qualified := make([]string, 0, len(words)*4)
	for _, w := range words {
		qualified = append(qualified, "mots-clés "+w, "mots-clefs "+w, "keywords "+w, w+" keywords")
	}
	all := append(qualified[:len(qualified):len(qualified)], words...)
	return KeywordSubset{
		Heading: NewHeading("keywords_"+name, qualified...),
		Nested:  NewHeading("keywords_"+name, all...),
		Label:   NewLabel("keywords_"+name, all...),

		QualifiedLabel: NewLabel("keywords_"+name, qualified...),
	}
}

// Section-score labels.
var (
	OverallScoreLabel = NewLabel("overall_score", OverallScore.Synonyms...)

	StructureLabel = NewLabel("structure",
		"structure", "mise en forme", "formatting", "layout")

	ContentLabel = NewLabel("content",
		"contenu", "content")

	SkillsLabel = NewLabel("skills",
		"compétences", "skills")

	ExperienceLabel = NewLabel("experience",
		"expériences", "expérience", "parcours", "experience")

	HookLabel = NewLabel("hook",
		"accroche", "introduction", "hook", "opening")

	CallToActionLabel = NewLabel("call_to_action",
		"appel à l'action", "conclusion", "call to action", "call-to-action", "closing")
)
