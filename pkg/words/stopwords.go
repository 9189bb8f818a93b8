package words

// stopwords is the fixed bilingual (Italian + English) function-word set
// excluded from ranking. Kept as data: adding a language never touches
// control flow.
var stopwords = map[string]bool{}

func init() {
	for _, w := range stopwordList {
		stopwords[w] = true
	}
}

var stopwordList = []string{
	// Italian articles
	"il", "lo", "la", "i", "gli", "le", "un", "uno", "una", "dei", "degli", "delle",
	"del", "della", "dello", "dell",
	// Italian prepositions
	"di", "a", "da", "in", "con", "su", "per", "tra", "fra", "sul", "sulla", "sull",
	"sulle", "sugli", "sui", "nel", "nella", "nelle", "negli", "nei", "nello", "nell",
	// Italian pronouns and interrogatives
	"che", "chi", "cosa", "come", "dove", "quando", "perché", "quello", "questa",
	"questo", "quelli", "quelle", "quanto", "quanta", "quanti", "quante", "cui",
	"quale", "quali",
	// Italian verbs, common forms
	"è", "sono", "sei", "siamo", "siete", "ho", "hai", "ha", "abbiamo", "avete",
	"hanno", "essere", "avere", "fare", "dire", "andare", "venire", "stare", "dare",
	"sapere", "volere", "dovere", "potere",
	// Italian clitics and common words
	"mi", "ti", "ci", "vi", "si", "ne",
	"non", "e", "o", "ma", "però", "anche", "pure", "solo", "soli", "sola", "sole",
	"molto", "molta", "molti", "molte", "più", "meno", "tanto", "tanta", "tanti",
	"tante", "tutto", "tutta", "tutti", "tutte", "altro", "altra", "altri", "altre",
	"ogni", "ognuno",
	// English
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of",
	"with", "by", "from", "as", "is", "was", "are", "this", "that", "these",
	"those", "what", "which", "who", "where", "when", "why", "how", "am", "were",
	"be", "been", "being", "have", "has", "had", "having", "me", "you", "he",
	"she", "it", "we", "they", "him", "her", "us", "them", "no", "not", "never",
	"neither", "nor", "also", "too", "either", "very", "much", "many", "more",
	"most", "less", "least",
	// Media marker remnants
	"media", "omitted",
}
