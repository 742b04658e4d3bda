package sentiment

// DefaultPositive and DefaultNegative cover the registry languages written in Latin script.
// Multi-word entries are matched as a whole.
var DefaultPositive = []string{
	"good", "great", "excellent", "happy", "love", "nice", "wonderful", "thank you", "thanks", "beautiful",
	"amazing", "glad", "perfect", "enjoy", "friendly", "best",
	"bon", "bonne", "super", "heureux", "heureuse", "merci", "magnifique", "parfait", "adore", "génial",
	"gut", "toll", "danke", "glücklich", "schön", "wunderbar", "perfekt", "liebe",
	"bueno", "buena", "gracias", "feliz", "excelente", "hermoso", "perfecto", "encanta", "genial",
}

var DefaultNegative = []string{
	"bad", "terrible", "awful", "hate", "sad", "angry", "horrible", "worst", "poor", "sorry",
	"problem", "wrong", "annoying", "disappointed", "ugly", "broken",
	"mauvais", "mauvaise", "triste", "déteste", "nul", "horrible", "problème", "fâché", "déçu",
	"schlecht", "traurig", "hasse", "schrecklich", "wütend", "problem", "enttäuscht",
	"malo", "mala", "triste", "odio", "terrible", "enojado", "problema", "horrible", "peor",
}
