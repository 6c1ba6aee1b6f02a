package nlp

// Listas fijas de palabras para filtrado y ajuste de sentimiento. Se cargan una
// vez como sets; ninguna muta despues del init.

func makeSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

var stopWords = makeSet(
	"a", "about", "after", "again", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "between",
	"both", "but", "by", "can", "could", "did", "do", "does", "doing", "down",
	"during", "each", "few", "for", "from", "further", "had", "has", "have",
	"having", "he", "her", "here", "hers", "him", "his", "how", "however", "i",
	"if", "in", "into", "is", "it", "its", "itself", "just", "me", "more",
	"most", "my", "myself", "of", "off", "on", "once", "only", "or", "other",
	"our", "ours", "out", "over", "own", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "then", "there",
	"these", "they", "this", "those", "though", "through", "to", "too", "under",
	"until", "up", "very", "was", "we", "were", "what", "when", "where",
	"which", "while", "who", "whom", "why", "will", "with", "would", "yet",
	"you", "your", "yours",
)

// negators son negadores genericos; amortiguan polaridad positiva y bloquean
// el booster de logros.
var negators = makeSet(
	"not", "no", "never", "cannot", "none", "nothing", "neither", "nor",
	"hardly", "barely", "without",
)

// positiveWords participa en dos reglas: el override "not <positivo>" y el
// rechazo de topicos positivos cuando el animo es negativo.
var positiveWords = makeSet(
	"proud", "good", "great", "happy", "glad", "motivated", "excited", "love",
	"loved", "win", "wins", "awesome", "amazing", "confident", "energized",
	"grateful", "strong", "better", "best", "joy", "accomplished", "productive",
	"calm", "focused", "progress",
)

// hardNegatives fuerza la polaridad de la clausula a -0.6 como maximo.
var hardNegatives = makeSet(
	"hate", "hated", "awful", "terrible", "horrible", "worst", "miserable",
	"depressed", "hopeless", "useless", "worthless", "exhausted", "damn",
	"shit", "fuck", "fucking", "crap", "sucks", "sucked",
)

// completionWords activa el booster de logros (+0.2) si no hay negadores.
var completionWords = makeSet(
	"finished", "completed", "done", "proud", "streak", "accomplished",
	"achieved", "nailed", "crushed", "showed", "managed",
)

// badTopics nunca sirven como topico de un template: fragmentos de
// contracciones, verbos genericos, palabras de tiempo y profanidad.
var badTopics = makeSet(
	// fragmentos de contracciones
	"don", "didn", "doesn", "isn", "wasn", "weren", "won", "couldn", "wouldn",
	"shouldn", "aren", "ain", "hasn", "haven", "hadn", "shan",
	// verbos y sustantivos genericos
	"feel", "feels", "felt", "feeling", "get", "got", "gets", "getting",
	"going", "goes", "went", "gonna", "make", "made", "want", "wanted",
	"need", "needed", "think", "thought", "know", "knew", "really", "thing",
	"things", "stuff", "lot", "bit",
	// palabras de tiempo genericas
	"today", "yesterday", "tomorrow", "tonight", "morning", "afternoon",
	"evening", "day", "days", "week", "weeks", "time", "now",
	// profanidad
	"damn", "shit", "fuck", "fucking", "crap", "ass", "bitch",
)

// IsStopWord reporta si el token esta en la lista de stop-words.
func IsStopWord(token string) bool { return stopWords[token] }

// IsNegator reporta si el token es un negador generico.
func IsNegator(token string) bool { return negators[token] }

// IsPositiveWord reporta si el token pertenece al set fijo de palabras positivas.
func IsPositiveWord(token string) bool { return positiveWords[token] }

// IsBadTopic reporta si el token esta bloqueado como topico.
func IsBadTopic(token string) bool { return badTopics[token] }
