package nlp

// lexiconEntry guarda la valoracion de una palabra: polaridad en [-1, 1] y
// subjetividad en [0, 1].
type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon es el lexicon base de ingles. El score de una oracion es el
// promedio de las palabras que matchean; sin matches, la oracion puntua 0/0.
var sentimentLexicon = map[string]lexiconEntry{
	// positivas
	"proud":        {0.8, 0.8},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"happy":        {0.8, 0.9},
	"glad":         {0.7, 0.8},
	"motivated":    {0.6, 0.7},
	"excited":      {0.7, 0.8},
	"love":         {0.5, 0.6},
	"loved":        {0.7, 0.8},
	"win":          {0.8, 0.6},
	"awesome":      {0.9, 0.9},
	"amazing":      {0.8, 0.9},
	"confident":    {0.6, 0.7},
	"energized":    {0.6, 0.7},
	"grateful":     {0.7, 0.8},
	"strong":       {0.5, 0.5},
	"better":       {0.5, 0.5},
	"best":         {0.9, 0.7},
	"joy":          {0.8, 0.8},
	"accomplished": {0.6, 0.6},
	"productive":   {0.5, 0.5},
	"calm":         {0.3, 0.6},
	"focused":      {0.4, 0.5},
	"progress":     {0.4, 0.4},
	"nice":         {0.6, 0.9},
	"fun":          {0.5, 0.6},
	"easy":         {0.4, 0.8},
	"energetic":    {0.5, 0.6},
	"consistent":   {0.3, 0.4},

	// negativas
	"rough":       {-0.5, 0.6},
	"bad":         {-0.7, 0.65},
	"sad":         {-0.6, 0.9},
	"tired":       {-0.4, 0.6},
	"hard":        {-0.3, 0.5},
	"difficult":   {-0.5, 0.6},
	"stressed":    {-0.6, 0.8},
	"stressful":   {-0.6, 0.8},
	"anxious":     {-0.6, 0.8},
	"angry":       {-0.7, 0.9},
	"upset":       {-0.6, 0.8},
	"fail":        {-0.5, 0.6},
	"failed":      {-0.5, 0.6},
	"failure":     {-0.6, 0.7},
	"lonely":      {-0.5, 0.8},
	"overwhelmed": {-0.6, 0.8},
	"frustrated":  {-0.6, 0.8},
	"boring":      {-0.5, 0.7},
	"annoying":    {-0.6, 0.8},
	"worried":     {-0.5, 0.8},
	"guilty":      {-0.5, 0.8},
	"lazy":        {-0.4, 0.7},
	"weak":        {-0.4, 0.6},
	"slow":        {-0.3, 0.4},

	// fuertes (tambien en hardNegatives)
	"hate":      {-0.8, 0.9},
	"hated":     {-0.8, 0.9},
	"awful":     {-0.9, 0.9},
	"terrible":  {-0.9, 0.9},
	"horrible":  {-0.9, 0.9},
	"worst":     {-0.9, 0.9},
	"miserable": {-0.8, 0.9},
	"depressed": {-0.8, 0.9},
	"hopeless":  {-0.9, 0.9},
	"useless":   {-0.7, 0.8},
	"worthless": {-0.8, 0.9},
	"exhausted": {-0.6, 0.8},
}

// scoreSentence calcula polaridad y subjetividad base de un texto como promedio
// de las entradas del lexicon que matchean sus tokens. Es el scorer a nivel de
// oracion sobre el que trabaja el ajuste por clausulas.
func scoreSentence(text string) (polarity, subjectivity float64) {
	var polSum, subjSum float64
	matches := 0
	for _, token := range tokenize(text) {
		entry, ok := sentimentLexicon[token]
		if !ok {
			continue
		}
		polSum += entry.polarity
		subjSum += entry.subjectivity
		matches++
	}
	if matches == 0 {
		return 0, 0
	}
	return polSum / float64(matches), subjSum / float64(matches)
}
