package insights

// phrases is one language's fixed phrase table. All language dependence in
// the generator is table selection; no logic branches on the tag.
type phrases struct {
	totalMessagesTitle string
	totalMessagesDesc  string // count
	durationTitle      string
	durationDesc       string // days, start, end
	avgActivityTitle   string
	avgActivityDesc    string // avg
	mostActiveTitle    string
	mostActiveDesc     string // author, count, percentage
	participationTitle string
	participationDesc  string // count, mostActive
	peakHourTitle      string
	peakHourDesc       string // hour
	peakDayTitle       string
	peakDayDesc        string // day
	trendTitle         string
	trendDesc          string // trend
	topWordTitle       string
	topWordDesc        string // word, count
	avgLengthTitle     string
	avgLengthDesc      string // avg
	mediaTitle         string
	mediaDesc          string // count, percentage
	styleTitle         string
	styleDesc          string // count, activity

	trendIncreasing string
	trendDecreasing string
	trendStable     string
	highlyActive    string
	moderatelyActive string
	lightlyActive   string

	dateLayout string
	weekdays   [7]string // Monday first
}

var phraseTables = map[string]phrases{
	"en": {
		totalMessagesTitle: "Total Messages",
		totalMessagesDesc:  "Your conversation contains %s messages",
		durationTitle:      "Conversation Duration",
		durationDesc:       "The conversation spans %d days (from %s to %s)",
		avgActivityTitle:   "Average Activity",
		avgActivityDesc:    "On average, %.1f messages are sent per day",
		mostActiveTitle:    "Most Active Participant",
		mostActiveDesc:     "%s sent the most messages (%s messages, %.1f%% of total)",
		participationTitle: "Participation Balance",
		participationDesc:  "Messages are distributed among %d participants, with %s messages from the most active member",
		peakHourTitle:      "Peak Conversation Hour",
		peakHourDesc:       "Most messages are sent around %d:00 (hour %d)",
		peakDayTitle:       "Most Active Day",
		peakDayDesc:        "%s is the most active day of the week",
		trendTitle:         "Activity Trend",
		trendDesc:          "Conversation activity is %s over time",
		topWordTitle:       "Most Used Word",
		topWordDesc:        "'%s' is the most frequently used word (appears %d times)",
		avgLengthTitle:     "Average Message Length",
		avgLengthDesc:      "Messages average %.0f characters in length",
		mediaTitle:         "Media Sharing",
		mediaDesc:          "%s media messages were shared (%.1f%% of all messages)",
		styleTitle:         "Conversation Style",
		styleDesc:          "With %s messages, this is a %s active conversation",

		trendIncreasing:  "increasing",
		trendDecreasing:  "decreasing",
		trendStable:      "stable",
		highlyActive:     "highly",
		moderatelyActive: "moderately",
		lightlyActive:    "lightly",

		dateLayout: "2006-01-02",
		weekdays:   [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	},
	"it": {
		totalMessagesTitle: "Messaggi Totali",
		totalMessagesDesc:  "La tua conversazione contiene %s messaggi",
		durationTitle:      "Durata Conversazione",
		durationDesc:       "La conversazione copre %d giorni (dal %s al %s)",
		avgActivityTitle:   "Attività Media",
		avgActivityDesc:    "In media, %.1f messaggi vengono inviati al giorno",
		mostActiveTitle:    "Partecipante Più Attivo",
		mostActiveDesc:     "%s ha inviato più messaggi (%s messaggi, %.1f%% del totale)",
		participationTitle: "Bilanciamento Partecipazione",
		participationDesc:  "I messaggi sono distribuiti tra %d partecipanti, con %s messaggi dal membro più attivo",
		peakHourTitle:      "Ora di Picco",
		peakHourDesc:       "La maggior parte dei messaggi viene inviata intorno alle %d:00 (ora %d)",
		peakDayTitle:       "Giorno Più Attivo",
		peakDayDesc:        "%s è il giorno più attivo della settimana",
		trendTitle:         "Tendenza Attività",
		trendDesc:          "L'attività della conversazione è %s nel tempo",
		topWordTitle:       "Parola Più Usata",
		topWordDesc:        "'%s' è la parola più frequente (appare %d volte)",
		avgLengthTitle:     "Lunghezza Media Messaggi",
		avgLengthDesc:      "I messaggi hanno in media %.0f caratteri",
		mediaTitle:         "Condivisione Media",
		mediaDesc:          "%s messaggi media sono stati condivisi (%.1f%% di tutti i messaggi)",
		styleTitle:         "Stile Conversazione",
		styleDesc:          "Con %s messaggi, questa è una conversazione %s attiva",

		trendIncreasing:  "in aumento",
		trendDecreasing:  "in diminuzione",
		trendStable:      "stabile",
		highlyActive:     "molto",
		moderatelyActive: "moderatamente",
		lightlyActive:    "poco",

		dateLayout: "02/01/2006",
		weekdays:   [7]string{"Lunedì", "Martedì", "Mercoledì", "Giovedì", "Venerdì", "Sabato", "Domenica"},
	},
}

// tableFor selects a phrase table, defaulting to English for unrecognized
// tags.
func tableFor(language string) phrases {
	if t, ok := phraseTables[language]; ok {
		return t
	}
	return phraseTables["en"]
}
