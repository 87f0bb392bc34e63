package catalog

// Default returns the built-in movie catalog used when no external
// catalog source is configured.
func Default() *Catalog {
	return New([]Entry{
		{Title: "Forrest Gump", Moods: []string{"happy", "relaxed"}, Sentiments: []string{"positive", "neutral"}},
		{Title: "The Intouchables", Moods: []string{"happy", "relaxed"}, Sentiments: []string{"positive"}},
		{Title: "Guardians of the Galaxy", Moods: []string{"happy"}, Sentiments: []string{"positive"}},
		{Title: "La La Land", Moods: []string{"happy", "relaxed"}, Sentiments: []string{"positive"}},
		{Title: "Schindler's List", Moods: []string{"sad"}, Sentiments: []string{"negative"}},
		{Title: "The Pursuit of Happyness", Moods: []string{"sad", "happy"}, Sentiments: []string{"positive", "negative"}},
		{Title: "Lost in Translation", Moods: []string{"relaxed"}, Sentiments: []string{"neutral"}},
		{Title: "Amélie", Moods: []string{"relaxed", "happy"}, Sentiments: []string{"positive"}},
		{Title: "The Notebook", Moods: []string{"sad"}, Sentiments: []string{"negative", "positive"}},
		{Title: "Titanic", Moods: []string{"sad"}, Sentiments: []string{"negative"}},
		{Title: "Up", Moods: []string{"happy"}, Sentiments: []string{"positive"}},
		{Title: "Inside Out", Moods: []string{"happy", "relaxed"}, Sentiments: []string{"positive", "neutral"}},
		{Title: "Blue Valentine", Moods: []string{"sad"}, Sentiments: []string{"negative"}},
		{Title: "Pride & Prejudice", Moods: []string{"relaxed"}, Sentiments: []string{"neutral", "positive"}},
		{Title: "Moonrise Kingdom", Moods: []string{"relaxed", "happy"}, Sentiments: []string{"positive"}},
		{Title: "Chef", Moods: []string{"happy", "relaxed"}, Sentiments: []string{"positive"}},
	})
}
