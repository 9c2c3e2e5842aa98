// Package catalog holds the fixed reference vocabularies (classes, subjects,
// terms) that enrollment and grading requests are validated against. The
// lists are loaded once at startup and injected where needed; they are never
// mutated afterwards.
package catalog

// Catalog is the set of valid classes, subjects and terms.
type Catalog struct {
	Classes  []string
	Subjects []string
	Terms    []string
}

// Default returns the built-in reference lists, used when the configuration
// does not override them.
func Default() *Catalog {
	return &Catalog{
		Classes: []string{"JSS1", "JSS2", "JSS3", "SS1", "SS2", "SS3"},
		Subjects: []string{
			"Mathematics",
			"English Language",
			"Basic Science",
			"Civic Education",
			"Social Studies",
			"Agricultural Science",
			"Business Studies",
			"Computer Studies",
			"Physics",
			"Chemistry",
			"Biology",
			"Economics",
			"Government",
			"Literature in English",
		},
		Terms: []string{"First Term", "Second Term", "Third Term"},
	}
}

// New builds a catalog from the given lists, falling back to the defaults
// for any empty list.
func New(classes, subjects, terms []string) *Catalog {
	def := Default()
	if len(classes) == 0 {
		classes = def.Classes
	}
	if len(subjects) == 0 {
		subjects = def.Subjects
	}
	if len(terms) == 0 {
		terms = def.Terms
	}
	return &Catalog{Classes: classes, Subjects: subjects, Terms: terms}
}

// ValidClass reports whether the class name is in the catalog.
func (c *Catalog) ValidClass(name string) bool {
	return contains(c.Classes, name)
}

// ValidSubject reports whether the subject name is in the catalog.
func (c *Catalog) ValidSubject(name string) bool {
	return contains(c.Subjects, name)
}

// ValidTerm reports whether the term name is in the catalog.
func (c *Catalog) ValidTerm(name string) bool {
	return contains(c.Terms, name)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
