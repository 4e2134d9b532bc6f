package detector

// PolishLocale is the locale registered by New.
const PolishLocale = "pl-PL"

// PolishDiacritics holds the Polish diacritical letters in both cases.
const PolishDiacritics = "ąćęłńóśźżĄĆĘŁŃÓŚŹŻ"

var polishCandidates = []string{"UTF-8", "ISO-8859-2", "WINDOWS-1250"}

// Score is the outcome of decoding a buffer with one candidate encoding.
type Score struct {
	Encoding string
	Count    int   // diacritics found in the decoded text
	Err      error // decode failure, Count is 0 when set
}

// Detector picks the most plausible encoding for a locale.
type Detector struct {
	registry        *Registry
	defaultEncoding string
}

// New returns a Detector that falls back to defaultEncoding and has the
// Polish locale pre-registered.
func New(defaultEncoding string) *Detector {
	r := NewRegistry()
	r.RegisterCandidates(PolishLocale, polishCandidates)
	r.RegisterDiacritics(PolishLocale, PolishDiacritics)
	return NewWithRegistry(defaultEncoding, r)
}

// NewWithRegistry returns a Detector backed by r. Nothing is pre-registered.
func NewWithRegistry(defaultEncoding string, r *Registry) *Detector {
	return &Detector{registry: r, defaultEncoding: defaultEncoding}
}

// Registry returns the registry the detector reads from.
func (d *Detector) Registry() *Registry { return d.registry }

// DefaultEncoding returns the fallback encoding.
func (d *Detector) DefaultEncoding() string { return d.defaultEncoding }

// AddCandidatesForLocale sets the ordered candidate encodings for locale.
func (d *Detector) AddCandidatesForLocale(locale string, encodings []string) {
	d.registry.RegisterCandidates(locale, encodings)
}

// AddDiacriticsForLocale sets the diacritic characters for locale.
func (d *Detector) AddDiacriticsForLocale(locale string, chars string) {
	d.registry.RegisterDiacritics(locale, chars)
}

// Scores decodes data with every candidate of locale, in list order, and
// counts diacritics in each result. Decode failures are reported in
// Score.Err and never returned as an error.
func (d *Detector) Scores(locale string, data []byte) ([]Score, error) {
	e := d.registry.lookup(locale)
	if !e.registered() {
		return nil, &UnregisteredLocaleError{Locale: locale}
	}

	scores := make([]Score, 0, len(e.candidates))
	for _, name := range e.candidates {
		s := Score{Encoding: name}
		text, err := Decode(name, data)
		if err != nil {
			s.Err = err
		} else {
			s.Count = e.matcher.Count(text)
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// Detect returns the candidate encoding of locale whose decoding of data
// holds the most diacritics. Ties go to the earlier candidate. When no
// candidate finds any diacritic the default encoding is returned.
func (d *Detector) Detect(locale string, data []byte) (string, error) {
	scores, err := d.Scores(locale, data)
	if err != nil {
		return "", err
	}

	best := -1
	for i, s := range scores {
		if best < 0 || s.Count > scores[best].Count {
			best = i
		}
	}
	if best < 0 || scores[best].Count == 0 {
		return d.defaultEncoding, nil
	}
	return scores[best].Encoding, nil
}
