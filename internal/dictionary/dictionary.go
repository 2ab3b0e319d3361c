// Package dictionary provides the static lookup tables used by entity
// extraction and requirement profiling. The tables are immutable after
// construction and safe for concurrent use.
package dictionary

import "sync"

// Dictionary holds the domain lookup tables. Build it once via Default and
// pass it by reference; it is read-only configuration data, not mutable
// global state.
type Dictionary struct {
	// skills maps every matchable skill entry (canonical terms and their
	// abbreviation variants, all lower-case) to its canonical term.
	skills map[string]string

	positionKeywords    []string
	employerSuffixes    []string
	degreeKeywords      []string
	institutionSuffixes []string
	languages           []string
	certifications      []string
}

// skillVariants maps canonical skill terms to their known abbreviation
// variants. Both sides are matchable; matches always report the canonical
// term.
var skillVariants = map[string][]string{
	"navigation":                                   {},
	"bridge watchkeeping":                          {"watchkeeping"},
	"dynamic positioning":                          {"dp"},
	"global maritime distress and safety system":   {"gmdss"},
	"standards of training certification and watchkeeping": {"stcw"},
	"engine maintenance":                           {},
	"deck operations":                              {},
	"cargo handling":                               {},
	"mooring operations":                           {"mooring"},
	"safety management":                            {"safety"},
	"firefighting":                                 {"fire fighting"},
	"first aid":                                    {},
	"crowd management":                             {},
	"crisis management":                            {},
	"security awareness":                           {},
	"lifeboat operations":                          {"lifeboat"},
	"hospitality":                                  {},
	"guest services":                               {"guest service"},
	"housekeeping":                                 {},
	"food and beverage":                            {"f&b"},
	"culinary arts":                                {"culinary"},
	"bartending":                                   {},
	"food safety":                                  {"haccp"},
	"inventory management":                         {},
	"customer service":                             {},
	"point of sale":                                {"pos"},
	"electrical systems":                           {},
	"refrigeration":                                {},
	"plumbing":                                     {},
	"welding":                                      {},
	"hydraulics":                                   {},
	"radio communication":                          {},
	"chart plotting":                               {},
	"marine engineering":                           {},
	"environmental compliance":                     {"marpol"},
	"international safety management":              {"ism"},
	"ship security":                                {"isps"},
	"passenger safety":                             {},
	"tender operations":                            {},
	"provisioning":                                 {},
	"laundry operations":                           {"laundry"},
	"spa services":                                 {"spa"},
	"entertainment":                                {},
	"childcare":                                    {},
	"photography":                                  {},
	"retail sales":                                 {},
	"casino operations":                            {"casino"},
	"medical care":                                 {},
	"nursing":                                      {},
}

var positionKeywords = []string{
	"captain", "chief officer", "second officer", "third officer",
	"chief engineer", "second engineer", "third engineer", "electrician",
	"bosun", "deckhand", "able seaman", "ordinary seaman",
	"cruise director", "hotel director", "purser", "steward", "stewardess",
	"chef", "cook", "baker", "waiter", "waitress", "bartender", "barista",
	"housekeeper", "cabin attendant", "laundry attendant", "receptionist",
	"nurse", "doctor", "security officer", "shop assistant", "photographer",
	"entertainer", "musician", "dancer", "youth counselor", "spa therapist",
	"fitness instructor", "casino dealer",
}

var employerSuffixes = []string{
	"Cruise", "Cruises", "Line", "Lines", "Maritime", "Shipping",
	"Ferries", "Yachting", "Corp", "Corporation", "Ltd", "Inc", "Company",
	"Group", "Holdings",
}

var degreeKeywords = []string{
	"Bachelor", "Master", "PhD", "Diploma", "Certificate",
}

var institutionSuffixes = []string{
	"University", "College", "Institute", "School", "Academy",
}

var languages = []string{
	"english", "spanish", "french", "german", "italian", "portuguese",
	"dutch", "greek", "russian", "ukrainian", "polish", "romanian",
	"tagalog", "filipino", "hindi", "mandarin", "cantonese", "japanese",
	"korean", "indonesian", "thai", "vietnamese", "arabic", "turkish",
	"croatian", "serbian", "bulgarian", "norwegian", "swedish", "danish",
}

var certifications = []string{
	"stcw", "stcw 95", "stcw 2010", "basic safety training",
	"advanced firefighting", "medical first aid", "medical care",
	"crowd management", "crisis management", "security awareness",
	"designated security duties", "gmdss", "haccp", "food safety",
	"food hygiene", "silver service", "marpol", "ism", "isps",
	"eng1", "yellow fever", "seaman's book", "tanker endorsement",
	"dynamic positioning", "lifeboatman", "survival craft",
}

var (
	defaultDict     *Dictionary
	defaultDictOnce sync.Once
)

// Default returns the process-wide dictionary, building it on first use.
// Safe to call from concurrent screenings.
func Default() *Dictionary {
	defaultDictOnce.Do(func() {
		defaultDict = build()
	})
	return defaultDict
}

func build() *Dictionary {
	skills := make(map[string]string, len(skillVariants)*2)
	for canonical, variants := range skillVariants {
		skills[canonical] = canonical
		for _, v := range variants {
			skills[v] = canonical
		}
	}

	return &Dictionary{
		skills:              skills,
		positionKeywords:    positionKeywords,
		employerSuffixes:    employerSuffixes,
		degreeKeywords:      degreeKeywords,
		institutionSuffixes: institutionSuffixes,
		languages:           languages,
		certifications:      certifications,
	}
}

// Skills returns the entry-to-canonical skill table. Callers must not
// mutate the returned map.
func (d *Dictionary) Skills() map[string]string {
	return d.skills
}

// PositionKeywords returns the job-title keywords used for position capture.
func (d *Dictionary) PositionKeywords() []string {
	return d.positionKeywords
}

// EmployerSuffixes returns the organization-suffix keywords used for
// employer capture.
func (d *Dictionary) EmployerSuffixes() []string {
	return d.employerSuffixes
}

// DegreeKeywords returns the degree keywords used for education capture.
func (d *Dictionary) DegreeKeywords() []string {
	return d.degreeKeywords
}

// InstitutionSuffixes returns the institution-suffix keywords used for
// education capture.
func (d *Dictionary) InstitutionSuffixes() []string {
	return d.institutionSuffixes
}

// Languages returns the spoken-language lookup list.
func (d *Dictionary) Languages() []string {
	return d.languages
}

// Certifications returns the certification lookup list.
func (d *Dictionary) Certifications() []string {
	return d.certifications
}
