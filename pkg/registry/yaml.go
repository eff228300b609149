package registry

// yamlPart names a part's label and the solver that computes it.
type yamlPart struct {
	Label  string `yaml:"label"`
	Solver string `yaml:"solver"`
}

// yamlDay is the intermediate struct for one day entry.
type yamlDay struct {
	Day   int       `yaml:"day"`
	Title string    `yaml:"title,omitempty"`
	Input string    `yaml:"input"`
	One   *yamlPart `yaml:"one,omitempty"`
	Two   *yamlPart `yaml:"two,omitempty"`
}

// yamlDaysFile is the top-level structure of a day table.
type yamlDaysFile struct {
	Days []yamlDay `yaml:"days"`
}
