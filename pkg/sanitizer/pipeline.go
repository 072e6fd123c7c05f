package sanitizer

type Strategy func(string) string

// Stage is a Strategy with a name, addressable through Pipeline.Stage.
type Stage struct {
	Name     string
	Strategy Strategy
}

type Pipeline []Stage

func (p Pipeline) Apply(s string) string {
	for _, stage := range p {
		s = stage.Strategy(s)
	}
	return s
}

// Stage returns the stage with the given name.
func (p Pipeline) Stage(name string) (Stage, bool) {
	for _, stage := range p {
		if stage.Name == name {
			return stage, true
		}
	}
	return Stage{}, false
}

func (p Pipeline) Names() []string {
	names := make([]string, 0, len(p))
	for _, stage := range p {
		names = append(names, stage.Name)
	}
	return names
}
