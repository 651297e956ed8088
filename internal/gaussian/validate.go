package gaussian

import "regexp"

var (
	memPattern      = regexp.MustCompile(`(?i)\d+(KB|MB|GB|TB)`)
	cpuPattern      = regexp.MustCompile(`^[0-9]-[0-9]`)
	keyWordsPattern = regexp.MustCompile(`(?i)#[a-z]`)
)

// gpuGrammar is one accepted shape of a %Gpu assignment.
type gpuGrammar struct {
	name    string
	pattern *regexp.Regexp
}

// The three shapes overlap on some inputs. A GPU string is accepted only
// when exactly one of them matches.
var gpuGrammars = []gpuGrammar{
	{name: "list", pattern: regexp.MustCompile(`^[0-9](,[0-9])+=[0-9](,[0-9])+`)},
	{name: "range", pattern: regexp.MustCompile(`\d*-\d+=\d*-\d+`)},
	{name: "pair", pattern: regexp.MustCompile(`^\d=\d`)},
}

// Validate checks mem, cpu, key words and, when present, gpu in that order
// and returns the first violation as a *ValidationError. The job itself is
// not modified.
//
// Key words are only checked for a route marker (# followed by a letter);
// g16 rejects bad keywords itself at run time.
func Validate(job Job) (ValidJob, error) {
	if !memPattern.MatchString(job.Mem) {
		return ValidJob{}, &ValidationError{Kind: InvalidMemory, Value: job.Mem}
	}
	if !cpuPattern.MatchString(job.CPU) {
		return ValidJob{}, &ValidationError{Kind: InvalidCPURange, Value: job.CPU}
	}
	if !keyWordsPattern.MatchString(job.KeyWords) {
		return ValidJob{}, &ValidationError{Kind: InvalidKeywords, Value: job.KeyWords}
	}
	if job.GPU != nil {
		if matches := GPUShapes(*job.GPU); len(matches) != 1 {
			return ValidJob{}, &ValidationError{Kind: InvalidGPU, Value: *job.GPU}
		}
	}

	// ValidJob owns its copy of the GPU string.
	return ValidJob{job: ValidJob{job: job}.Job()}, nil
}

// GPUShapes returns the names of the GPU grammars ("list", "range", "pair")
// that gpu matches.
func GPUShapes(gpu string) []string {
	var names []string
	for _, g := range gpuGrammars {
		if g.pattern.MatchString(gpu) {
			names = append(names, g.name)
		}
	}
	return names
}
