package gaussian

// Job is a Gaussian 16 job as read from a job file. It has not been checked;
// Validate turns it into a ValidJob that can be rendered.
//
// A typical job file looks like:
//
//	mem: 134GB
//	cpu: 0-39
//	gpu: ~
//	checkpoint: test.chk
//	key_words: "#p BP86/Def2svp/W06 SCF=XQC"
//	title: title card
//	charge: 0
//	multiplicity: 1
type Job struct {
	Mem          string  `yaml:"mem" json:"mem" jsonschema:"description=Memory for the job as digits followed by KB/MB/GB/TB (e.g. 134GB)."`
	CPU          string  `yaml:"cpu" json:"cpu" jsonschema:"description=CPU range starting with digit-digit (e.g. 0-39)."`
	GPU          *string `yaml:"gpu,omitempty" json:"gpu,omitempty" jsonschema:"oneof_type=string;null,description=Optional GPU=CPU controller assignment (e.g. 0-3=0-3). Null or omitted for a CPU-only job."`
	Checkpoint   string  `yaml:"checkpoint" json:"checkpoint" jsonschema:"description=Checkpoint file path written by g16."`
	KeyWords     string  `yaml:"key_words" json:"key_words" jsonschema:"description=Route section including the # marker (e.g. #p BP86/Def2svp SCF=XQC)."`
	Title        string  `yaml:"title" json:"title" jsonschema:"description=Title card."`
	Charge       int64   `yaml:"charge" json:"charge" jsonschema:"description=Total molecular charge."`
	Multiplicity uint64  `yaml:"multiplicity" json:"multiplicity" jsonschema:"description=Spin multiplicity."`
}

// ValidJob is a Job that passed Validate. Its zero value is not usable;
// the only way to obtain one is through Validate.
type ValidJob struct {
	job Job
}

// Job returns a copy of the validated fields.
func (v ValidJob) Job() Job {
	j := v.job
	if v.job.GPU != nil {
		gpu := *v.job.GPU
		j.GPU = &gpu
	}
	return j
}

// HasGPU reports whether the job carries a GPU assignment.
func (v ValidJob) HasGPU() bool {
	return v.job.GPU != nil
}
