package gaussian

import (
	"fmt"
	"io"
	"strings"
)

// Render returns the g16 input for the job. A job with a GPU assignment gets
// a %Gpu line between %Cpu and %Check; no other field changes the layout.
//
// Layout (no trailing newline):
//
//	%Mem=<mem>
//	%Cpu=<cpu>
//	[%Gpu=<gpu>]
//	%Check=<checkpoint>
//	<key words>
//
//	 <title>
//
//	<charge> <multiplicity>
func (v ValidJob) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%%Mem=%s\n", v.job.Mem)
	fmt.Fprintf(&b, "%%Cpu=%s\n", v.job.CPU)
	if v.job.GPU != nil {
		fmt.Fprintf(&b, "%%Gpu=%s\n", *v.job.GPU)
	}
	fmt.Fprintf(&b, "%%Check=%s\n", v.job.Checkpoint)
	fmt.Fprintf(&b, "%s\n\n %s\n\n%d %d", v.job.KeyWords, v.job.Title, v.job.Charge, v.job.Multiplicity)
	return b.String()
}

// String implements fmt.Stringer.
func (v ValidJob) String() string {
	return v.Render()
}

// WriteTo writes the rendered input to w.
func (v ValidJob) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.Render())
	return int64(n), err
}
