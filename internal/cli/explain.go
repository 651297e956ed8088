package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const explainText = `gauss: Gaussian 16 job input preparation

PURPOSE
  gauss turns a small YAML job file into the input g16 reads on standard
  input. Every field with a grammar is checked first, and the first bad field
  is reported with an example of an accepted value. Only valid jobs are
  rendered.

COMMANDS
  validate    Check one or more job files. Prints "valid" or the first error
              of each file. Exits non-zero if any file is invalid.
  render      Print the g16 input for a job file, or write <name>.gjf files
              for several job files (-o names the file or directory).
  run         Validate and render a job, then pipe it into g16. Output goes
              to <name>.log next to the job file (-o to change, "-" for
              stdout). The exit status of g16 is reported.
  schema      Output the JSON Schema of the job file.
  explain     Print this reference (what you are reading now).
  version     Print the version.

JOB FILE (gauss.yaml)
  Commands read gauss.yaml in the current directory unless job files are
  given as arguments or -p/--path is set.

  mem: 134GB                             # digits + KB/MB/GB/TB
  cpu: 0-39                              # must start with digit-digit
  gpu: ~                                 # ~ or omitted for a CPU-only job
  checkpoint: test.chk                   # not checked
  key_words: "#p BP86/Def2svp/W06 SCF=XQC"   # must contain # + a letter
  title: title card                      # not checked
  charge: 0
  multiplicity: 1

  Quote key_words: an unquoted # starts a YAML comment.

GPU ASSIGNMENT
  Exactly one of these shapes must match:
    list    0,1,2=0,1      comma-separated GPUs = comma-separated CPUs
    range   0-3=0-3        GPU range = CPU range
    pair    0=0            one GPU = one CPU
  A value that matches none, or more than one, is rejected as ambiguous.

RENDERED INPUT
  %Mem=134GB
  %Cpu=0-39
  %Gpu=0-3=0-3                           # only when gpu is set
  %Check=test.chk
  #p BP86/Def2svp/W06 SCF=XQC

   title card

  0 1

SETTINGS (gauss.settings.yaml, optional)
  g16:
    command: g16                         # executable
    args: []                             # extra arguments
    scratch_dir: /scratch                # exported as GAUSS_SCRDIR
  log:
    dir: .gauss/logs                     # JSON run log, rotated daily
    level: info                          # debug, info, warn, error
    console: false                       # also log to stderr
  metrics:
    file: ""                             # Prometheus textfile to write

  Every setting can be overridden from the environment or a .env file next
  to the settings file: GAUSS_G16__COMMAND=/opt/g16/g16.`

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Print a reference for gauss job files and commands",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), explainText)
	},
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
