package e2e_test

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("gauss run", func() {
	var dir string

	BeforeEach(func() {
		dir = tempDir()
	})

	It("pipes the rendered input into g16 and keeps its output", func() {
		writeFile(dir, "water.yaml", cpuJob)
		writeFakeG16(dir, "echo 'Entering Gaussian System'\ncat\n")

		gaussOK(dir, "run", "water.yaml")

		out := readFile(dir, "water.log")
		Expect(out).To(Equal("Entering Gaussian System\n" + cpuInput))
	})

	It("writes g16 output to stdout with -o -", func() {
		writeFile(dir, "gauss.yaml", gpuJob("0=0"))
		writeFakeG16(dir, "cat\n")

		stdout, stderr, err := gaussSplit(dir, "run", "-o", "-")
		Expect(err).NotTo(HaveOccurred(), stderr)
		Expect(stdout).To(ContainSubstring("%Gpu=0=0\n%Check=test.chk"))
	})

	It("runs g16 in the job file's directory", func() {
		writeFile(dir, "jobs/water.yaml", cpuJob)
		writeFakeG16(dir, "cat >/dev/null\npwd\n")

		gaussOK(dir, "run", "jobs/water.yaml")

		want, err := filepath.EvalSymlinks(filepath.Join(dir, "jobs"))
		Expect(err).NotTo(HaveOccurred())
		got, err := filepath.EvalSymlinks(strings.TrimSpace(readFile(dir, "jobs/water.log")))
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(want))
	})

	It("exports the configured scratch directory", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		script := writeFakeG16(dir, "cat >/dev/null\necho \"$GAUSS_SCRDIR\"\n")
		writeFile(dir, "gauss.settings.yaml", "g16:\n  command: "+script+"\n  scratch_dir: /scratch/me\n")

		Expect(gaussOK(dir, "run", "-o", "-")).To(Equal("/scratch/me"))
	})

	It("reports a non-zero g16 exit status", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		writeFakeG16(dir, "cat >/dev/null\necho 'Error termination' >&2\nexit 2\n")

		out, err := gauss(dir, "run")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("Error termination"))
		Expect(out).To(ContainSubstring("g16 exited with status 2"))
	})

	It("reports a g16 that cannot be started", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		writeFile(dir, "gauss.settings.yaml", "g16:\n  command: "+filepath.Join(dir, "no-such-g16")+"\n")

		out, err := gauss(dir, "run")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("starting"))
	})

	It("never starts g16 for an invalid job", func() {
		writeFile(dir, "gauss.yaml", strings.Replace(cpuJob, "cpu: 0-39", "cpu: abc", 1))
		writeFakeG16(dir, "touch started\ncat\n")

		out, err := gauss(dir, "run")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("invalid cpu"))
		Expect(fileExists(dir, "started")).To(BeFalse())
	})

	It("refuses to share a checkpoint with a running job", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		writeFakeG16(dir, "cat\n")

		f, err := os.OpenFile(filepath.Join(dir, "test.chk.lock"), os.O_CREATE|os.O_RDWR, 0o644)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()
		Expect(syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)).To(Succeed())

		out, err := gauss(dir, "run")
		Expect(err).To(HaveOccurred())
		Expect(out).To(ContainSubstring("checkpoint is in use"))
	})

	It("overrides the g16 command from the environment", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		script := writeFakeG16(dir, "cat >/dev/null\necho from-env\n")
		writeFile(dir, "gauss.settings.yaml", "g16:\n  command: /nonexistent/g16\n")
		writeFile(dir, ".env", "GAUSS_G16__COMMAND="+script+"\n")

		Expect(gaussOK(dir, "run", "-o", "-")).To(Equal("from-env"))
	})

	It("records run metrics", func() {
		writeFile(dir, "gauss.yaml", cpuJob)
		script := writeFakeG16(dir, "cat >/dev/null\n")
		writeFile(dir, "gauss.settings.yaml", "g16:\n  command: "+script+"\nmetrics:\n  file: gauss.prom\n")

		gaussOK(dir, "run")

		prom := readFile(dir, "gauss.prom")
		Expect(prom).To(ContainSubstring(`gauss_runs_total{outcome="success"} 1`))
		Expect(prom).To(ContainSubstring(`gauss_validations_total{result="valid"} 1`))
		Expect(prom).To(ContainSubstring("gauss_run_duration_seconds_count 1"))
	})
})
