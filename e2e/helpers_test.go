package e2e_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// cpuJob is the reference CPU-only job and cpuInput its rendered form.
const (
	cpuJob = `mem: 134GB
cpu: 0-39
gpu: ~
checkpoint: test.chk
key_words: "#p BP86/Def2svp/W06 SCF=XQC"
title: title card
charge: 0
multiplicity: 1
`
	cpuInput = "%Mem=134GB\n%Cpu=0-39\n%Check=test.chk\n#p BP86/Def2svp/W06 SCF=XQC\n\n title card\n\n0 1"
)

// tempDir creates a fresh working directory that is removed after the test.
func tempDir() string {
	dir, err := os.MkdirTemp("", "gauss-test-*")
	Expect(err).NotTo(HaveOccurred())
	DeferCleanup(func() { os.RemoveAll(dir) })
	return dir
}

// gaussEnv returns the environment for the binary with any GAUSS_ settings
// from the host removed.
func gaussEnv(extra ...string) []string {
	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "GAUSS_") {
			env = append(env, e)
		}
	}
	return append(env, extra...)
}

// gaussSplit runs the binary and returns stdout and stderr separately.
func gaussSplit(dir string, args ...string) (string, string, error) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = gaussEnv()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// gauss runs the binary in dir and returns trimmed combined output.
func gauss(dir string, args ...string) (string, error) {
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = gaussEnv()
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// gaussOK runs the binary and expects success.
func gaussOK(dir string, args ...string) string {
	out, err := gauss(dir, args...)
	ExpectWithOffset(1, err).NotTo(HaveOccurred(), "gauss %s failed: %s", strings.Join(args, " "), out)
	return out
}

// writeFile creates a file with the given content, creating parent dirs as needed.
func writeFile(dir, name, content string) {
	p := filepath.Join(dir, name)
	err := os.MkdirAll(filepath.Dir(p), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	err = os.WriteFile(p, []byte(content), 0o644)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
}

// readFile reads a file and returns its content.
func readFile(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return string(data)
}

// fileExists checks if a file exists in the given directory.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// gpuJob returns cpuJob with the given gpu assignment.
func gpuJob(gpu string) string {
	return strings.Replace(cpuJob, "gpu: ~", `gpu: "`+gpu+`"`, 1)
}

// writeFakeG16 writes an executable shell script standing in for g16 and a
// settings file pointing at it.
func writeFakeG16(dir, body string) string {
	script := filepath.Join(dir, "fake-g16.sh")
	err := os.WriteFile(script, []byte("#!/bin/sh\n"+body), 0o755)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	writeFile(dir, "gauss.settings.yaml", "g16:\n  command: "+script+"\n")
	return script
}
