package config

import (
	"flag"
	"io/ioutil"
	"os"
	"testing"
)

func TestRegisterFlags_Defaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if f.AdminAddr != "localhost:9091" {
		t.Fatalf("unexpected default AdminAddr: %v", f.AdminAddr)
	}
	cfg := f.EngineConfig()
	if cfg.MaxCancelAttempts != 2 {
		t.Fatalf("unexpected default MaxCancelAttempts: %v", cfg.MaxCancelAttempts)
	}
}

func TestRegisterFlags_Overrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-max_assign_attempts=5", "-admin_addr=0.0.0.0:8080"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if f.MaxAssignAttempts != 5 {
		t.Fatalf("expected override to apply, got %v", f.MaxAssignAttempts)
	}
	if f.AdminAddr != "0.0.0.0:8080" {
		t.Fatalf("expected override to apply, got %v", f.AdminAddr)
	}
}

func TestLoadClusterFile_EmptyPath(t *testing.T) {
	executors, err := LoadClusterFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if executors != nil {
		t.Fatalf("expected nil executors for empty path, got %v", executors)
	}
}

func TestLoadClusterFile_ParsesJSON(t *testing.T) {
	tmp, err := ioutil.TempFile("", "cluster*.json")
	if err != nil {
		t.Fatalf("TempFile() error: %v", err)
	}
	defer os.Remove(tmp.Name())

	contents := `[{"id":"exec1","hostname":"host1","cpu_cores":4,"memory_mb":8192}]`
	if _, err := tmp.WriteString(contents); err != nil {
		t.Fatalf("WriteString() error: %v", err)
	}
	tmp.Close()

	executors, err := LoadClusterFile(tmp.Name())
	if err != nil {
		t.Fatalf("LoadClusterFile() error: %v", err)
	}
	if len(executors) != 1 || executors[0].ID != "exec1" {
		t.Fatalf("unexpected executors: %v", executors)
	}
	capacity := executors[0].Capacity()
	if capacity.CPUCores != 4 || capacity.MemoryMB != 8192 {
		t.Fatalf("unexpected capacity: %v", capacity)
	}
}

func TestLoadClusterFile_MissingFile(t *testing.T) {
	if _, err := LoadClusterFile("/nonexistent/path/cluster.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
