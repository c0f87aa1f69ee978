package testutil

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CallRecord describes one helper process invocation.
type CallRecord struct {
	Args     []string `yaml:"args,omitempty"`
	Dir      string   `yaml:"dir"`
	ExitCode int      `yaml:"exit_code"`
}

// CallLog wraps []CallRecord for YAML serialization.
type CallLog struct {
	Entries []CallRecord `yaml:"entries"`
}

// AppendCallRecord adds record to the YAML call log at path, creating it if needed.
func AppendCallRecord(path string, record CallRecord) error {
	log, err := ReadCallLog(path)
	if err != nil {
		return err
	}
	log.Entries = append(log.Entries, record)

	data, err := yaml.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshaling call log: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing call log: %w", err)
	}
	return nil
}

// ReadCallLog reads the call log at path. A missing file is an empty log.
func ReadCallLog(path string) (*CallLog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &CallLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading call log: %w", err)
	}

	var log CallLog
	if err := yaml.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parsing call log: %w", err)
	}
	return &log, nil
}
