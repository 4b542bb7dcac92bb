package cmd

import (
	"strings"
	"testing"
)

func TestClearEntries_Confirmed(t *testing.T) {
	d, env := testDeps(t)
	seedEntries(t, d, sampleInputs...)
	d.Stdin = strings.NewReader("y\n")

	clearEntries()

	output := env.stdout.String()
	if !strings.Contains(output, "Delete ALL entries? [y/N]: ") {
		t.Errorf("expected prompt, got: %s", output)
	}
	if !strings.Contains(output, "Deleted 2 entries") {
		t.Errorf("expected deleted message, got: %s", output)
	}
	services, _ := d.Services()
	if services.Entry.Count() != 0 {
		t.Errorf("expected empty log, got %d", services.Entry.Count())
	}
}

func TestClearEntries_Declined(t *testing.T) {
	for _, answer := range []string{"n\n", "\n", "yes please\n", ""} {
		t.Run(strings.TrimSpace(answer), func(t *testing.T) {
			d, env := testDeps(t)
			seedEntries(t, d, sampleInputs...)
			d.Stdin = strings.NewReader(answer)

			clearEntries()

			if !strings.Contains(env.stdout.String(), "Clear cancelled") {
				t.Errorf("expected cancelled, got: %s", env.stdout.String())
			}
			services, _ := d.Services()
			if services.Entry.Count() != 2 {
				t.Errorf("expected entries kept, got %d", services.Entry.Count())
			}
		})
	}
}

func TestClearEntries_YesFlag(t *testing.T) {
	d, env := testDeps(t)
	seedEntries(t, d, sampleInputs...)
	clearYesFlag = true
	defer func() { clearYesFlag = false }()

	clearEntries()

	if strings.Contains(env.stdout.String(), "[y/N]") {
		t.Error("expected no prompt with --yes")
	}
	if !strings.Contains(env.stdout.String(), "Deleted 2 entries") {
		t.Errorf("expected deleted message, got: %s", env.stdout.String())
	}
}

func TestClearEntries_Empty(t *testing.T) {
	_, env := testDeps(t)

	clearEntries()

	output := env.stdout.String()
	if strings.Contains(output, "[y/N]") {
		t.Error("expected no prompt for an empty log")
	}
	if !strings.Contains(output, "No entries to clear") {
		t.Errorf("expected empty message, got: %s", output)
	}
}

func TestRestoreFromBackup(t *testing.T) {
	d, env := testDeps(t)
	seedEntries(t, d, sampleInputs...)
	clearYesFlag = true
	defer func() { clearYesFlag = false }()
	clearEntries()
	env.stdout.Reset()

	restoreFromBackup(nil)

	output := env.stdout.String()
	if !strings.Contains(output, "Available backups:") {
		t.Errorf("expected backup listing, got: %s", output)
	}
	if !strings.Contains(output, "(most recent)") {
		t.Errorf("expected most recent marker, got: %s", output)
	}
	if !strings.Contains(output, "Successfully restored from backup 1 (2 entries)") {
		t.Errorf("expected restore message, got: %s", output)
	}
	services, _ := d.Services()
	if services.Entry.Count() != 2 {
		t.Errorf("expected 2 entries after restore, got %d", services.Entry.Count())
	}
}

func TestRestoreFromBackup_NoBackups(t *testing.T) {
	_, env := testDeps(t)

	restoreFromBackup(nil)

	if env.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", env.exitCode)
	}
	if !strings.Contains(env.stdout.String(), "No backups available") {
		t.Errorf("expected no backups message, got: %s", env.stdout.String())
	}
}

func TestRestoreFromBackup_InvalidNumber(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"abc", "Invalid backup number 'abc'"},
		{"0", "Backup number must be between 1 and 3"},
		{"4", "Backup number must be between 1 and 3"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, env := testDeps(t)

			restoreFromBackup([]string{tt.arg})

			if env.exitCode != 1 {
				t.Errorf("expected exit code 1, got %d", env.exitCode)
			}
			if !strings.Contains(env.stderr.String(), tt.want) {
				t.Errorf("expected %q, got: %s", tt.want, env.stderr.String())
			}
		})
	}
}
