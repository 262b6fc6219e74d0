// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_BatchDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ContestPath != "election.json" {
		t.Errorf("expected election.json, got %s", cfg.ContestPath)
	}
	if cfg.BallotsPath != "votes.json" {
		t.Errorf("expected votes.json, got %s", cfg.BallotsPath)
	}
	if cfg.OutputPath != "result.json" {
		t.Errorf("expected result.json, got %s", cfg.OutputPath)
	}
	if cfg.Serve {
		t.Error("serve should default to false")
	}
}

func TestParseFlags_BatchEnvVars(t *testing.T) {
	os.Setenv("CONTEST_FILE", "c.json")
	os.Setenv("BALLOTS_FILE", "b.jsonl")
	os.Setenv("OUTPUT_FILE", "out.json")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.ContestPath != "c.json" || cfg.BallotsPath != "b.jsonl" || cfg.OutputPath != "out.json" {
		t.Errorf("env fallback not applied: %+v", cfg)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("CONTEST_FILE", "env.json")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-contest", "cli.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.ContestPath != "cli.json" {
		t.Errorf("CLI should override env: expected cli.json, got %s", cfg.ContestPath)
	}
}

func TestParseFlags_ServeRequiresDatabase(t *testing.T) {
	os.Clearenv()
	os.Setenv("ADMIN_KEY_SALT", "s")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{"-serve"}); err == nil {
		t.Fatal("expected an error without DATABASE_URL")
	}
}

func TestParseFlags_ServeRequiresAdminSalt(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-serve", "-d", "file:box.db"}); err == nil {
		t.Fatal("expected an error without ADMIN_KEY_SALT")
	}
}

func TestParseFlags_ServeDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-serve", "-d", "file:box.db", "-admin-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 4117 {
		t.Errorf("expected default port 4117, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_ServeRejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-serve", "-d", "x", "-t", "oracle", "-admin-salt", "s1"})
	if err == nil {
		t.Fatal("expected an error for unknown database type")
	}
}

func TestParseFlags_ServeEnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-serve"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
}
