package main

import (
	"bytes"
	"flag"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-08-29"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2026-08-29") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.appHost != "localhost" || cfg.appPort != "8080" || cfg.logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.appHost, cfg.appPort, cfg.logLevel)
	}

	// PostgreSQL
	if cfg.pgHost != "localhost" || cfg.pgPort != 5432 || cfg.pgUser != "user" ||
		cfg.pgPassword != "password" || cfg.pgDB != "trailpack" ||
		cfg.pgMaxOpenConns != 16 || cfg.pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.redisHost != "localhost" || cfg.redisPort != 6379 || cfg.redisDB != 0 || cfg.redisPassword != "" {
		t.Errorf("unexpected redis config")
	}

	// Kafka is off unless a broker is configured
	if cfg.kafkaBroker != "" || cfg.kafkaTopic != "trailpack.shares" {
		t.Errorf("unexpected kafka config: %v/%v", cfg.kafkaBroker, cfg.kafkaTopic)
	}

	// JWT
	if cfg.jwtSecretKey != "my_super_secret_key" || cfg.jwtExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}
}

func TestParseConfig_FromEnv(t *testing.T) {
	resetEnv()

	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_DB", "packing")
	os.Setenv("KAFKA_BROKER", "localhost:9092")
	os.Setenv("JWT_EXP_SECOND", "120")
	defer resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.appPort != "9090" || cfg.pgDB != "packing" || cfg.kafkaBroker != "localhost:9092" || cfg.jwtExpSecond != 120 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()

	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Error("expected error for non-numeric POSTGRES_PORT")
	}
}
