package config

import (
	"reflect"
	"testing"
)

func TestLoadEnvParsesCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://app.example.com ,,https://admin.example.com")

	env := LoadEnv()
	want := []string{"https://app.example.com", "https://admin.example.com"}
	if !reflect.DeepEqual(env.CORSOrigins, want) {
		t.Fatalf("CORSOrigins = %v, want %v", env.CORSOrigins, want)
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("APP_ADDR", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if len(env.CORSOrigins) != 0 {
		t.Fatalf("CORSOrigins should be empty by default, got %v", env.CORSOrigins)
	}
}
