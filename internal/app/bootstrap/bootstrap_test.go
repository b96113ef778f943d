package bootstrap

import (
	"testing"

	"github.com/rosterhub/rosterhub/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "rosterhub",
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(c *AppConfig) {}, false},
		{"bad mongo uri", func(c *AppConfig) { c.MongoURI = "not-a-uri" }, true},
		{"blank database", func(c *AppConfig) { c.MongoDatabase = "" }, true},
		{"client id without secret", func(c *AppConfig) { c.GoogleClientID = "id" }, true},
		{"secret without client id", func(c *AppConfig) { c.GoogleClientSecret = "secret" }, true},
		{"oauth pair complete", func(c *AppConfig) {
			c.GoogleClientID = "id"
			c.GoogleClientSecret = "secret"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(nil, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig: err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestStartup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}

	// Runs cleanly against an empty teachers collection.
	if err := Startup(ctx, nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateTeacher(ctx, "Asha Iyer", "asha@university.edu")

	if err := Startup(ctx, nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("Startup failed with teachers present: %v", err)
	}
}
