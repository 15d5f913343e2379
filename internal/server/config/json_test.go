package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.json")

	body := `{
		"endpoint_addr": ":9090",
		"database_dsn": "postgres://u:p@localhost:5432/datachart",
		"data_dir": "/var/lib/datachart",
		"secret_key": "s3cr3t",
		"access_token_validity_duration": "45m",
		"s3_bucket": "uploads",
		"s3_region": "eu-west-1",
		"s3_base_endpoint": "http://127.0.0.1:9000/"
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":9090", c.EndpointAddr)
	assert.Equal(t, "postgres://u:p@localhost:5432/datachart", c.DatabaseDSN)
	assert.Equal(t, "/var/lib/datachart", c.DataDir)
	assert.Equal(t, "s3cr3t", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "uploads", c.S3Bucket)
	assert.Equal(t, "eu-west-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
}

func TestParseJson_NoFileFlag_KeepsDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"test"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":8080", c.EndpointAddr)
}
