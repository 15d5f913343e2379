package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_Overrides(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"test",
		"-a", ":9999",
		"-d", "postgres://x",
		"-f", "/tmp/datachart",
		"-s", "key",
		"-t", "15",
		"-b", "raw-uploads",
		"-e", "http://minio:9000/",
	}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, "/tmp/datachart", c.DataDir)
	assert.Equal(t, "key", c.SecretKey)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "raw-uploads", c.S3Bucket)
	assert.Equal(t, "http://minio:9000/", c.S3BaseEndpoint)
}

func TestParseFlags_UnknownFlagsIgnored(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"test", "-z", "nope", "-a", ":7070"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
}
